package service

import (
	"context"
	"errors"
	"testing"
)

func TestAuthSyncToken(t *testing.T) {
	hash, err := HashSyncToken("s3cret")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	auth := NewAuthService(hash)
	ctx := context.Background()

	if err := auth.AuthSyncToken(ctx, "s3cret"); err != nil {
		t.Fatalf("expected valid token, got %v", err)
	}
	if err := auth.AuthSyncToken(ctx, "guess"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if err := auth.AuthSyncToken(ctx, ""); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected unauthorized for empty token, got %v", err)
	}
}

func TestAuthWithoutConfiguredToken(t *testing.T) {
	auth := NewAuthService("")
	if err := auth.AuthSyncToken(context.Background(), "anything"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}
