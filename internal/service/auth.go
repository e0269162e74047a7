package service

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"golang.org/x/crypto/bcrypt"
)

var tracer = otel.Tracer("auth")

// ErrUnauthorized is returned for a missing or wrong sync token.
var ErrUnauthorized = fmt.Errorf("unauthorized")

// AuthService verifies the bearer token the importer and the operator
// present for sync writes.
type AuthService struct {
	tokenHash []byte
}

// NewAuthService takes the bcrypt hash of the sync token. An empty hash
// rejects every token.
func NewAuthService(tokenHash string) *AuthService {
	return &AuthService{
		tokenHash: []byte(tokenHash),
	}
}

func (s *AuthService) AuthSyncToken(ctx context.Context, token string) error {
	_, span := tracer.Start(ctx, "Auth.Service.AuthSyncToken")
	defer span.End()

	if len(s.tokenHash) == 0 {
		err := errors.Wrap(ErrUnauthorized, "sync token not configured")
		span.RecordError(err)
		return err
	}
	if token == "" {
		span.RecordError(ErrUnauthorized)
		return ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword(s.tokenHash, []byte(token)); err != nil {
		span.RecordError(errors.Wrap(err, "token mismatch"))
		return ErrUnauthorized
	}
	return nil
}

// HashSyncToken produces the value stored in the configuration for token.
func HashSyncToken(token string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
