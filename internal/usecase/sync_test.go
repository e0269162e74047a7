package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/SaharBarak/portfolio-v2-sub001/internal/domain"
	"github.com/SaharBarak/portfolio-v2-sub001/internal/schemas"
)

func projectInput(key string, order int, published bool) domain.ProjectInput {
	return domain.ProjectInput{
		NotionID:  key,
		Title:     "Project " + key,
		URL:       "https://example.com",
		Colors:    domain.Colors{Bg: "#000", Accent: "#fff", Text: "#ccc"},
		Order:     order,
		Published: published,
	}
}

func newProjectSync(t *testing.T) (*SyncUsecase[domain.ProjectInput, domain.Project], *mockCollection[domain.ProjectInput, domain.Project], *mockCache, *mockPublisher) {
	repo := newMockProjects()
	cache := newMockCache()
	publisher := &mockPublisher{}
	uc := NewSyncUsecase[domain.ProjectInput, domain.Project](repo, newValidator(t), schemas.Project, NewNotifier(cache, publisher))
	return uc, repo, cache, publisher
}

func TestSyncUpsertIsIdempotent(t *testing.T) {
	ctx := context.Background()
	uc, repo, _, publisher := newProjectSync(t)

	first, err := uc.Upsert(ctx, projectInput("n1", 1, true))
	if err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}
	second, err := uc.Upsert(ctx, projectInput("n1", 1, true))
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	if first.ID != second.ID {
		t.Fatalf("expected identity %s got %s", first.ID, second.ID)
	}
	if second.Changed {
		t.Fatalf("expected unchanged replay")
	}
	if len(repo.records) != 1 {
		t.Fatalf("expected 1 record got %d", len(repo.records))
	}
	if len(publisher.events) != 1 {
		t.Fatalf("expected 1 change event got %d", len(publisher.events))
	}
}

func TestSyncUpsertConverges(t *testing.T) {
	ctx := context.Background()
	uc, repo, cache, publisher := newProjectSync(t)

	first, err := uc.Upsert(ctx, projectInput("n1", 1, true))
	if err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}
	p2 := projectInput("n1", 5, false)
	p2.Title = "Second"
	second, err := uc.Upsert(ctx, p2)
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	if first.ID != second.ID {
		t.Fatalf("expected identity %s got %s", first.ID, second.ID)
	}
	if len(repo.records) != 1 || repo.records[0].Title != "Second" || repo.records[0].Order != 5 {
		t.Fatalf("expected converged record got %+v", repo.records)
	}
	if cache.generations[domain.CollectionProjects] != 2 {
		t.Fatalf("expected 2 invalidations got %d", cache.generations[domain.CollectionProjects])
	}
	last := publisher.events[len(publisher.events)-1]
	if last.Collection != domain.CollectionProjects || last.ID != first.ID || last.Op != domain.ChangeOpUpsert {
		t.Fatalf("unexpected event %+v", last)
	}
}

func TestSyncUpsertRejectsInvalidPayload(t *testing.T) {
	uc, repo, _, publisher := newProjectSync(t)

	_, err := uc.Upsert(context.Background(), projectInput("", 1, true))
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error got %v", err)
	}
	if repo.upserts != 0 {
		t.Fatalf("expected no write on invalid payload")
	}
	if len(publisher.events) != 0 {
		t.Fatalf("expected no change event")
	}
}

func TestSyncUpsertPropagatesStorageError(t *testing.T) {
	uc, repo, _, _ := newProjectSync(t)
	boom := errors.New("connection reset")
	repo.err = boom

	_, err := uc.Upsert(context.Background(), projectInput("n1", 1, true))
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped storage error got %v", err)
	}
}

func TestSyncRemoveIsIdempotent(t *testing.T) {
	ctx := context.Background()
	uc, repo, _, publisher := newProjectSync(t)

	if _, err := uc.Upsert(ctx, projectInput("n1", 1, true)); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	removed, err := uc.Remove(ctx, "n1")
	if err != nil || !removed {
		t.Fatalf("expected removal, got removed=%v err=%v", removed, err)
	}
	removed, err = uc.Remove(ctx, "n1")
	if err != nil || removed {
		t.Fatalf("expected no-op removal, got removed=%v err=%v", removed, err)
	}
	if len(repo.records) != 0 {
		t.Fatalf("expected empty collection")
	}
	if len(publisher.events) != 2 || publisher.events[1].Op != domain.ChangeOpRemove {
		t.Fatalf("expected upsert then remove events got %+v", publisher.events)
	}
}

func TestSyncRemoveRequiresKey(t *testing.T) {
	uc, _, _, _ := newProjectSync(t)
	_, err := uc.Remove(context.Background(), "")
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error got %v", err)
	}
}

func TestNotifierSurvivesCacheFailure(t *testing.T) {
	ctx := context.Background()
	uc, _, cache, publisher := newProjectSync(t)
	cache.bumpErr = errors.New("memcached down")

	if _, err := uc.Upsert(ctx, projectInput("n1", 1, true)); err != nil {
		t.Fatalf("expected write to succeed despite cache failure: %v", err)
	}
	if len(publisher.events) != 1 {
		t.Fatalf("expected change event despite cache failure")
	}
}

func TestNilNotifierIsNoop(t *testing.T) {
	repo := newMockProjects()
	uc := NewSyncUsecase[domain.ProjectInput, domain.Project](repo, newValidator(t), schemas.Project, nil)
	if _, err := uc.Upsert(context.Background(), projectInput("n1", 1, true)); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
}
