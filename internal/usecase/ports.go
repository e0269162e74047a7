package usecase

import (
	"context"

	"github.com/SaharBarak/portfolio-v2-sub001/internal/domain"
)

// CollectionReader defines read access to a synced collection.
type CollectionReader[T domain.Record] interface {
	Name() string
	All(ctx context.Context) ([]T, error)
	// Published returns the visible records, served from the published
	// index where the collection has one.
	Published(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (*T, error)
	FindBy(ctx context.Context, field, value string) ([]T, error)
}

// CollectionRepository defines storage operations for a collection mirrored
// from the CMS.
type CollectionRepository[I domain.Synced, T domain.Record] interface {
	CollectionReader[T]
	Upsert(ctx context.Context, input I) (domain.UpsertResult, error)
	Remove(ctx context.Context, externalKey string) (bool, error)
}

// AboutRepository defines storage operations for the biography singleton.
type AboutRepository interface {
	Get(ctx context.Context) (*domain.About, error)
	Upsert(ctx context.Context, input domain.AboutInput) (domain.UpsertResult, error)
}

// AvailabilityRepository defines storage operations for the availability
// singleton.
type AvailabilityRepository interface {
	Get(ctx context.Context) (*domain.Availability, error)
	Set(ctx context.Context, input domain.AvailabilityInput) (domain.UpsertResult, error)
	Upsert(ctx context.Context, input domain.AvailabilitySyncInput) (domain.UpsertResult, error)
	Toggle(ctx context.Context) (*domain.Availability, error)
}

// LikeRepository defines storage operations for post likes.
type LikeRepository interface {
	Toggle(ctx context.Context, input domain.LikeInput) (bool, error)
	Like(ctx context.Context, input domain.LikeInput) (bool, error)
	Unlike(ctx context.Context, slug, userID string) (bool, error)
	HasLiked(ctx context.Context, slug, userID string) (bool, error)
	Count(ctx context.Context, slug string) (int64, error)
	Summary(ctx context.Context, slug string, limit int) (domain.LikeSummary, error)
}

// Validator checks a write payload against a named schema definition.
type Validator interface {
	Validate(collection, definition string, payload any) error
}

// ResultCache stores encoded query results under per-collection
// generations.
type ResultCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Generation(ctx context.Context, namespace string) (uint64, error)
	Bump(ctx context.Context, namespace string) error
}

// ChangePublisher broadcasts collection change events.
type ChangePublisher interface {
	Publish(ctx context.Context, event domain.ChangeEvent) error
}
