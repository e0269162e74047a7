package usecase

import (
	"context"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/SaharBarak/portfolio-v2-sub001/internal/domain"
)

var tracer = otel.Tracer("usecase")

// SyncUsecase reconciles one collection with the CMS. Writes are keyed by
// the external key, so replaying an import converges on the same records.
type SyncUsecase[I domain.Synced, T domain.Record] struct {
	repo       CollectionRepository[I, T]
	validator  Validator
	definition string
	notifier   *Notifier
}

func NewSyncUsecase[I domain.Synced, T domain.Record](
	repo CollectionRepository[I, T],
	validator Validator,
	definition string,
	notifier *Notifier,
) *SyncUsecase[I, T] {
	return &SyncUsecase[I, T]{
		repo:       repo,
		validator:  validator,
		definition: definition,
		notifier:   notifier,
	}
}

// Upsert validates input and stores it under its external key, returning
// the identity of the stored record.
func (uc *SyncUsecase[I, T]) Upsert(ctx context.Context, input I) (domain.UpsertResult, error) {
	ctx, span := tracer.Start(ctx, "Sync.Usecase.Upsert")
	defer span.End()

	collection := uc.repo.Name()
	span.SetAttributes(
		attribute.String("collection", collection),
		attribute.String("notionId", input.ExternalKey()),
	)

	if err := uc.validator.Validate(collection, uc.definition, input); err != nil {
		span.RecordError(err)
		return domain.UpsertResult{}, err
	}

	result, err := uc.repo.Upsert(ctx, input)
	if err != nil {
		err = errors.Wrapf(err, "upsert %s", collection)
		span.RecordError(err)
		return domain.UpsertResult{}, err
	}

	if result.Changed {
		uc.notifier.Changed(ctx, collection, result.ID, domain.ChangeOpUpsert)
	}
	return result, nil
}

// Remove deletes the record with the external key. Removing an absent key
// is not an error.
func (uc *SyncUsecase[I, T]) Remove(ctx context.Context, externalKey string) (bool, error) {
	ctx, span := tracer.Start(ctx, "Sync.Usecase.Remove")
	defer span.End()

	collection := uc.repo.Name()
	span.SetAttributes(
		attribute.String("collection", collection),
		attribute.String("notionId", externalKey),
	)

	if externalKey == "" {
		err := domain.ValidationError{Collection: collection, Reason: "notionId is required"}
		span.RecordError(err)
		return false, err
	}

	removed, err := uc.repo.Remove(ctx, externalKey)
	if err != nil {
		err = errors.Wrapf(err, "remove %s", collection)
		span.RecordError(err)
		return false, err
	}

	if removed {
		uc.notifier.Changed(ctx, collection, "", domain.ChangeOpRemove)
	}
	return removed, nil
}
