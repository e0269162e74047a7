package usecase

import (
	"context"

	"github.com/pkg/errors"

	"github.com/SaharBarak/portfolio-v2-sub001/internal/domain"
	"github.com/SaharBarak/portfolio-v2-sub001/internal/schemas"
)

type AboutUsecase struct {
	repo      AboutRepository
	validator Validator
	cache     ResultCache
	notifier  *Notifier
}

func NewAboutUsecase(repo AboutRepository, validator Validator, cache ResultCache, notifier *Notifier) *AboutUsecase {
	return &AboutUsecase{
		repo:      repo,
		validator: validator,
		cache:     cache,
		notifier:  notifier,
	}
}

// Get returns the biography, or nil before the first sync.
func (uc *AboutUsecase) Get(ctx context.Context) (*domain.About, error) {
	ctx, span := tracer.Start(ctx, "About.Usecase.Get")
	defer span.End()

	about, err := cached(ctx, uc.cache, domain.CollectionAbout, []string{"get"}, func() (*domain.About, error) {
		return uc.repo.Get(ctx)
	})
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "get about")
	}
	return about, nil
}

// Upsert replaces the biography, keeping its identity.
func (uc *AboutUsecase) Upsert(ctx context.Context, input domain.AboutInput) (domain.UpsertResult, error) {
	ctx, span := tracer.Start(ctx, "About.Usecase.Upsert")
	defer span.End()

	if err := uc.validator.Validate(domain.CollectionAbout, schemas.About, input); err != nil {
		span.RecordError(err)
		return domain.UpsertResult{}, err
	}

	result, err := uc.repo.Upsert(ctx, input)
	if err != nil {
		span.RecordError(err)
		return domain.UpsertResult{}, errors.Wrap(err, "upsert about")
	}
	if result.Changed {
		uc.notifier.Changed(ctx, domain.CollectionAbout, result.ID, domain.ChangeOpUpsert)
	}
	return result, nil
}

type AvailabilityUsecase struct {
	repo      AvailabilityRepository
	validator Validator
	cache     ResultCache
	notifier  *Notifier
}

func NewAvailabilityUsecase(repo AvailabilityRepository, validator Validator, cache ResultCache, notifier *Notifier) *AvailabilityUsecase {
	return &AvailabilityUsecase{
		repo:      repo,
		validator: validator,
		cache:     cache,
		notifier:  notifier,
	}
}

// Get returns the availability status, or nil when it was never set.
func (uc *AvailabilityUsecase) Get(ctx context.Context) (*domain.Availability, error) {
	ctx, span := tracer.Start(ctx, "Availability.Usecase.Get")
	defer span.End()

	availability, err := cached(ctx, uc.cache, domain.CollectionAvailability, []string{"get"}, func() (*domain.Availability, error) {
		return uc.repo.Get(ctx)
	})
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "get availability")
	}
	return availability, nil
}

// Set writes the status directly.
func (uc *AvailabilityUsecase) Set(ctx context.Context, input domain.AvailabilityInput) (domain.UpsertResult, error) {
	ctx, span := tracer.Start(ctx, "Availability.Usecase.Set")
	defer span.End()

	if err := uc.validator.Validate(domain.CollectionAvailability, schemas.Availability, input); err != nil {
		span.RecordError(err)
		return domain.UpsertResult{}, err
	}

	result, err := uc.repo.Set(ctx, input)
	if err != nil {
		span.RecordError(err)
		return domain.UpsertResult{}, errors.Wrap(err, "set availability")
	}
	uc.notifier.Changed(ctx, domain.CollectionAvailability, result.ID, domain.ChangeOpUpsert)
	return result, nil
}

// Upsert writes the status from a sync. A missing calendlyUrl is stored as
// the empty string.
func (uc *AvailabilityUsecase) Upsert(ctx context.Context, input domain.AvailabilitySyncInput) (domain.UpsertResult, error) {
	ctx, span := tracer.Start(ctx, "Availability.Usecase.Upsert")
	defer span.End()

	if err := uc.validator.Validate(domain.CollectionAvailability, schemas.AvailabilitySync, input); err != nil {
		span.RecordError(err)
		return domain.UpsertResult{}, err
	}

	result, err := uc.repo.Upsert(ctx, input)
	if err != nil {
		span.RecordError(err)
		return domain.UpsertResult{}, errors.Wrap(err, "upsert availability")
	}
	uc.notifier.Changed(ctx, domain.CollectionAvailability, result.ID, domain.ChangeOpUpsert)
	return result, nil
}

// Toggle flips availability. It returns nil without writing when the status
// was never set.
func (uc *AvailabilityUsecase) Toggle(ctx context.Context) (*domain.Availability, error) {
	ctx, span := tracer.Start(ctx, "Availability.Usecase.Toggle")
	defer span.End()

	availability, err := uc.repo.Toggle(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "toggle availability")
	}
	if availability != nil {
		uc.notifier.Changed(ctx, domain.CollectionAvailability, availability.ID, domain.ChangeOpUpsert)
	}
	return availability, nil
}
