package usecase

import (
	"context"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"

	"github.com/SaharBarak/portfolio-v2-sub001/internal/domain"
	"github.com/SaharBarak/portfolio-v2-sub001/internal/schemas"
)

// LikesUsecase records which visitors liked which post.
type LikesUsecase struct {
	repo      LikeRepository
	validator Validator
	notifier  *Notifier
}

func NewLikesUsecase(repo LikeRepository, validator Validator, notifier *Notifier) *LikesUsecase {
	return &LikesUsecase{
		repo:      repo,
		validator: validator,
		notifier:  notifier,
	}
}

type likeRef struct {
	Slug   string `json:"slug"`
	UserID string `json:"userId"`
}

// Toggle likes the post when the visitor has not, and unlikes it otherwise.
// It is not idempotent: retries should check HasLiked or use Like/Unlike.
func (uc *LikesUsecase) Toggle(ctx context.Context, input domain.LikeInput) (domain.ToggleResult, error) {
	ctx, span := tracer.Start(ctx, "Likes.Usecase.Toggle")
	defer span.End()
	span.SetAttributes(attribute.String("slug", input.Slug))

	if err := uc.validator.Validate(domain.CollectionLikes, schemas.Like, input); err != nil {
		span.RecordError(err)
		return domain.ToggleResult{}, err
	}

	liked, err := uc.repo.Toggle(ctx, input)
	if err != nil {
		span.RecordError(err)
		return domain.ToggleResult{}, errors.Wrap(err, "toggle like")
	}

	op := domain.ChangeOpUpsert
	if !liked {
		op = domain.ChangeOpRemove
	}
	uc.notifier.Changed(ctx, domain.CollectionLikes, input.Slug, op)
	return domain.ToggleResult{Liked: liked}, nil
}

// Like records the like unless it already exists.
func (uc *LikesUsecase) Like(ctx context.Context, input domain.LikeInput) (domain.ToggleResult, error) {
	ctx, span := tracer.Start(ctx, "Likes.Usecase.Like")
	defer span.End()
	span.SetAttributes(attribute.String("slug", input.Slug))

	if err := uc.validator.Validate(domain.CollectionLikes, schemas.Like, input); err != nil {
		span.RecordError(err)
		return domain.ToggleResult{}, err
	}

	inserted, err := uc.repo.Like(ctx, input)
	if err != nil {
		span.RecordError(err)
		return domain.ToggleResult{}, errors.Wrap(err, "like")
	}
	if inserted {
		uc.notifier.Changed(ctx, domain.CollectionLikes, input.Slug, domain.ChangeOpUpsert)
	}
	return domain.ToggleResult{Liked: true}, nil
}

// Unlike removes the like if it exists.
func (uc *LikesUsecase) Unlike(ctx context.Context, slug, userID string) (domain.ToggleResult, error) {
	ctx, span := tracer.Start(ctx, "Likes.Usecase.Unlike")
	defer span.End()
	span.SetAttributes(attribute.String("slug", slug))

	if err := uc.validator.Validate(domain.CollectionLikes, schemas.LikeRef, likeRef{Slug: slug, UserID: userID}); err != nil {
		span.RecordError(err)
		return domain.ToggleResult{}, err
	}

	removed, err := uc.repo.Unlike(ctx, slug, userID)
	if err != nil {
		span.RecordError(err)
		return domain.ToggleResult{}, errors.Wrap(err, "unlike")
	}
	if removed {
		uc.notifier.Changed(ctx, domain.CollectionLikes, slug, domain.ChangeOpRemove)
	}
	return domain.ToggleResult{Liked: false}, nil
}

func (uc *LikesUsecase) HasLiked(ctx context.Context, slug, userID string) (bool, error) {
	ctx, span := tracer.Start(ctx, "Likes.Usecase.HasLiked")
	defer span.End()

	liked, err := uc.repo.HasLiked(ctx, slug, userID)
	if err != nil {
		span.RecordError(err)
		return false, errors.Wrap(err, "has liked")
	}
	return liked, nil
}

// GetBySlug returns the like count of a post with a preview of likers.
func (uc *LikesUsecase) GetBySlug(ctx context.Context, slug string) (domain.LikeSummary, error) {
	ctx, span := tracer.Start(ctx, "Likes.Usecase.GetBySlug")
	defer span.End()

	summary, err := uc.repo.Summary(ctx, slug, domain.LikePreviewLimit)
	if err != nil {
		span.RecordError(err)
		return domain.LikeSummary{}, errors.Wrap(err, "like summary")
	}
	return summary, nil
}

func (uc *LikesUsecase) GetCount(ctx context.Context, slug string) (int64, error) {
	ctx, span := tracer.Start(ctx, "Likes.Usecase.GetCount")
	defer span.End()

	count, err := uc.repo.Count(ctx, slug)
	if err != nil {
		span.RecordError(err)
		return 0, errors.Wrap(err, "like count")
	}
	return count, nil
}
