package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/SaharBarak/portfolio-v2-sub001/internal/domain"
	"github.com/SaharBarak/portfolio-v2-sub001/internal/infra/database/models"
	"github.com/SaharBarak/portfolio-v2-sub001/internal/infra/store"
)

const (
	bySlug     = "by_slug"
	byUser     = "by_user"
	bySlugUser = "by_slug_user"
)

type LikeRepository struct {
	collection *store.Collection[models.Like, *models.Like]
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{
		collection: store.NewCollection[models.Like](db, domain.CollectionLikes,
			store.Index{Name: bySlug, Fields: []string{"slug"}},
			store.Index{Name: byUser, Fields: []string{"user_id"}},
			store.Index{Name: bySlugUser, Fields: []string{"slug", "user_id"}, Unique: true},
		),
	}
}

func (r *LikeRepository) Name() string {
	return r.collection.Name()
}

func (r *LikeRepository) Migrate(ctx context.Context) error {
	return r.collection.Migrate(ctx)
}

// Toggle removes the like when present and records it otherwise, in one
// transaction. It reports whether the post is liked afterwards.
func (r *LikeRepository) Toggle(ctx context.Context, in domain.LikeInput) (bool, error) {
	var liked bool
	err := r.collection.Transaction(ctx, func(tx *store.Collection[models.Like, *models.Like]) error {
		removed, err := tx.DeleteBy(ctx, bySlugUser, in.Slug, in.UserID)
		if err != nil {
			return err
		}
		if removed > 0 {
			liked = false
			return nil
		}

		// a concurrent toggle may have inserted first; the post is liked either way
		if _, err := tx.InsertIfAbsent(ctx, likeModel(in), bySlugUser); err != nil {
			return err
		}
		liked = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return liked, nil
}

// Like records the like unless it exists and reports whether it inserted.
func (r *LikeRepository) Like(ctx context.Context, in domain.LikeInput) (bool, error) {
	return r.collection.InsertIfAbsent(ctx, likeModel(in), bySlugUser)
}

// Unlike removes the like and reports whether one existed.
func (r *LikeRepository) Unlike(ctx context.Context, slug, userID string) (bool, error) {
	n, err := r.collection.DeleteBy(ctx, bySlugUser, slug, userID)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *LikeRepository) HasLiked(ctx context.Context, slug, userID string) (bool, error) {
	return r.collection.Exists(ctx, bySlugUser, slug, userID)
}

func (r *LikeRepository) Count(ctx context.Context, slug string) (int64, error) {
	return r.collection.Count(ctx, bySlug, slug)
}

// Summary returns the like count of a post and up to limit likers, read in
// one transaction.
func (r *LikeRepository) Summary(ctx context.Context, slug string, limit int) (domain.LikeSummary, error) {
	summary := domain.LikeSummary{Users: []domain.Liker{}}
	err := r.collection.Transaction(ctx, func(tx *store.Collection[models.Like, *models.Like]) error {
		count, err := tx.Count(ctx, bySlug, slug)
		if err != nil {
			return err
		}
		docs, err := tx.LookupLimit(ctx, limit, bySlug, slug)
		if err != nil {
			return err
		}

		summary.Count = count
		for _, doc := range docs {
			summary.Users = append(summary.Users, domain.Liker{
				UserID:    doc.UserID,
				UserName:  doc.UserName,
				UserImage: doc.UserImage,
			})
		}
		return nil
	})
	if err != nil {
		return domain.LikeSummary{}, err
	}
	return summary, nil
}

func likeModel(in domain.LikeInput) *models.Like {
	return &models.Like{
		Slug:      in.Slug,
		UserID:    in.UserID,
		UserName:  in.UserName,
		UserImage: in.UserImage,
	}
}
