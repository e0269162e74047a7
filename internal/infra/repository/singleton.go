package repository

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/SaharBarak/portfolio-v2-sub001/internal/domain"
	"github.com/SaharBarak/portfolio-v2-sub001/internal/infra/database/models"
	"github.com/SaharBarak/portfolio-v2-sub001/internal/infra/store"
)

const bySlot = "by_slot"

var slotIndex = store.Index{Name: bySlot, Fields: []string{"slot"}, Unique: true}

type AboutRepository struct {
	collection *store.Collection[models.About, *models.About]
	now        func() time.Time
}

func NewAboutRepository(db *gorm.DB) *AboutRepository {
	return &AboutRepository{
		collection: store.NewCollection[models.About](db, domain.CollectionAbout, slotIndex),
		now:        time.Now,
	}
}

func (r *AboutRepository) Name() string {
	return r.collection.Name()
}

func (r *AboutRepository) Migrate(ctx context.Context) error {
	return r.collection.Migrate(ctx)
}

// Get returns the biography, or nil when none has been synced yet.
func (r *AboutRepository) Get(ctx context.Context) (*domain.About, error) {
	doc, err := r.collection.LookupFirst(ctx, bySlot, models.SingletonSlot)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	about := aboutToDomain(*doc)
	return &about, nil
}

// Upsert replaces the biography. The stored notionId is the one of the
// latest sync.
func (r *AboutRepository) Upsert(ctx context.Context, in domain.AboutInput) (domain.UpsertResult, error) {
	hash, err := contentHash(in)
	if err != nil {
		return domain.UpsertResult{}, errors.Wrap(err, "hash payload")
	}

	doc := &models.About{
		Synced: models.Synced{
			NotionID:    in.NotionID,
			ContentHash: hash,
			SyncedAt:    r.now(),
		},
		Slot:         models.SingletonSlot,
		HeroImages:   models.NewJSON(in.HeroImages),
		Headline:     in.Headline,
		Tagline:      in.Tagline,
		Bio:          in.Bio,
		BioSecondary: in.BioSecondary,
		Ventures:     models.NewJSON(in.Ventures),
		Freelance:    models.NewJSON(in.Freelance),
		Research:     in.Research,
		Stack:        models.NewJSON(in.Stack),
		Hobbies:      in.Hobbies,
		SocialLinks:  models.NewJSON(in.SocialLinks),
	}

	outcome, err := r.collection.Upsert(ctx, doc, store.Conflict{
		Index: bySlot,
		Key:   []any{models.SingletonSlot},
		Columns: []string{
			"notion_id", "content_hash", "synced_at",
			"hero_images", "headline", "tagline", "bio", "bio_secondary",
			"ventures", "freelance", "research", "stack", "hobbies", "social_links",
		},
	})
	if err != nil {
		return domain.UpsertResult{}, err
	}

	changed := outcome.Inserted || outcome.Previous == nil || outcome.Previous.ContentHash != hash
	return domain.UpsertResult{ID: outcome.ID, Inserted: outcome.Inserted, Changed: changed}, nil
}

func aboutToDomain(m models.About) domain.About {
	return domain.About{
		ID: m.ID,
		AboutInput: domain.AboutInput{
			NotionID:     m.NotionID,
			HeroImages:   m.HeroImages.Data,
			Headline:     m.Headline,
			Tagline:      m.Tagline,
			Bio:          m.Bio,
			BioSecondary: m.BioSecondary,
			Ventures:     m.Ventures.Data,
			Freelance:    m.Freelance.Data,
			Research:     m.Research,
			Stack:        m.Stack.Data,
			Hobbies:      m.Hobbies,
			SocialLinks:  m.SocialLinks.Data,
		},
		SyncedAt: m.SyncedAt,
	}
}

type AvailabilityRepository struct {
	collection *store.Collection[models.Availability, *models.Availability]
	now        func() time.Time
}

func NewAvailabilityRepository(db *gorm.DB) *AvailabilityRepository {
	return &AvailabilityRepository{
		collection: store.NewCollection[models.Availability](db, domain.CollectionAvailability, slotIndex),
		now:        time.Now,
	}
}

func (r *AvailabilityRepository) Name() string {
	return r.collection.Name()
}

func (r *AvailabilityRepository) Migrate(ctx context.Context) error {
	return r.collection.Migrate(ctx)
}

// Get returns the availability status, or nil when it was never set.
func (r *AvailabilityRepository) Get(ctx context.Context) (*domain.Availability, error) {
	doc, err := r.collection.LookupFirst(ctx, bySlot, models.SingletonSlot)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	availability := availabilityToDomain(*doc)
	return &availability, nil
}

// Set writes the availability status directly and stamps updatedAt.
func (r *AvailabilityRepository) Set(ctx context.Context, in domain.AvailabilityInput) (domain.UpsertResult, error) {
	doc := &models.Availability{
		Slot:        models.SingletonSlot,
		IsAvailable: in.IsAvailable,
		Status:      string(in.Status),
		Message:     in.Message,
		CalendlyURL: in.CalendlyURL,
		UpdatedAt:   r.now(),
	}

	outcome, err := r.collection.Upsert(ctx, doc, store.Conflict{
		Index:   bySlot,
		Key:     []any{models.SingletonSlot},
		Columns: []string{"is_available", "status", "message", "calendly_url", "updated_at"},
	})
	if err != nil {
		return domain.UpsertResult{}, err
	}
	return domain.UpsertResult{ID: outcome.ID, Inserted: outcome.Inserted, Changed: true}, nil
}

// Upsert is the sync variant of Set.
func (r *AvailabilityRepository) Upsert(ctx context.Context, in domain.AvailabilitySyncInput) (domain.UpsertResult, error) {
	return r.Set(ctx, in.Normalize())
}

// Toggle flips the availability flag. It returns nil without writing when
// the status was never set.
func (r *AvailabilityRepository) Toggle(ctx context.Context) (*domain.Availability, error) {
	var toggled *domain.Availability
	err := r.collection.Transaction(ctx, func(tx *store.Collection[models.Availability, *models.Availability]) error {
		doc, err := tx.LookupFirst(ctx, bySlot, models.SingletonSlot)
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		current := availabilityToDomain(*doc)
		next := current.AvailabilityInput.Toggled()
		now := r.now()
		err = tx.Patch(ctx, doc.ID, map[string]any{
			"is_available": next.IsAvailable,
			"status":       string(next.Status),
			"updated_at":   now,
		})
		if err != nil {
			return err
		}

		current.AvailabilityInput = next
		current.UpdatedAt = now
		toggled = &current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toggled, nil
}

func availabilityToDomain(m models.Availability) domain.Availability {
	return domain.Availability{
		ID: m.ID,
		AvailabilityInput: domain.AvailabilityInput{
			IsAvailable: m.IsAvailable,
			Status:      domain.AvailabilityStatus(m.Status),
			Message:     m.Message,
			CalendlyURL: m.CalendlyURL,
		},
		UpdatedAt: m.UpdatedAt,
	}
}
