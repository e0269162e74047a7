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

const byNotionID = "by_notion_id"

type syncedModel[M any] interface {
	store.Document[M]
	SyncState() *models.Synced
}

// SyncedRepository stores one collection mirrored from the CMS, addressed by
// the external key for writes and by identity or index for reads.
type SyncedRepository[I domain.Synced, T domain.Record, M any, PM syncedModel[M]] struct {
	collection *store.Collection[M, PM]
	toModel    func(I) M
	toDomain   func(M) T
	// columns overwritten when the external key already exists
	columns []string
	// record field -> index serving equality lookups on it
	lookups map[string]string
	// collection has a published flag served by byPublished
	published bool
	now       func() time.Time
}

type syncedOptions[I domain.Synced, T domain.Record, M any] struct {
	name     string
	toModel  func(I) M
	toDomain func(M) T
	columns  []string
	indexes  []store.Index
	lookups  map[string]string
	// published adds the byPublished index and serves Published from it
	published bool
}

func newSyncedRepository[I domain.Synced, T domain.Record, M any, PM syncedModel[M]](db *gorm.DB, opts syncedOptions[I, T, M]) *SyncedRepository[I, T, M, PM] {
	indexes := append([]store.Index{
		{Name: byNotionID, Fields: []string{"notion_id"}, Unique: true},
	}, opts.indexes...)
	if opts.published {
		indexes = append(indexes, byPublished)
	}

	return &SyncedRepository[I, T, M, PM]{
		collection: store.NewCollection[M, PM](db, opts.name, indexes...),
		toModel:    opts.toModel,
		toDomain:   opts.toDomain,
		columns:    append(append([]string{}, opts.columns...), "content_hash", "synced_at"),
		lookups:    opts.lookups,
		published:  opts.published,
		now:        time.Now,
	}
}

func (r *SyncedRepository[I, T, M, PM]) Name() string {
	return r.collection.Name()
}

func (r *SyncedRepository[I, T, M, PM]) Migrate(ctx context.Context) error {
	return r.collection.Migrate(ctx)
}

// Upsert inserts the record addressed by the payload's external key or
// overwrites its payload columns. The identity of an existing record
// survives.
func (r *SyncedRepository[I, T, M, PM]) Upsert(ctx context.Context, input I) (domain.UpsertResult, error) {
	hash, err := contentHash(input)
	if err != nil {
		return domain.UpsertResult{}, errors.Wrap(err, "hash payload")
	}

	model := r.toModel(input)
	doc := PM(&model)
	state := doc.SyncState()
	state.NotionID = input.ExternalKey()
	state.ContentHash = hash
	state.SyncedAt = r.now()

	outcome, err := r.collection.Upsert(ctx, doc, store.Conflict{
		Index:   byNotionID,
		Key:     []any{input.ExternalKey()},
		Columns: r.columns,
	})
	if err != nil {
		return domain.UpsertResult{}, err
	}

	changed := outcome.Inserted || outcome.Previous == nil ||
		PM(outcome.Previous).SyncState().ContentHash != hash
	return domain.UpsertResult{
		ID:       outcome.ID,
		Inserted: outcome.Inserted,
		Changed:  changed,
	}, nil
}

// Remove deletes the record with the external key and reports whether one
// existed.
func (r *SyncedRepository[I, T, M, PM]) Remove(ctx context.Context, externalKey string) (bool, error) {
	n, err := r.collection.DeleteBy(ctx, byNotionID, externalKey)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *SyncedRepository[I, T, M, PM]) All(ctx context.Context) ([]T, error) {
	docs, err := r.collection.Scan(ctx)
	if err != nil {
		return nil, err
	}
	return r.mapAll(docs), nil
}

// Published returns the records with the published flag set, or every
// record for collections without one.
func (r *SyncedRepository[I, T, M, PM]) Published(ctx context.Context) ([]T, error) {
	if !r.published {
		return r.All(ctx)
	}
	docs, err := r.collection.Lookup(ctx, byPublished.Name, true)
	if err != nil {
		return nil, err
	}
	return r.mapAll(docs), nil
}

func (r *SyncedRepository[I, T, M, PM]) Get(ctx context.Context, id string) (*T, error) {
	doc, err := r.collection.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	record := r.toDomain(*doc)
	return &record, nil
}

// FindBy returns the records whose field equals value. Fields backed by an
// index are looked up, others are filtered from a scan.
func (r *SyncedRepository[I, T, M, PM]) FindBy(ctx context.Context, field, value string) ([]T, error) {
	if index, ok := r.lookups[field]; ok {
		docs, err := r.collection.Lookup(ctx, index, value)
		if err != nil {
			return nil, err
		}
		return r.mapAll(docs), nil
	}

	all, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]T, 0, len(all))
	for _, record := range all {
		ok, known := domain.MatchField(record, field, value)
		if !known {
			return nil, errors.Errorf("%s has no field %q", r.Name(), field)
		}
		if ok {
			matched = append(matched, record)
		}
	}
	return matched, nil
}

func (r *SyncedRepository[I, T, M, PM]) mapAll(docs []M) []T {
	records := make([]T, len(docs))
	for i, doc := range docs {
		records[i] = r.toDomain(doc)
	}
	return records
}
