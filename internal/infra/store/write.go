package store

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/SaharBarak/portfolio-v2-sub001/internal/domain"
)

// Conflict names the unique index an Upsert converges on, the key value for
// each of its columns, and the columns overwritten when the key already
// exists.
type Conflict struct {
	Index   string
	Key     []any
	Columns []string
}

// UpsertOutcome reports what an Upsert did. Previous is the row as it was
// before the write, nil when the key was new.
type UpsertOutcome[T any] struct {
	ID       string
	Inserted bool
	Previous *T
}

// Insert stores a new record and returns its identity.
func (c *Collection[T, P]) Insert(ctx context.Context, doc P) (string, error) {
	if doc.Identity() == "" {
		doc.AssignIdentity(newIdentity())
	}
	if err := c.db.WithContext(ctx).Create(doc).Error; err != nil {
		return "", c.translate(err, "insert")
	}
	return doc.Identity(), nil
}

// Patch overwrites the named columns of an existing record.
func (c *Collection[T, P]) Patch(ctx context.Context, id string, fields map[string]any) error {
	if len(fields) == 0 {
		_, err := c.Get(ctx, id)
		return err
	}

	result := c.db.WithContext(ctx).
		Model(P(new(T))).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return c.translate(result.Error, "patch")
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundError{Resource: c.name}
	}
	return nil
}

// Delete removes a record by identity and reports whether it existed.
func (c *Collection[T, P]) Delete(ctx context.Context, id string) (bool, error) {
	result := c.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(P(new(T)))
	if result.Error != nil {
		return false, c.translate(result.Error, "delete")
	}
	return result.RowsAffected > 0, nil
}

// DeleteBy removes every record matching the index and returns how many
// were removed.
func (c *Collection[T, P]) DeleteBy(ctx context.Context, index string, values ...any) (int64, error) {
	idx, err := c.index(index, values)
	if err != nil {
		return 0, err
	}

	result := c.where(c.db.WithContext(ctx), idx, values).Delete(P(new(T)))
	if result.Error != nil {
		return 0, c.translate(result.Error, "delete")
	}
	return result.RowsAffected, nil
}

// Upsert writes doc, converging on the unique index named by on. When a
// record with the same key exists, only on.Columns are overwritten and the
// existing identity survives. doc is refreshed with the stored row.
//
// The insert is attempted first with ON CONFLICT DO NOTHING. When it loses,
// the surviving row is read under a row lock, so Previous is the row this
// call overwrote even if a concurrent writer created it a moment earlier.
func (c *Collection[T, P]) Upsert(ctx context.Context, doc P, on Conflict) (UpsertOutcome[T], error) {
	idx, err := c.index(on.Index, on.Key)
	if err != nil {
		return UpsertOutcome[T]{}, err
	}
	if !idx.Unique {
		return UpsertOutcome[T]{}, errors.New("store: upsert requires a unique index, " + on.Index + " is not")
	}

	if doc.Identity() == "" {
		doc.AssignIdentity(newIdentity())
	}
	candidate := doc.Identity()

	columns := make([]clause.Column, len(idx.Fields))
	for i, field := range idx.Fields {
		columns[i] = clause.Column{Name: field}
	}

	var outcome UpsertOutcome[T]
	err = c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// a row removed between the lost insert and the locking read gets
		// one more insert attempt
		for attempt := 0; attempt < 2; attempt++ {
			doc.AssignIdentity(candidate)
			result := tx.Clauses(clause.OnConflict{Columns: columns, DoNothing: true}).Create(doc)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected > 0 {
				outcome = UpsertOutcome[T]{ID: candidate, Inserted: true}
				return c.refresh(tx, idx, on.Key, doc)
			}

			var previous T
			err := c.where(tx, idx, on.Key).
				Clauses(clause.Locking{Strength: "UPDATE"}).
				Take(&previous).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			if err != nil {
				return err
			}

			existing := P(&previous).Identity()
			if len(on.Columns) > 0 {
				doc.AssignIdentity(existing)
				if err := tx.Model(doc).Select(on.Columns).Updates(doc).Error; err != nil {
					return err
				}
			}
			outcome = UpsertOutcome[T]{ID: existing, Previous: &previous}
			return c.refresh(tx, idx, on.Key, doc)
		}
		return errors.Errorf("store: %s key kept disappearing during upsert", c.name)
	})
	if err != nil {
		return UpsertOutcome[T]{}, c.translate(err, "upsert")
	}
	return outcome, nil
}

// refresh overwrites doc with the stored row addressed by key.
func (c *Collection[T, P]) refresh(tx *gorm.DB, idx Index, key []any, doc P) error {
	var stored T
	if err := c.where(tx, idx, key).Take(&stored).Error; err != nil {
		return err
	}
	*doc = stored
	return nil
}

// InsertIfAbsent stores doc unless a record with the same key already
// exists under the unique index, and reports whether it inserted.
func (c *Collection[T, P]) InsertIfAbsent(ctx context.Context, doc P, index string) (bool, error) {
	idx, ok := c.indexes[index]
	if !ok || !idx.Unique {
		return false, errors.New("store: insert-if-absent requires a unique index, got " + index)
	}
	if doc.Identity() == "" {
		doc.AssignIdentity(newIdentity())
	}

	columns := make([]clause.Column, len(idx.Fields))
	for i, field := range idx.Fields {
		columns[i] = clause.Column{Name: field}
	}
	result := c.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: columns, DoNothing: true}).
		Create(doc)
	if result.Error != nil {
		return false, c.translate(result.Error, "insert")
	}
	return result.RowsAffected > 0, nil
}
