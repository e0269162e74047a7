package store

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/SaharBarak/portfolio-v2-sub001/internal/domain"
)

const stableOrder = "created_at ASC, id ASC"

// Get is a point lookup by identity.
func (c *Collection[T, P]) Get(ctx context.Context, id string) (P, error) {
	var doc T
	err := c.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&doc).Error
	if err != nil {
		return nil, c.translate(err, "get")
	}
	return &doc, nil
}

// Scan returns every record of the collection in stable store order.
func (c *Collection[T, P]) Scan(ctx context.Context) ([]T, error) {
	var docs []T
	err := c.db.WithContext(ctx).
		Order(stableOrder).
		Find(&docs).Error
	if err != nil {
		return nil, c.translate(err, "scan")
	}
	return docs, nil
}

// Lookup returns every record whose indexed columns equal values.
func (c *Collection[T, P]) Lookup(ctx context.Context, index string, values ...any) ([]T, error) {
	return c.LookupLimit(ctx, -1, index, values...)
}

// LookupLimit is Lookup capped at limit records. A negative limit means no
// cap.
func (c *Collection[T, P]) LookupLimit(ctx context.Context, limit int, index string, values ...any) ([]T, error) {
	idx, err := c.index(index, values)
	if err != nil {
		return nil, err
	}

	var docs []T
	query := c.where(c.db.WithContext(ctx), idx, values).Order(stableOrder)
	if limit >= 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&docs).Error; err != nil {
		return nil, c.translate(err, "lookup")
	}
	return docs, nil
}

// LookupFirst returns the first record matching the index in stable store
// order, or a NotFoundError.
func (c *Collection[T, P]) LookupFirst(ctx context.Context, index string, values ...any) (P, error) {
	idx, err := c.index(index, values)
	if err != nil {
		return nil, err
	}

	var doc T
	err = c.where(c.db.WithContext(ctx), idx, values).
		Order(stableOrder).
		Take(&doc).Error
	if err != nil {
		return nil, c.translate(err, "lookup")
	}
	return &doc, nil
}

// Count returns the number of records matching the index.
func (c *Collection[T, P]) Count(ctx context.Context, index string, values ...any) (int64, error) {
	idx, err := c.index(index, values)
	if err != nil {
		return 0, err
	}

	var count int64
	err = c.where(c.db.WithContext(ctx).Model(P(new(T))), idx, values).
		Count(&count).Error
	if err != nil {
		return 0, c.translate(err, "count")
	}
	return count, nil
}

// Exists reports whether any record matches the index.
func (c *Collection[T, P]) Exists(ctx context.Context, index string, values ...any) (bool, error) {
	_, err := c.LookupFirst(ctx, index, values...)
	if err == nil {
		return true, nil
	}
	if isNotFound(err) {
		return false, nil
	}
	return false, err
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound)
}
