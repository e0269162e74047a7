package store

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/SaharBarak/portfolio-v2-sub001/internal/domain"
)

// Document is the constraint every stored model satisfies through its
// pointer type.
type Document[T any] interface {
	*T
	TableName() string
	Identity() string
	AssignIdentity(id string)
}

// Index declares a secondary index over one or more columns.
type Index struct {
	Name   string
	Fields []string
	Unique bool
}

// Collection is the durable keyed storage of one collection.
type Collection[T any, P Document[T]] struct {
	db      *gorm.DB
	name    string
	indexes map[string]Index
}

// NewCollection binds a model to its declared indexes. name is the logical
// collection name used in errors.
func NewCollection[T any, P Document[T]](db *gorm.DB, name string, indexes ...Index) *Collection[T, P] {
	idx := make(map[string]Index, len(indexes))
	for _, index := range indexes {
		idx[index.Name] = index
	}
	return &Collection[T, P]{
		db:      db,
		name:    name,
		indexes: idx,
	}
}

func (c *Collection[T, P]) Name() string {
	return c.name
}

func (c *Collection[T, P]) table() string {
	return P(new(T)).TableName()
}

// Indexes returns the declared indexes ordered by name.
func (c *Collection[T, P]) Indexes() []Index {
	indexes := make([]Index, 0, len(c.indexes))
	for _, index := range c.indexes {
		indexes = append(indexes, index)
	}
	sort.Slice(indexes, func(i, j int) bool {
		return indexes[i].Name < indexes[j].Name
	})
	return indexes
}

// Migrate creates the table and every declared index. Safe to run
// repeatedly.
func (c *Collection[T, P]) Migrate(ctx context.Context) error {
	db := c.db.WithContext(ctx)
	if err := db.AutoMigrate(P(new(T))); err != nil {
		return errors.Wrapf(err, "store: migrate %s", c.name)
	}

	for _, index := range c.Indexes() {
		unique := ""
		if index.Unique {
			unique = "UNIQUE "
		}
		stmt := fmt.Sprintf(
			"CREATE %sINDEX IF NOT EXISTS %s_%s ON %s (%s)",
			unique, c.table(), index.Name, c.table(), strings.Join(index.Fields, ", "),
		)
		if err := db.Exec(stmt).Error; err != nil {
			return errors.Wrapf(err, "store: create index %s on %s", index.Name, c.name)
		}
	}
	return nil
}

// Transaction runs fn against a copy of the collection bound to a single
// database transaction.
func (c *Collection[T, P]) Transaction(ctx context.Context, fn func(tx *Collection[T, P]) error) error {
	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Collection[T, P]{db: tx, name: c.name, indexes: c.indexes})
	})
}

func (c *Collection[T, P]) index(name string, values []any) (Index, error) {
	index, ok := c.indexes[name]
	if !ok {
		return Index{}, fmt.Errorf("store: %s has no index %q", c.name, name)
	}
	if len(values) != len(index.Fields) {
		return Index{}, fmt.Errorf("store: index %s.%s takes %d values, got %d", c.name, name, len(index.Fields), len(values))
	}
	return index, nil
}

func (c *Collection[T, P]) where(db *gorm.DB, index Index, values []any) *gorm.DB {
	for i, field := range index.Fields {
		db = db.Where(field+" = ?", values[i])
	}
	return db
}

func (c *Collection[T, P]) translate(err error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.NotFoundError{Resource: c.name}
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.DuplicateKeyError{Collection: c.name, Index: "unique index"}
	}
	return errors.Wrapf(err, "store: %s %s", op, c.name)
}

func newIdentity() string {
	return uuid.NewString()
}
