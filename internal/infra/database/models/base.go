package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// SingletonSlot is the only value the slot column of a singleton table may
// hold. A unique index on slot keeps such tables at zero or one row.
const SingletonSlot = "singleton"

// Base carries the columns every table shares.
type Base struct {
	ID        string    `json:"id" gorm:"primaryKey;type:text"`
	CreatedAt time.Time `json:"createdAt" gorm:"not null"`
}

func (b *Base) Identity() string         { return b.ID }
func (b *Base) AssignIdentity(id string) { b.ID = id }

// Synced carries the reconciler bookkeeping columns.
type Synced struct {
	NotionID    string    `json:"notionId" gorm:"type:text;not null"`
	ContentHash string    `json:"contentHash" gorm:"type:text;not null;default:''"`
	SyncedAt    time.Time `json:"syncedAt"`
}

// JSON stores a structured value in a single column: jsonb on postgres,
// text elsewhere.
type JSON[T any] struct {
	Data T
}

func NewJSON[T any](v T) JSON[T] {
	return JSON[T]{Data: v}
}

func (j JSON[T]) Value() (driver.Value, error) {
	b, err := json.Marshal(j.Data)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (j *JSON[T]) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		var zero T
		j.Data = zero
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("models: cannot scan %T into JSON", src)
	}
	return json.Unmarshal(raw, &j.Data)
}

func (JSON[T]) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "jsonb"
	}
	return "text"
}

func (s *Synced) SyncState() *Synced { return s }
