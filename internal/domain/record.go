package domain

import (
	"slices"
	"time"
)

// Record is the read-side view shared by every collection.
type Record interface {
	RecordID() string
	// SortOrder is the presentation order. Collections without an ordering
	// key return 0 so that stable store order decides.
	SortOrder() int
	// Visible reports the published flag. Collections without one are
	// always visible.
	Visible() bool
	// Field returns the value of a grouping or lookup field.
	Field(name string) (string, bool)
}

// ListFielder is implemented by records with list-valued fields.
type ListFielder interface {
	ListField(name string) ([]string, bool)
}

// MatchField reports whether record's field equals value, or for a
// list-valued field, contains it. known is false when the record has no
// such field.
func MatchField(record Record, field, value string) (matched, known bool) {
	if lf, ok := any(record).(ListFielder); ok {
		if values, ok := lf.ListField(field); ok {
			return slices.Contains(values, value), true
		}
	}
	v, ok := record.Field(field)
	if !ok {
		return false, false
	}
	return v == value, true
}

// Synced is implemented by payloads mirrored from the external CMS.
type Synced interface {
	ExternalKey() string
}

// UpsertResult describes the outcome of a reconciler write.
type UpsertResult struct {
	ID       string `json:"id"`
	Inserted bool   `json:"inserted"`
	Changed  bool   `json:"changed"`
}

// ChangeEvent is published whenever a write changes a collection.
type ChangeEvent struct {
	Collection string    `json:"collection"`
	ID         string    `json:"id,omitempty"`
	Op         ChangeOp  `json:"op"`
	At         time.Time `json:"at"`
}
