package domain

import "time"

// LinkInput is the synced payload of a centrally managed URL.
type LinkInput struct {
	NotionID string  `json:"notionId"`
	Category string  `json:"category"`
	Name     string  `json:"name"`
	URL      string  `json:"url"`
	Label    *string `json:"label,omitempty"`
}

func (l LinkInput) ExternalKey() string { return l.NotionID }

// Link has neither an ordering key nor a published flag.
type Link struct {
	ID string `json:"_id"`
	LinkInput
	SyncedAt time.Time `json:"syncedAt"`
}

func (l Link) RecordID() string { return l.ID }
func (l Link) SortOrder() int   { return 0 }
func (l Link) Visible() bool    { return true }

func (l Link) Field(name string) (string, bool) {
	switch name {
	case FieldCategory:
		return l.Category, true
	case FieldName:
		return l.Name, true
	}
	return "", false
}
