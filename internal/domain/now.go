package domain

import "time"

// NowInput is the synced payload of a "now" page entry.
type NowInput struct {
	NotionID    string  `json:"notionId"`
	Section     string  `json:"section"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Emoji       *string `json:"emoji,omitempty"`
	URL         *string `json:"url,omitempty"`
	Order       int     `json:"order"`
	Published   bool    `json:"published"`
}

func (n NowInput) ExternalKey() string { return n.NotionID }

type NowItem struct {
	ID string `json:"_id"`
	NowInput
	SyncedAt time.Time `json:"syncedAt"`
}

func (n NowItem) RecordID() string { return n.ID }
func (n NowItem) SortOrder() int   { return n.Order }
func (n NowItem) Visible() bool    { return n.Published }

func (n NowItem) Field(name string) (string, bool) {
	if name == FieldSection {
		return n.Section, true
	}
	return "", false
}
