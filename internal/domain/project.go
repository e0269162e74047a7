package domain

import "time"

// Colors is the palette a project card is rendered with.
type Colors struct {
	Bg        string  `json:"bg"`
	Accent    string  `json:"accent"`
	Text      string  `json:"text"`
	TextMuted *string `json:"textMuted,omitempty"`
}

// ProjectInput is the synced payload of a featured project.
type ProjectInput struct {
	NotionID    string  `json:"notionId"`
	Title       string  `json:"title"`
	Subtitle    string  `json:"subtitle"`
	Description string  `json:"description"`
	URL         string  `json:"url"`
	Logo        *string `json:"logo,omitempty"`
	Colors      Colors  `json:"colors"`
	Order       int     `json:"order"`
	Published   bool    `json:"published"`
}

func (p ProjectInput) ExternalKey() string { return p.NotionID }

type Project struct {
	ID string `json:"_id"`
	ProjectInput
	SyncedAt time.Time `json:"syncedAt"`
}

func (p Project) RecordID() string { return p.ID }
func (p Project) SortOrder() int   { return p.Order }
func (p Project) Visible() bool    { return p.Published }

func (p Project) Field(name string) (string, bool) {
	return "", false
}
