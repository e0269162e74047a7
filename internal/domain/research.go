package domain

import "time"

type ResearchStatus string

const (
	ResearchStatusResearch ResearchStatus = "research"
	ResearchStatusActive   ResearchStatus = "active"
	ResearchStatusConcept  ResearchStatus = "concept"
)

type ResearchLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// ResearchInput is the synced payload of a research note.
type ResearchInput struct {
	NotionID    string         `json:"notionId"`
	Title       string         `json:"title"`
	Subtitle    string         `json:"subtitle"`
	Description string         `json:"description"`
	Status      ResearchStatus `json:"status"`
	Area        string         `json:"field"`
	Links       []ResearchLink `json:"links"`
	References  []string       `json:"references"`
	Order       int            `json:"order"`
	Published   bool           `json:"published"`
}

func (r ResearchInput) ExternalKey() string { return r.NotionID }

type Research struct {
	ID string `json:"_id"`
	ResearchInput
	SyncedAt time.Time `json:"syncedAt"`
}

func (r Research) RecordID() string { return r.ID }
func (r Research) SortOrder() int   { return r.Order }
func (r Research) Visible() bool    { return r.Published }

func (r Research) Field(name string) (string, bool) {
	switch name {
	case "field":
		return r.Area, true
	case "status":
		return string(r.Status), true
	}
	return "", false
}
