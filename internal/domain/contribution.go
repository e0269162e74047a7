package domain

import "time"

type ContributionType string

const (
	ContributionRepo ContributionType = "repo"
	ContributionNpm  ContributionType = "npm"
)

// ContributionInput is the synced payload of an open source contribution
// (a GitHub repository or an npm package).
type ContributionInput struct {
	NotionID    string           `json:"notionId"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Type        ContributionType `json:"type"`
	URL         string           `json:"url"`
	Stars       *int             `json:"stars,omitempty"`
	PRs         *int             `json:"prs,omitempty"`
	Language    *string          `json:"language,omitempty"`
	Downloads   *string          `json:"downloads,omitempty"`
	Version     *string          `json:"version,omitempty"`
	Order       int              `json:"order"`
	Published   bool             `json:"published"`
}

func (c ContributionInput) ExternalKey() string { return c.NotionID }

type Contribution struct {
	ID string `json:"_id"`
	ContributionInput
	SyncedAt time.Time `json:"syncedAt"`
}

func (c Contribution) RecordID() string { return c.ID }
func (c Contribution) SortOrder() int   { return c.Order }
func (c Contribution) Visible() bool    { return c.Published }

func (c Contribution) Field(name string) (string, bool) {
	switch name {
	case FieldType:
		return string(c.Type), true
	case FieldName:
		return c.Name, true
	}
	return "", false
}
