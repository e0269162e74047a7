package domain

import "time"

type Venture struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

type StackGroup struct {
	Label string   `json:"label"`
	Items []string `json:"items"`
}

type SocialLinks struct {
	Email    string  `json:"email"`
	GitHub   *string `json:"github,omitempty"`
	LinkedIn *string `json:"linkedin,omitempty"`
	Twitter  *string `json:"twitter,omitempty"`
}

// AboutInput is the synced payload of the site-wide biography.
type AboutInput struct {
	NotionID     string       `json:"notionId"`
	HeroImages   []string     `json:"heroImages"`
	Headline     string       `json:"headline"`
	Tagline      string       `json:"tagline"`
	Bio          string       `json:"bio"`
	BioSecondary *string      `json:"bioSecondary,omitempty"`
	Ventures     []Venture    `json:"ventures"`
	Freelance    Venture      `json:"freelance"`
	Research     string       `json:"research"`
	Stack        []StackGroup `json:"stack"`
	Hobbies      string       `json:"hobbies"`
	SocialLinks  SocialLinks  `json:"socialLinks"`
}

func (a AboutInput) ExternalKey() string { return a.NotionID }

type About struct {
	ID string `json:"_id"`
	AboutInput
	SyncedAt time.Time `json:"syncedAt"`
}
