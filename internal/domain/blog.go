package domain

import (
	"slices"
	"time"
)

// BlogInput is the synced payload of a blog post. Date is the publication
// day as written in the CMS, YYYY-MM-DD.
type BlogInput struct {
	NotionID   string   `json:"notionId"`
	Title      string   `json:"title"`
	Slug       string   `json:"slug"`
	Date       string   `json:"date"`
	Tags       []string `json:"tags"`
	Excerpt    string   `json:"excerpt"`
	Content    string   `json:"content"`
	CoverImage *string  `json:"coverImage,omitempty"`
	Published  bool     `json:"published"`
}

func (b BlogInput) ExternalKey() string { return b.NotionID }

type BlogPost struct {
	ID string `json:"_id"`
	BlogInput
	SyncedAt time.Time `json:"syncedAt"`
}

func (b BlogPost) RecordID() string { return b.ID }
func (b BlogPost) Visible() bool    { return b.Published }

// SortOrder puts newer posts first. Posts with an unreadable date go last.
func (b BlogPost) SortOrder() int {
	date := b.Date
	if len(date) > len(time.DateOnly) {
		date = date[:len(time.DateOnly)]
	}
	day, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return 0
	}
	return -int(day.Unix() / 86400)
}

func (b BlogPost) Field(name string) (string, bool) {
	if name == FieldSlug {
		return b.Slug, true
	}
	return "", false
}

func (b BlogPost) ListField(name string) ([]string, bool) {
	if name == FieldTag {
		return b.Tags, true
	}
	return nil, false
}

// Summary drops the post body for list views.
func (b BlogPost) Summary() BlogSummary {
	return BlogSummary{
		ID:         b.ID,
		Title:      b.Title,
		Slug:       b.Slug,
		Date:       b.Date,
		Tags:       b.Tags,
		Excerpt:    b.Excerpt,
		CoverImage: b.CoverImage,
	}
}

type BlogSummary struct {
	ID         string   `json:"_id"`
	Title      string   `json:"title"`
	Slug       string   `json:"slug"`
	Date       string   `json:"date"`
	Tags       []string `json:"tags"`
	Excerpt    string   `json:"excerpt"`
	CoverImage *string  `json:"coverImage,omitempty"`
}

// BlogTags returns the distinct tags of posts in lexical order.
func BlogTags(posts []BlogPost) []string {
	tags := []string{}
	for _, post := range posts {
		for _, tag := range post.Tags {
			if !slices.Contains(tags, tag) {
				tags = append(tags, tag)
			}
		}
	}
	slices.Sort(tags)
	return tags
}
