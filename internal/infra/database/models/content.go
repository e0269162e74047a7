package models

import "github.com/SaharBarak/portfolio-v2-sub001/internal/domain"

type Project struct {
	Base
	Synced
	Title       string              `json:"title" gorm:"type:text;not null"`
	Subtitle    string              `json:"subtitle" gorm:"type:text"`
	Description string              `json:"description" gorm:"type:text"`
	URL         string              `json:"url" gorm:"type:text"`
	Logo        *string             `json:"logo" gorm:"type:text"`
	Colors      JSON[domain.Colors] `json:"colors"`
	SortOrder   int                 `json:"order" gorm:"not null;default:0"`
	Published   bool                `json:"published" gorm:"not null;default:false"`
}

func (Project) TableName() string { return "projects" }

type Research struct {
	Base
	Synced
	Title       string                      `json:"title" gorm:"type:text;not null"`
	Subtitle    string                      `json:"subtitle" gorm:"type:text"`
	Description string                      `json:"description" gorm:"type:text"`
	Status      string                      `json:"status" gorm:"type:text;not null"`
	Area        string                      `json:"field" gorm:"type:text"`
	Links       JSON[[]domain.ResearchLink] `json:"links"`
	References  JSON[[]string]              `json:"references" gorm:"column:refs"`
	SortOrder   int                         `json:"order" gorm:"not null;default:0"`
	Published   bool                        `json:"published" gorm:"not null;default:false"`
}

func (Research) TableName() string { return "research" }

type Contribution struct {
	Base
	Synced
	Name        string  `json:"name" gorm:"type:text;not null"`
	Description string  `json:"description" gorm:"type:text"`
	Type        string  `json:"type" gorm:"type:text;not null"`
	URL         string  `json:"url" gorm:"type:text"`
	Stars       *int    `json:"stars"`
	PRs         *int    `json:"prs" gorm:"column:prs"`
	Language    *string `json:"language" gorm:"type:text"`
	Downloads   *string `json:"downloads" gorm:"type:text"`
	Version     *string `json:"version" gorm:"type:text"`
	SortOrder   int     `json:"order" gorm:"not null;default:0"`
	Published   bool    `json:"published" gorm:"not null;default:false"`
}

func (Contribution) TableName() string { return "contributions" }

type NowItem struct {
	Base
	Synced
	Section     string  `json:"section" gorm:"type:text;not null"`
	Title       string  `json:"title" gorm:"type:text;not null"`
	Description *string `json:"description" gorm:"type:text"`
	Emoji       *string `json:"emoji" gorm:"type:text"`
	URL         *string `json:"url" gorm:"type:text"`
	SortOrder   int     `json:"order" gorm:"not null;default:0"`
	Published   bool    `json:"published" gorm:"not null;default:false"`
}

func (NowItem) TableName() string { return "now_items" }

type Link struct {
	Base
	Synced
	Category string  `json:"category" gorm:"type:text;not null"`
	Name     string  `json:"name" gorm:"type:text;not null"`
	URL      string  `json:"url" gorm:"type:text;not null"`
	Label    *string `json:"label" gorm:"type:text"`
}

func (Link) TableName() string { return "links" }

type Blog struct {
	Base
	Synced
	Title      string         `json:"title" gorm:"type:text;not null"`
	Slug       string         `json:"slug" gorm:"type:text;not null"`
	Date       string         `json:"date" gorm:"type:text;not null"`
	Tags       JSON[[]string] `json:"tags"`
	Excerpt    string         `json:"excerpt" gorm:"type:text"`
	Content    string         `json:"content" gorm:"type:text"`
	CoverImage *string        `json:"coverImage" gorm:"type:text"`
	Published  bool           `json:"published" gorm:"not null;default:false"`
}

func (Blog) TableName() string { return "blog" }
