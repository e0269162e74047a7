package models

import (
	"time"

	"github.com/SaharBarak/portfolio-v2-sub001/internal/domain"
)

type About struct {
	Base
	Synced
	Slot         string                    `json:"-" gorm:"type:text;not null"`
	HeroImages   JSON[[]string]            `json:"heroImages"`
	Headline     string                    `json:"headline" gorm:"type:text"`
	Tagline      string                    `json:"tagline" gorm:"type:text"`
	Bio          string                    `json:"bio" gorm:"type:text"`
	BioSecondary *string                   `json:"bioSecondary" gorm:"type:text"`
	Ventures     JSON[[]domain.Venture]    `json:"ventures"`
	Freelance    JSON[domain.Venture]      `json:"freelance"`
	Research     string                    `json:"research" gorm:"type:text"`
	Stack        JSON[[]domain.StackGroup] `json:"stack"`
	Hobbies      string                    `json:"hobbies" gorm:"type:text"`
	SocialLinks  JSON[domain.SocialLinks]  `json:"socialLinks"`
}

func (About) TableName() string { return "about" }

// Availability has no external key or content hash. Every write restamps
// UpdatedAt and counts as a change.
type Availability struct {
	Base
	Slot        string    `json:"-" gorm:"type:text;not null"`
	IsAvailable bool      `json:"isAvailable" gorm:"not null;default:false"`
	Status      string    `json:"status" gorm:"type:text;not null"`
	Message     *string   `json:"message" gorm:"type:text"`
	CalendlyURL string    `json:"calendlyUrl" gorm:"type:text;not null;default:''"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Availability) TableName() string { return "availability" }
