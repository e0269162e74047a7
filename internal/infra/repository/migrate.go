package repository

import (
	"context"

	"gorm.io/gorm"
)

type migrator interface {
	Name() string
	Migrate(ctx context.Context) error
}

// Repositories groups every collection repository over one database.
type Repositories struct {
	Projects      *ProjectRepository
	Research      *ResearchRepository
	Contributions *ContributionRepository
	Now           *NowRepository
	Links         *LinkRepository
	Blog          *BlogRepository
	About         *AboutRepository
	Availability  *AvailabilityRepository
	Likes         *LikeRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Projects:      NewProjectRepository(db),
		Research:      NewResearchRepository(db),
		Contributions: NewContributionRepository(db),
		Now:           NewNowRepository(db),
		Links:         NewLinkRepository(db),
		Blog:          NewBlogRepository(db),
		About:         NewAboutRepository(db),
		Availability:  NewAvailabilityRepository(db),
		Likes:         NewLikeRepository(db),
	}
}

// Migrate creates every table and index. Safe to run on every start.
func (r *Repositories) Migrate(ctx context.Context) error {
	for _, m := range []migrator{
		r.Projects,
		r.Research,
		r.Contributions,
		r.Now,
		r.Links,
		r.Blog,
		r.About,
		r.Availability,
		r.Likes,
	} {
		if err := m.Migrate(ctx); err != nil {
			return err
		}
	}
	return nil
}
