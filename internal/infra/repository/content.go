package repository

import (
	"gorm.io/gorm"

	"github.com/SaharBarak/portfolio-v2-sub001/internal/domain"
	"github.com/SaharBarak/portfolio-v2-sub001/internal/infra/database/models"
	"github.com/SaharBarak/portfolio-v2-sub001/internal/infra/store"
)

var byPublished = store.Index{Name: "by_published", Fields: []string{"published"}}

type ProjectRepository = SyncedRepository[domain.ProjectInput, domain.Project, models.Project, *models.Project]

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return newSyncedRepository[domain.ProjectInput, domain.Project, models.Project, *models.Project](db, syncedOptions[domain.ProjectInput, domain.Project, models.Project]{
		name:      domain.CollectionProjects,
		published: true,
		columns:   []string{"title", "subtitle", "description", "url", "logo", "colors", "sort_order", "published"},
		toModel: func(in domain.ProjectInput) models.Project {
			return models.Project{
				Title:       in.Title,
				Subtitle:    in.Subtitle,
				Description: in.Description,
				URL:         in.URL,
				Logo:        in.Logo,
				Colors:      models.NewJSON(in.Colors),
				SortOrder:   in.Order,
				Published:   in.Published,
			}
		},
		toDomain: func(m models.Project) domain.Project {
			return domain.Project{
				ID: m.ID,
				ProjectInput: domain.ProjectInput{
					NotionID:    m.NotionID,
					Title:       m.Title,
					Subtitle:    m.Subtitle,
					Description: m.Description,
					URL:         m.URL,
					Logo:        m.Logo,
					Colors:      m.Colors.Data,
					Order:       m.SortOrder,
					Published:   m.Published,
				},
				SyncedAt: m.SyncedAt,
			}
		},
	})
}

type ResearchRepository = SyncedRepository[domain.ResearchInput, domain.Research, models.Research, *models.Research]

func NewResearchRepository(db *gorm.DB) *ResearchRepository {
	return newSyncedRepository[domain.ResearchInput, domain.Research, models.Research, *models.Research](db, syncedOptions[domain.ResearchInput, domain.Research, models.Research]{
		name:      domain.CollectionResearch,
		published: true,
		columns:   []string{"title", "subtitle", "description", "status", "area", "links", "refs", "sort_order", "published"},
		toModel: func(in domain.ResearchInput) models.Research {
			return models.Research{
				Title:       in.Title,
				Subtitle:    in.Subtitle,
				Description: in.Description,
				Status:      string(in.Status),
				Area:        in.Area,
				Links:       models.NewJSON(in.Links),
				References:  models.NewJSON(in.References),
				SortOrder:   in.Order,
				Published:   in.Published,
			}
		},
		toDomain: func(m models.Research) domain.Research {
			return domain.Research{
				ID: m.ID,
				ResearchInput: domain.ResearchInput{
					NotionID:    m.NotionID,
					Title:       m.Title,
					Subtitle:    m.Subtitle,
					Description: m.Description,
					Status:      domain.ResearchStatus(m.Status),
					Area:        m.Area,
					Links:       m.Links.Data,
					References:  m.References.Data,
					Order:       m.SortOrder,
					Published:   m.Published,
				},
				SyncedAt: m.SyncedAt,
			}
		},
	})
}

type ContributionRepository = SyncedRepository[domain.ContributionInput, domain.Contribution, models.Contribution, *models.Contribution]

func NewContributionRepository(db *gorm.DB) *ContributionRepository {
	return newSyncedRepository[domain.ContributionInput, domain.Contribution, models.Contribution, *models.Contribution](db, syncedOptions[domain.ContributionInput, domain.Contribution, models.Contribution]{
		name:      domain.CollectionContributions,
		published: true,
		indexes: []store.Index{
			{Name: "by_type", Fields: []string{"type"}},
		},
		lookups: map[string]string{domain.FieldType: "by_type"},
		columns: []string{"name", "description", "type", "url", "stars", "prs", "language", "downloads", "version", "sort_order", "published"},
		toModel: func(in domain.ContributionInput) models.Contribution {
			return models.Contribution{
				Name:        in.Name,
				Description: in.Description,
				Type:        string(in.Type),
				URL:         in.URL,
				Stars:       in.Stars,
				PRs:         in.PRs,
				Language:    in.Language,
				Downloads:   in.Downloads,
				Version:     in.Version,
				SortOrder:   in.Order,
				Published:   in.Published,
			}
		},
		toDomain: func(m models.Contribution) domain.Contribution {
			return domain.Contribution{
				ID: m.ID,
				ContributionInput: domain.ContributionInput{
					NotionID:    m.NotionID,
					Name:        m.Name,
					Description: m.Description,
					Type:        domain.ContributionType(m.Type),
					URL:         m.URL,
					Stars:       m.Stars,
					PRs:         m.PRs,
					Language:    m.Language,
					Downloads:   m.Downloads,
					Version:     m.Version,
					Order:       m.SortOrder,
					Published:   m.Published,
				},
				SyncedAt: m.SyncedAt,
			}
		},
	})
}

type NowRepository = SyncedRepository[domain.NowInput, domain.NowItem, models.NowItem, *models.NowItem]

func NewNowRepository(db *gorm.DB) *NowRepository {
	return newSyncedRepository[domain.NowInput, domain.NowItem, models.NowItem, *models.NowItem](db, syncedOptions[domain.NowInput, domain.NowItem, models.NowItem]{
		name:      domain.CollectionNow,
		published: true,
		indexes: []store.Index{
			{Name: "by_section", Fields: []string{"section"}},
		},
		lookups: map[string]string{domain.FieldSection: "by_section"},
		columns: []string{"section", "title", "description", "emoji", "url", "sort_order", "published"},
		toModel: func(in domain.NowInput) models.NowItem {
			return models.NowItem{
				Section:     in.Section,
				Title:       in.Title,
				Description: in.Description,
				Emoji:       in.Emoji,
				URL:         in.URL,
				SortOrder:   in.Order,
				Published:   in.Published,
			}
		},
		toDomain: func(m models.NowItem) domain.NowItem {
			return domain.NowItem{
				ID: m.ID,
				NowInput: domain.NowInput{
					NotionID:    m.NotionID,
					Section:     m.Section,
					Title:       m.Title,
					Description: m.Description,
					Emoji:       m.Emoji,
					URL:         m.URL,
					Order:       m.SortOrder,
					Published:   m.Published,
				},
				SyncedAt: m.SyncedAt,
			}
		},
	})
}

type LinkRepository = SyncedRepository[domain.LinkInput, domain.Link, models.Link, *models.Link]

func NewLinkRepository(db *gorm.DB) *LinkRepository {
	return newSyncedRepository[domain.LinkInput, domain.Link, models.Link, *models.Link](db, syncedOptions[domain.LinkInput, domain.Link, models.Link]{
		name: domain.CollectionLinks,
		indexes: []store.Index{
			{Name: "by_category", Fields: []string{"category"}},
			{Name: "by_name", Fields: []string{"name"}},
		},
		lookups: map[string]string{
			domain.FieldCategory: "by_category",
			domain.FieldName:     "by_name",
		},
		columns: []string{"category", "name", "url", "label"},
		toModel: func(in domain.LinkInput) models.Link {
			return models.Link{
				Category: in.Category,
				Name:     in.Name,
				URL:      in.URL,
				Label:    in.Label,
			}
		},
		toDomain: func(m models.Link) domain.Link {
			return domain.Link{
				ID: m.ID,
				LinkInput: domain.LinkInput{
					NotionID: m.NotionID,
					Category: m.Category,
					Name:     m.Name,
					URL:      m.URL,
					Label:    m.Label,
				},
				SyncedAt: m.SyncedAt,
			}
		},
	})
}

type BlogRepository = SyncedRepository[domain.BlogInput, domain.BlogPost, models.Blog, *models.Blog]

func NewBlogRepository(db *gorm.DB) *BlogRepository {
	return newSyncedRepository[domain.BlogInput, domain.BlogPost, models.Blog, *models.Blog](db, syncedOptions[domain.BlogInput, domain.BlogPost, models.Blog]{
		name:      domain.CollectionBlog,
		published: true,
		indexes: []store.Index{
			{Name: "by_slug", Fields: []string{"slug"}},
			{Name: "by_date", Fields: []string{"date"}},
		},
		lookups: map[string]string{domain.FieldSlug: "by_slug"},
		columns: []string{"title", "slug", "date", "tags", "excerpt", "content", "cover_image", "published"},
		toModel: func(in domain.BlogInput) models.Blog {
			return models.Blog{
				Title:      in.Title,
				Slug:       in.Slug,
				Date:       in.Date,
				Tags:       models.NewJSON(in.Tags),
				Excerpt:    in.Excerpt,
				Content:    in.Content,
				CoverImage: in.CoverImage,
				Published:  in.Published,
			}
		},
		toDomain: func(m models.Blog) domain.BlogPost {
			return domain.BlogPost{
				ID: m.ID,
				BlogInput: domain.BlogInput{
					NotionID:   m.NotionID,
					Title:      m.Title,
					Slug:       m.Slug,
					Date:       m.Date,
					Tags:       m.Tags.Data,
					Excerpt:    m.Excerpt,
					Content:    m.Content,
					CoverImage: m.CoverImage,
					Published:  m.Published,
				},
				SyncedAt: m.SyncedAt,
			}
		},
	})
}
