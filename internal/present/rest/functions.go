package rest

import (
	"context"
	"encoding/json"

	"github.com/SaharBarak/portfolio-v2-sub001/internal/domain"
	"github.com/SaharBarak/portfolio-v2-sub001/internal/usecase"
)

type function struct {
	// syncOnly functions need a valid sync token
	syncOnly bool
	call     func(ctx context.Context, args json.RawMessage) (any, error)
}

type functions map[string]function

// bind adapts a typed operation to the function table. Missing or null args
// decode to the zero value.
func bind[A, R any](op func(ctx context.Context, args A) (R, error)) function {
	return function{
		call: func(ctx context.Context, raw json.RawMessage) (any, error) {
			var args A
			if len(raw) > 0 && string(raw) != "null" {
				if err := json.Unmarshal(raw, &args); err != nil {
					return nil, domain.ValidationError{Reason: "invalid args: " + err.Error()}
				}
			}
			return op(ctx, args)
		},
	}
}

func syncOnly(f function) function {
	f.syncOnly = true
	return f
}

type noArgs struct{}

type idArgs struct {
	ID string `json:"id"`
}

type externalKeyArgs struct {
	NotionID string `json:"notionId"`
}

type nameArgs struct {
	Name string `json:"name"`
}

type slugArgs struct {
	Slug string `json:"slug"`
}

// listArgs carries the optional list filters. Only the one a collection
// declares is honored.
type listArgs struct {
	Type     string `json:"type"`
	Section  string `json:"section"`
	Category string `json:"category"`
	Tag      string `json:"tag"`
	Limit    int    `json:"limit"`
}

func (a listArgs) filter(field string) *usecase.Filter {
	var value string
	switch field {
	case domain.FieldType:
		value = a.Type
	case domain.FieldSection:
		value = a.Section
	case domain.FieldCategory:
		value = a.Category
	case domain.FieldTag:
		value = a.Tag
	}
	if value == "" {
		return nil
	}
	return &usecase.Filter{Field: field, Value: value}
}

func limit[T any](records []T, n int) []T {
	if n > 0 && len(records) > n {
		return records[:n]
	}
	return records
}

type likeRefArgs struct {
	Slug   string `json:"slug"`
	UserID string `json:"userId"`
}

// registerCollection adds list, getById, upsert and remove for a synced
// collection. filterField names the optional list filter argument.
func registerCollection[I domain.Synced, T domain.Record](
	h *Handler,
	collection string,
	filterField string,
	query *usecase.QueryUsecase[T],
	sync *usecase.SyncUsecase[I, T],
) {
	h.queries[collection+":list"] = bind(func(ctx context.Context, args listArgs) ([]T, error) {
		records, err := query.List(ctx, args.filter(filterField))
		if err != nil {
			return nil, err
		}
		return limit(records, args.Limit), nil
	})
	h.queries[collection+":getById"] = bind(func(ctx context.Context, args idArgs) (*T, error) {
		return query.GetByID(ctx, args.ID)
	})
	h.mutations[collection+":upsert"] = syncOnly(bind(sync.Upsert))
	h.mutations[collection+":remove"] = syncOnly(bind(func(ctx context.Context, args externalKeyArgs) (bool, error) {
		return sync.Remove(ctx, args.NotionID)
	}))
}

func (h *Handler) register(uc Usecases) {
	registerCollection(h, domain.CollectionProjects, "", uc.Projects, uc.ProjectsSync)
	registerCollection(h, domain.CollectionResearch, "", uc.Research, uc.ResearchSync)
	registerCollection(h, domain.CollectionContributions, domain.FieldType, uc.Contributions, uc.ContributionsSync)
	registerCollection(h, domain.CollectionNow, domain.FieldSection, uc.Now, uc.NowSync)
	registerCollection(h, domain.CollectionLinks, domain.FieldCategory, uc.Links, uc.LinksSync)
	registerCollection(h, domain.CollectionBlog, domain.FieldTag, uc.Blog, uc.BlogSync)

	h.queries["now:bySection"] = bind(func(ctx context.Context, _ noArgs) (any, error) {
		return uc.Now.GroupBy(ctx, domain.FieldSection)
	})
	h.queries["links:byCategory"] = bind(func(ctx context.Context, _ noArgs) (any, error) {
		return uc.Links.GroupBy(ctx, domain.FieldCategory)
	})
	h.queries["links:getByName"] = bind(func(ctx context.Context, args nameArgs) (*domain.Link, error) {
		return uc.Links.GetByField(ctx, domain.FieldName, args.Name)
	})

	h.queries["blog:list"] = bind(func(ctx context.Context, args listArgs) ([]domain.BlogSummary, error) {
		posts, err := uc.Blog.List(ctx, args.filter(domain.FieldTag))
		if err != nil {
			return nil, err
		}
		posts = limit(posts, args.Limit)
		summaries := make([]domain.BlogSummary, 0, len(posts))
		for _, post := range posts {
			summaries = append(summaries, post.Summary())
		}
		return summaries, nil
	})
	h.queries["blog:getBySlug"] = bind(func(ctx context.Context, args slugArgs) (*domain.BlogPost, error) {
		return uc.Blog.GetByField(ctx, domain.FieldSlug, args.Slug)
	})
	h.queries["blog:getAllTags"] = bind(func(ctx context.Context, _ noArgs) ([]string, error) {
		posts, err := uc.Blog.List(ctx, nil)
		if err != nil {
			return nil, err
		}
		return domain.BlogTags(posts), nil
	})

	h.queries["about:get"] = bind(func(ctx context.Context, _ noArgs) (*domain.About, error) {
		return uc.About.Get(ctx)
	})
	h.mutations["about:upsert"] = syncOnly(bind(uc.About.Upsert))

	h.queries["availability:get"] = bind(func(ctx context.Context, _ noArgs) (*domain.Availability, error) {
		return uc.Availability.Get(ctx)
	})
	h.mutations["availability:set"] = syncOnly(bind(uc.Availability.Set))
	h.mutations["availability:upsert"] = syncOnly(bind(uc.Availability.Upsert))
	h.mutations["availability:toggle"] = syncOnly(bind(func(ctx context.Context, _ noArgs) (*domain.Availability, error) {
		return uc.Availability.Toggle(ctx)
	}))

	h.queries["likes:getBySlug"] = bind(func(ctx context.Context, args slugArgs) (domain.LikeSummary, error) {
		return uc.Likes.GetBySlug(ctx, args.Slug)
	})
	h.queries["likes:hasLiked"] = bind(func(ctx context.Context, args likeRefArgs) (bool, error) {
		return uc.Likes.HasLiked(ctx, args.Slug, args.UserID)
	})
	h.queries["likes:getCount"] = bind(func(ctx context.Context, args slugArgs) (int64, error) {
		return uc.Likes.GetCount(ctx, args.Slug)
	})
	h.mutations["likes:toggle"] = bind(uc.Likes.Toggle)
	h.mutations["likes:like"] = bind(uc.Likes.Like)
	h.mutations["likes:unlike"] = bind(func(ctx context.Context, args likeRefArgs) (domain.ToggleResult, error) {
		return uc.Likes.Unlike(ctx, args.Slug, args.UserID)
	})
}
