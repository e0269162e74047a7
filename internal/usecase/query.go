package usecase

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/SaharBarak/portfolio-v2-sub001/internal/domain"
	"github.com/SaharBarak/portfolio-v2-sub001/internal/utils"
)

// Filter restricts a listing to records whose field equals value.
type Filter struct {
	Field string
	Value string
}

// QueryUsecase serves the ordered, visible view of a collection.
type QueryUsecase[T domain.Record] struct {
	repo  CollectionReader[T]
	cache ResultCache
}

func NewQueryUsecase[T domain.Record](repo CollectionReader[T], cache ResultCache) *QueryUsecase[T] {
	return &QueryUsecase[T]{
		repo:  repo,
		cache: cache,
	}
}

// List returns the visible records, optionally filtered, sorted by their
// ordering key. Ties keep stable store order.
func (uc *QueryUsecase[T]) List(ctx context.Context, filter *Filter) ([]T, error) {
	ctx, span := tracer.Start(ctx, "Query.Usecase.List")
	defer span.End()

	parts := []string{"list"}
	if filter != nil {
		parts = append(parts, filter.Field, filter.Value)
	}

	records, err := cached(ctx, uc.cache, uc.repo.Name(), parts, func() ([]T, error) {
		var (
			records []T
			err     error
		)
		if filter != nil {
			records, err = uc.repo.FindBy(ctx, filter.Field, filter.Value)
		} else {
			records, err = uc.repo.Published(ctx)
		}
		if err != nil {
			return nil, err
		}
		return visibleSorted(records), nil
	})
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrapf(err, "list %s", uc.repo.Name())
	}
	return records, nil
}

// GetByID returns the record with the identity, or nil when it does not
// exist.
func (uc *QueryUsecase[T]) GetByID(ctx context.Context, id string) (*T, error) {
	ctx, span := tracer.Start(ctx, "Query.Usecase.GetByID")
	defer span.End()

	record, err := uc.repo.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrapf(err, "get %s", uc.repo.Name())
	}
	return record, nil
}

// GetByField returns the first visible record whose field equals value, or
// nil.
func (uc *QueryUsecase[T]) GetByField(ctx context.Context, field, value string) (*T, error) {
	ctx, span := tracer.Start(ctx, "Query.Usecase.GetByField")
	defer span.End()

	records, err := uc.repo.FindBy(ctx, field, value)
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrapf(err, "find %s by %s", uc.repo.Name(), field)
	}
	for _, record := range records {
		if record.Visible() {
			return &record, nil
		}
	}
	return nil, nil
}

// GroupBy partitions the visible records by field. Groups appear in the
// order of their first record and hold their records in list order.
func (uc *QueryUsecase[T]) GroupBy(ctx context.Context, field string) (utils.OrderedKVMap[[]T], error) {
	records, err := uc.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	groups := utils.OrderedKVMap[[]T]{}
	for _, record := range records {
		key, ok := record.Field(field)
		if !ok {
			return nil, errors.Errorf("%s cannot be grouped by %q", uc.repo.Name(), field)
		}
		utils.AppendGroup(groups, key, record)
	}
	return groups, nil
}

func visibleSorted[T domain.Record](records []T) []T {
	visible := make([]T, 0, len(records))
	for _, record := range records {
		if record.Visible() {
			visible = append(visible, record)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].SortOrder() < visible[j].SortOrder()
	})
	return visible
}

// cached is a read-through lookup of the result keyed by parts under the
// current generation of namespace. Cache failures fall back to load.
func cached[R any](ctx context.Context, cache ResultCache, namespace string, parts []string, load func() (R, error)) (R, error) {
	if cache == nil {
		return load()
	}

	generation, err := cache.Generation(ctx, namespace)
	if err != nil {
		logCacheError(ctx, namespace, err)
		return load()
	}
	key := resultKey(namespace, generation, parts)

	if data, ok, err := cache.Get(ctx, key); err != nil {
		logCacheError(ctx, namespace, err)
	} else if ok {
		var result R
		if err := json.Unmarshal(data, &result); err == nil {
			return result, nil
		}
	}

	result, err := load()
	if err != nil {
		return result, err
	}

	if data, err := json.Marshal(result); err == nil {
		if err := cache.Set(ctx, key, data); err != nil {
			logCacheError(ctx, namespace, err)
		}
	}
	return result, nil
}

func logCacheError(ctx context.Context, namespace string, err error) {
	slog.WarnContext(
		ctx, "query cache unavailable",
		slog.String("collection", namespace),
		slog.String("error", err.Error()),
		slog.String("module", "query"),
	)
}

func resultKey(namespace string, generation uint64, parts []string) string {
	return namespace + ":" + strconv.FormatUint(generation, 10) + ":" + strings.Join(parts, "\x00")
}
