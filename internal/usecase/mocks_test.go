package usecase

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"github.com/SaharBarak/portfolio-v2-sub001/internal/domain"
	"github.com/SaharBarak/portfolio-v2-sub001/internal/schemas"
)

// mockCollection keeps records in insertion order, like the store.
type mockCollection[I domain.Synced, T domain.Record] struct {
	name    string
	build   func(id string, input I) T
	keys    []string
	records []T
	nextID  int

	upserts int
	reads   int
	err     error
}

func (m *mockCollection[I, T]) Name() string { return m.name }

func (m *mockCollection[I, T]) Upsert(ctx context.Context, input I) (domain.UpsertResult, error) {
	m.upserts++
	if m.err != nil {
		return domain.UpsertResult{}, m.err
	}
	for i, key := range m.keys {
		if key == input.ExternalKey() {
			id := m.records[i].RecordID()
			next := m.build(id, input)
			changed := !reflect.DeepEqual(next, m.records[i])
			m.records[i] = next
			return domain.UpsertResult{ID: id, Changed: changed}, nil
		}
	}
	m.nextID++
	id := fmt.Sprintf("id-%d", m.nextID)
	m.keys = append(m.keys, input.ExternalKey())
	m.records = append(m.records, m.build(id, input))
	return domain.UpsertResult{ID: id, Inserted: true, Changed: true}, nil
}

func (m *mockCollection[I, T]) Remove(ctx context.Context, externalKey string) (bool, error) {
	for i, key := range m.keys {
		if key == externalKey {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			m.records = append(m.records[:i], m.records[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *mockCollection[I, T]) All(ctx context.Context) ([]T, error) {
	m.reads++
	if m.err != nil {
		return nil, m.err
	}
	return append([]T{}, m.records...), nil
}

func (m *mockCollection[I, T]) Published(ctx context.Context) ([]T, error) {
	m.reads++
	if m.err != nil {
		return nil, m.err
	}
	var visible []T
	for _, record := range m.records {
		if record.Visible() {
			visible = append(visible, record)
		}
	}
	return visible, nil
}

func (m *mockCollection[I, T]) Get(ctx context.Context, id string) (*T, error) {
	for _, record := range m.records {
		if record.RecordID() == id {
			return &record, nil
		}
	}
	return nil, domain.NotFoundError{Resource: m.name}
}

func (m *mockCollection[I, T]) FindBy(ctx context.Context, field, value string) ([]T, error) {
	m.reads++
	var matched []T
	for _, record := range m.records {
		ok, known := domain.MatchField(record, field, value)
		if !known {
			return nil, fmt.Errorf("no field %s", field)
		}
		if ok {
			matched = append(matched, record)
		}
	}
	return matched, nil
}

func newMockProjects() *mockCollection[domain.ProjectInput, domain.Project] {
	return &mockCollection[domain.ProjectInput, domain.Project]{
		name: domain.CollectionProjects,
		build: func(id string, input domain.ProjectInput) domain.Project {
			return domain.Project{ID: id, ProjectInput: input}
		},
	}
}

func newMockLinks() *mockCollection[domain.LinkInput, domain.Link] {
	return &mockCollection[domain.LinkInput, domain.Link]{
		name: domain.CollectionLinks,
		build: func(id string, input domain.LinkInput) domain.Link {
			return domain.Link{ID: id, LinkInput: input}
		},
	}
}

func newMockBlog() *mockCollection[domain.BlogInput, domain.BlogPost] {
	return &mockCollection[domain.BlogInput, domain.BlogPost]{
		name: domain.CollectionBlog,
		build: func(id string, input domain.BlogInput) domain.BlogPost {
			return domain.BlogPost{ID: id, BlogInput: input}
		},
	}
}

func newMockNow() *mockCollection[domain.NowInput, domain.NowItem] {
	return &mockCollection[domain.NowInput, domain.NowItem]{
		name: domain.CollectionNow,
		build: func(id string, input domain.NowInput) domain.NowItem {
			return domain.NowItem{ID: id, NowInput: input}
		},
	}
}

type mockCache struct {
	entries     map[string][]byte
	generations map[string]uint64
	hits        int
	bumpErr     error
}

func newMockCache() *mockCache {
	return &mockCache{
		entries:     map[string][]byte{},
		generations: map[string]uint64{},
	}
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, ok := m.entries[key]
	if ok {
		m.hits++
	}
	return v, ok, nil
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte) error {
	m.entries[key] = value
	return nil
}

func (m *mockCache) Generation(ctx context.Context, namespace string) (uint64, error) {
	return m.generations[namespace], nil
}

func (m *mockCache) Bump(ctx context.Context, namespace string) error {
	if m.bumpErr != nil {
		return m.bumpErr
	}
	m.generations[namespace]++
	return nil
}

type mockPublisher struct {
	events []domain.ChangeEvent
}

func (m *mockPublisher) Publish(ctx context.Context, event domain.ChangeEvent) error {
	m.events = append(m.events, event)
	return nil
}

func newValidator(t *testing.T) Validator {
	t.Helper()
	v, err := schemas.NewValidator()
	if err != nil {
		t.Fatalf("failed to compile schemas: %v", err)
	}
	return v
}

func strptr(s string) *string {
	return &s
}
