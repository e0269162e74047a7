package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Memory is a single-process Store.
type Memory struct {
	cache *gocache.Cache
	ttl   time.Duration
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		cache: gocache.New(ttl, 2*ttl),
		ttl:   ttl,
	}
}

func (m *Memory) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, ok := m.cache.Get(storageKey(key))
	if !ok {
		return nil, false, nil
	}
	b, ok := v.([]byte)
	return b, ok, nil
}

func (m *Memory) Set(ctx context.Context, key string, value []byte) error {
	m.cache.Set(storageKey(key), value, m.ttl)
	return nil
}

func (m *Memory) Generation(ctx context.Context, namespace string) (uint64, error) {
	v, ok := m.cache.Get(generationKey(namespace))
	if !ok {
		return 0, nil
	}
	return v.(uint64), nil
}

func (m *Memory) Bump(ctx context.Context, namespace string) error {
	key := generationKey(namespace)
	for {
		if _, err := m.cache.IncrementUint64(key, 1); err == nil {
			return nil
		}
		// missing counter: create it, unless a concurrent bump won
		if err := m.cache.Add(key, uint64(1), gocache.NoExpiration); err == nil {
			return nil
		}
	}
}
