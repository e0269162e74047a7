package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
)

type memcachedClient interface {
	Get(key string) (*memcache.Item, error)
	Set(item *memcache.Item) error
	Add(item *memcache.Item) error
	Increment(key string, delta uint64) (uint64, error)
}

// Memcached is a Store shared between server instances.
//
// Generation counters start from the current time in nanoseconds rather
// than zero. A counter evicted by memcached is recreated past every value it
// held before, so results cached under an old generation are never read
// again.
type Memcached struct {
	client memcachedClient
	ttl    time.Duration
	seed   func() uint64
}

func NewMemcached(client *memcache.Client, ttl time.Duration) *Memcached {
	return newMemcached(client, ttl)
}

func newMemcached(client memcachedClient, ttl time.Duration) *Memcached {
	return &Memcached{
		client: client,
		ttl:    ttl,
		seed:   func() uint64 { return uint64(time.Now().UnixNano()) },
	}
}

func (m *Memcached) Get(ctx context.Context, key string) ([]byte, bool, error) {
	item, err := m.client.Get(storageKey(key))
	if errors.Is(err, memcache.ErrCacheMiss) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "memcached get")
	}
	return item.Value, true, nil
}

func (m *Memcached) Set(ctx context.Context, key string, value []byte) error {
	err := m.client.Set(&memcache.Item{
		Key:        storageKey(key),
		Value:      value,
		Expiration: int32(m.ttl / time.Second),
	})
	return errors.Wrap(err, "memcached set")
}

func (m *Memcached) Generation(ctx context.Context, namespace string) (uint64, error) {
	key := generationKey(namespace)
	for {
		item, err := m.client.Get(key)
		if errors.Is(err, memcache.ErrCacheMiss) {
			gen, created, err := m.create(key)
			if err != nil {
				return 0, err
			}
			if created {
				return gen, nil
			}
			continue
		}
		if err != nil {
			return 0, errors.Wrap(err, "memcached get generation")
		}
		gen, err := strconv.ParseUint(string(item.Value), 10, 64)
		if err != nil {
			return 0, errors.Wrap(err, "memcached parse generation")
		}
		return gen, nil
	}
}

func (m *Memcached) Bump(ctx context.Context, namespace string) error {
	key := generationKey(namespace)
	for {
		_, err := m.client.Increment(key, 1)
		if err == nil {
			return nil
		}
		if !errors.Is(err, memcache.ErrCacheMiss) {
			return errors.Wrap(err, "memcached bump generation")
		}
		// a fresh seed is already past the evicted value
		if _, created, err := m.create(key); err != nil || created {
			return err
		}
	}
}

// create seeds a missing generation counter. created is false when a
// concurrent caller seeded it first.
func (m *Memcached) create(key string) (uint64, bool, error) {
	gen := m.seed()
	err := m.client.Add(&memcache.Item{Key: key, Value: []byte(strconv.FormatUint(gen, 10))})
	if errors.Is(err, memcache.ErrNotStored) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, errors.Wrap(err, "memcached create generation")
	}
	return gen, true, nil
}
