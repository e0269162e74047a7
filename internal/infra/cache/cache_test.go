package cache

import (
	"context"
	"os"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorageKey(t *testing.T) {
	long := strings.Repeat("now:1:list section Anything Goes ", 20)
	key := storageKey(long)
	assert.Equal(t, key, storageKey(long))
	assert.NotEqual(t, key, storageKey("projects:0:list"))
	assert.Len(t, key, len("portfolio:")+16)
	assert.NotContains(t, key, " ")
}

func testStore(t *testing.T, store Store) {
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "projects:0:list", []byte("v")))
	got, ok, err := store.Get(ctx, "projects:0:list")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), got)

	gen, err := store.Generation(ctx, "projects")
	require.NoError(t, err)
	require.NoError(t, store.Bump(ctx, "projects"))
	next, err := store.Generation(ctx, "projects")
	require.NoError(t, err)
	assert.Equal(t, gen+1, next)

	other, err := store.Generation(ctx, "research-"+t.Name())
	require.NoError(t, err)
	again, err := store.Generation(ctx, "research-"+t.Name())
	require.NoError(t, err)
	assert.Equal(t, other, again)
}

func TestMemory(t *testing.T) {
	testStore(t, NewMemory(time.Minute))
}

func TestMemoryConcurrentBumps(t *testing.T) {
	ctx := context.Background()
	store := NewMemory(time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, store.Bump(ctx, "likes"))
		}()
	}
	wg.Wait()

	gen, err := store.Generation(ctx, "likes")
	require.NoError(t, err)
	assert.Equal(t, uint64(50), gen)
}

// fakeMemcache is an in-memory memcachedClient whose entries can be evicted.
type fakeMemcache struct {
	mu    sync.Mutex
	items map[string][]byte
}

func newFakeMemcache() *fakeMemcache {
	return &fakeMemcache{items: map[string][]byte{}}
}

func (f *fakeMemcache) Get(key string) (*memcache.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.items[key]
	if !ok {
		return nil, memcache.ErrCacheMiss
	}
	return &memcache.Item{Key: key, Value: v}, nil
}

func (f *fakeMemcache) Set(item *memcache.Item) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[item.Key] = item.Value
	return nil
}

func (f *fakeMemcache) Add(item *memcache.Item) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[item.Key]; ok {
		return memcache.ErrNotStored
	}
	f.items[item.Key] = item.Value
	return nil
}

func (f *fakeMemcache) Increment(key string, delta uint64) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.items[key]
	if !ok {
		return 0, memcache.ErrCacheMiss
	}
	n, err := strconv.ParseUint(string(v), 10, 64)
	if err != nil {
		return 0, err
	}
	n += delta
	f.items[key] = []byte(strconv.FormatUint(n, 10))
	return n, nil
}

func (f *fakeMemcache) evict(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.items, key)
}

func TestMemcachedFake(t *testing.T) {
	testStore(t, newMemcached(newFakeMemcache(), time.Minute))
}

func TestMemcachedEvictedGenerationMovesForward(t *testing.T) {
	ctx := context.Background()
	fake := newFakeMemcache()
	store := newMemcached(fake, time.Minute)
	clock := uint64(1000)
	store.seed = func() uint64 {
		clock += 1000
		return clock
	}

	gen, err := store.Generation(ctx, "projects")
	require.NoError(t, err)
	require.NoError(t, store.Bump(ctx, "projects"))
	require.NoError(t, store.Bump(ctx, "projects"))
	before, err := store.Generation(ctx, "projects")
	require.NoError(t, err)
	assert.Equal(t, gen+2, before)

	fake.evict(generationKey("projects"))

	after, err := store.Generation(ctx, "projects")
	require.NoError(t, err)
	assert.Greater(t, after, before)

	// a bump that finds the counter evicted also moves forward
	fake.evict(generationKey("projects"))
	require.NoError(t, store.Bump(ctx, "projects"))
	bumped, err := store.Generation(ctx, "projects")
	require.NoError(t, err)
	assert.Greater(t, bumped, after)
}

func TestMemcached(t *testing.T) {
	addr := os.Getenv("MEMCACHED_ADDR")
	if addr == "" {
		t.Skip("MEMCACHED_ADDR not set")
	}
	testStore(t, NewMemcached(memcache.New(addr), time.Minute))
}
