// Package cache holds query results keyed by collection generation.
//
// Every collection (namespace) has a generation counter. Callers embed the
// current generation in their result keys, so bumping it invalidates every
// cached result of the namespace at once without enumerating keys. Stale
// entries age out by TTL.
package cache

import (
	"context"
	"fmt"

	"github.com/zeebo/xxh3"
)

const keyPrefix = "portfolio"

// Store is implemented by the in-process and memcached backends.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Generation(ctx context.Context, namespace string) (uint64, error)
	Bump(ctx context.Context, namespace string) error
}

// storageKey maps a caller key of any length and alphabet to a fixed-size
// key every backend accepts.
func storageKey(key string) string {
	return fmt.Sprintf("%s:%016x", keyPrefix, xxh3.HashString(key))
}

func generationKey(namespace string) string {
	return keyPrefix + ":gen:" + namespace
}
