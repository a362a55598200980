// Package memory provides a bounded in-memory cache for backend metadata.
package memory

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/trafflux/ragflow-mcp-go/internal/core/ports/driven"
)

// Ensure Cache implements the interface.
var _ driven.MetadataCache[int] = (*Cache[int])(nil)

// Default cache dimensions. Dataset catalogs are small and shared across
// every retrieval, document listings are per-dataset and more varied.
const (
	// DefaultDatasetCapacity bounds the dataset listing cache.
	DefaultDatasetCapacity = 32

	// DefaultDocumentCapacity bounds the document listing cache.
	DefaultDocumentCapacity = 128

	// DefaultTTL is how long an entry stays fresh.
	DefaultTTL = 300 * time.Second
)

// entry carries a cached value with its insertion time.
type entry[V any] struct {
	value      V
	insertedAt time.Time
}

// Cache is a bounded in-memory implementation of driven.MetadataCache.
// Capacity is enforced by LRU eviction. Expiry is checked lazily on
// access against each entry's insertion time, so no sweeper goroutine
// runs and tests can drive time explicitly.
type Cache[V any] struct {
	lru *lru.Cache[string, entry[V]]
	ttl time.Duration
	now func() time.Time
}

// New creates a cache holding up to capacity entries, fresh for ttl each.
func New[V any](capacity int, ttl time.Duration) (*Cache[V], error) {
	return NewWithClock[V](capacity, ttl, time.Now)
}

// NewWithClock creates a cache with an injected time source.
func NewWithClock[V any](capacity int, ttl time.Duration, now func() time.Time) (*Cache[V], error) {
	backing, err := lru.New[string, entry[V]](capacity)
	if err != nil {
		return nil, err
	}
	return &Cache[V]{
		lru: backing,
		ttl: ttl,
		now: now,
	}, nil
}

// GetOrFetch returns the cached value for key when present and fresh.
// Otherwise it calls fetch, stores the result on success, and returns it.
// A fetch error propagates unmodified and leaves any existing entry in
// place, stale or not, so a failing backend never empties the cache.
func (c *Cache[V]) GetOrFetch(ctx context.Context, key string, forceRefresh bool, fetch driven.FetchFunc[V]) (V, error) {
	if !forceRefresh {
		if value, ok := c.get(key); ok {
			return value, nil
		}
	}

	value, err := fetch(ctx)
	if err != nil {
		var zero V
		return zero, err
	}

	c.lru.Add(key, entry[V]{value: value, insertedAt: c.now()})
	return value, nil
}

// get returns the value for key if the entry is still fresh.
// Stale entries are treated as absent; they are overwritten by the next
// successful fetch or fall out through LRU eviction.
func (c *Cache[V]) get(key string) (V, bool) {
	var zero V
	e, ok := c.lru.Get(key)
	if !ok {
		return zero, false
	}
	if c.now().Sub(e.insertedAt) > c.ttl {
		return zero, false
	}
	return e.value, true
}

// Invalidate removes a single key.
func (c *Cache[V]) Invalidate(key string) {
	c.lru.Remove(key)
}

// Purge removes all entries.
func (c *Cache[V]) Purge() {
	c.lru.Purge()
}

// Len reports the number of stored entries, stale ones included.
func (c *Cache[V]) Len() int {
	return c.lru.Len()
}
