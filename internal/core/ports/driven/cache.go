package driven

import "context"

// FetchFunc loads a value for a cache key on miss.
type FetchFunc[V any] func(ctx context.Context) (V, error)

// MetadataCache is a bounded cache with per-entry expiry for backend
// metadata listings. Entries past their lifetime are treated as absent.
type MetadataCache[V any] interface {
	// GetOrFetch returns the cached value for key when present and fresh.
	// Otherwise it calls fetch, stores the result on success, and returns
	// it. A fetch error is returned unmodified and never evicts or
	// overwrites an existing entry. forceRefresh skips the lookup but
	// still stores a successful fetch.
	GetOrFetch(ctx context.Context, key string, forceRefresh bool, fetch FetchFunc[V]) (V, error)

	// Invalidate removes a single key.
	Invalidate(key string)

	// Purge removes all entries.
	Purge()

	// Len reports the number of stored entries, stale ones included.
	Len() int
}
