// Package cache provides TTL-aware caching of advice results over a
// durable key-value store.
package cache

import "context"

// Store is the durable string-keyed byte store the TTL cache is layered
// on. Implementations may be in-memory, BadgerDB, Redis, or any other
// backend; expiry is handled above the store, never by the backend, so
// expired entries remain readable for degraded-mode fallback.
type Store interface {
	// Get retrieves a raw value by key.
	// Returns the value, whether it was found, and any error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a raw value under key, overwriting any prior entry.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes an entry by key.
	Delete(ctx context.Context, key string) error
}

// Stats provides cache statistics.
type Stats struct {
	// Hits is the number of fresh cache hits.
	Hits int64
	// Misses is the number of cache misses, expired reads included.
	Misses int64
	// StaleHits is the number of successful stale fallback reads.
	StaleHits int64
}

// StatsProvider is an optional interface for caches that support statistics.
type StatsProvider interface {
	// Stats returns current cache statistics.
	Stats() Stats
}
