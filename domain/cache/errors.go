package cache

import "errors"

// Domain errors for the cache read path. The gateway treats all three
// read errors as a miss; keeping them distinct makes "never cached"
// versus "corrupt entry" testable.
var (
	// ErrInvalidKey indicates an empty or malformed cache key.
	ErrInvalidKey = errors.New("invalid cache key")

	// ErrNotFound indicates the key was never written.
	ErrNotFound = errors.New("cache entry not found")

	// ErrExpired indicates the entry exists but its TTL has elapsed.
	// The entry is not deleted; GetStale can still return it.
	ErrExpired = errors.New("cache entry expired")

	// ErrCorrupt indicates the stored entry could not be deserialized.
	ErrCorrupt = errors.New("cache entry corrupt")

	// ErrInvalidTTL indicates a zero or negative TTL on write.
	ErrInvalidTTL = errors.New("invalid cache TTL")
)
