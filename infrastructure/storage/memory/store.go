// Package memory provides an in-memory implementation of cache.Store.
package memory

import (
	"context"
	"sync"

	"github.com/laokip/advisor/domain/cache"
)

// Store is an in-memory implementation of cache.Store. It is not
// durable; intended for tests and ephemeral deployments.
type Store struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		entries: make(map[string][]byte),
	}
}

// Get retrieves a value from the store.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.entries[key]
	if !ok {
		return nil, false, nil
	}

	// Return a copy to prevent mutation.
	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

// Set stores a value, overwriting any prior entry.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if key == "" {
		return cache.ErrInvalidKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.entries[key] = stored
	return nil
}

// Delete removes a value from the store.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	return nil
}

// Len returns the current number of entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Ensure Store implements cache.Store.
var _ cache.Store = (*Store)(nil)
