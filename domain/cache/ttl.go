package cache

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"time"
)

// envelope is the stored form of a cached value. Expiry is an absolute
// instant in Unix milliseconds, computed at write time.
type envelope struct {
	Data   json.RawMessage `json:"data"`
	Expiry int64           `json:"expiry"`
}

// TTLCache layers freshness semantics over a Store. Entries past their
// expiry behave as absent on the fresh read path but stay available via
// GetStale until overwritten.
type TTLCache struct {
	store     Store
	now       func() time.Time
	hits      atomic.Int64
	misses    atomic.Int64
	staleHits atomic.Int64
}

// TTLOption configures the TTL cache.
type TTLOption func(*TTLCache)

// WithClock sets the time source. Used by tests to control expiry.
func WithClock(now func() time.Time) TTLOption {
	return func(c *TTLCache) {
		c.now = now
	}
}

// NewTTL creates a TTL cache over the given store.
func NewTTL(store Store, opts ...TTLOption) *TTLCache {
	c := &TTLCache{
		store: store,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetFresh returns the value for key only if its TTL has not elapsed.
// Returns ErrNotFound, ErrExpired, or ErrCorrupt otherwise; expired
// entries are left in place for GetStale.
func (c *TTLCache) GetFresh(ctx context.Context, key string) ([]byte, error) {
	env, err := c.read(ctx, key)
	if err != nil {
		c.misses.Add(1)
		return nil, err
	}

	if c.now().UnixMilli() > env.Expiry {
		c.misses.Add(1)
		return nil, ErrExpired
	}

	c.hits.Add(1)
	return env.Data, nil
}

// GetStale returns the value for key regardless of expiry. Used only as
// a degraded-mode fallback after a live fetch has failed.
func (c *TTLCache) GetStale(ctx context.Context, key string) ([]byte, error) {
	env, err := c.read(ctx, key)
	if err != nil {
		return nil, err
	}

	c.staleHits.Add(1)
	return env.Data, nil
}

// Put stores value under key with the given TTL, overwriting any prior
// entry. Zero or negative TTLs are rejected with ErrInvalidTTL.
func (c *TTLCache) Put(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return ErrInvalidKey
	}
	if ttl <= 0 {
		return ErrInvalidTTL
	}

	env := envelope{
		Data:   json.RawMessage(value),
		Expiry: c.now().Add(ttl).UnixMilli(),
	}

	raw, err := json.Marshal(env)
	if err != nil {
		return err
	}

	return c.store.Set(ctx, key, raw)
}

// read fetches and deserializes the envelope for key.
func (c *TTLCache) read(ctx context.Context, key string) (*envelope, error) {
	if key == "" {
		return nil, ErrInvalidKey
	}

	raw, found, err := c.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, ErrCorrupt
	}
	if env.Data == nil || env.Expiry == 0 {
		return nil, ErrCorrupt
	}

	return &env, nil
}

// Stats returns cache statistics.
func (c *TTLCache) Stats() Stats {
	return Stats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		StaleHits: c.staleHits.Load(),
	}
}

// Ensure TTLCache implements StatsProvider.
var _ StatsProvider = (*TTLCache)(nil)
