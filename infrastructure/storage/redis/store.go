package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/laokip/advisor/domain/cache"
)

// Store is a Redis-backed implementation of cache.Store. Entries are
// written without a Redis TTL: expiry lives in the cached envelope so
// expired entries remain readable for stale fallback.
type Store struct {
	client    *redis.Client
	keyPrefix string
}

// NewStore creates a new Redis store and verifies the connection.
func NewStore(cfg Config, opts ...ConfigOption) (*Store, error) {
	for _, opt := range opts {
		opt(&cfg)
	}

	defaults := DefaultConfig()
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = defaults.DialTimeout
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = defaults.ReadTimeout
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = defaults.WriteTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DialTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Join(ErrConnectionFailed, err)
	}

	return &Store{
		client:    client,
		keyPrefix: cfg.KeyPrefix,
	}, nil
}

// NewStoreFromClient creates a store from an existing Redis client.
func NewStoreFromClient(client *redis.Client, keyPrefix string) *Store {
	return &Store{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// prefixKey adds the key prefix.
func (s *Store) prefixKey(key string) string {
	return s.keyPrefix + key
}

// Get retrieves a value from the store.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	value, err := s.client.Get(ctx, s.prefixKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	return value, true, nil
}

// Set stores a value, overwriting any prior entry.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if key == "" {
		return cache.ErrInvalidKey
	}

	return s.client.Set(ctx, s.prefixKey(key), value, 0).Err()
}

// Delete removes a value from the store.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.client.Del(ctx, s.prefixKey(key)).Err()
}

// Close closes the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}

// Ensure Store implements cache.Store.
var _ cache.Store = (*Store)(nil)
