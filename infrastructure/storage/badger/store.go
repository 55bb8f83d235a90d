package badger

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"

	"github.com/laokip/advisor/domain/cache"
)

// Store is a BadgerDB-backed implementation of cache.Store. Entries
// carry no backend TTL: expiry lives in the cached envelope so expired
// entries remain readable for stale fallback.
type Store struct {
	db        *badger.DB
	keyPrefix string
}

// NewStore creates a new BadgerDB store with the given configuration.
func NewStore(cfg Config, opts ...Option) (*Store, error) {
	for _, opt := range opts {
		opt(&cfg)
	}

	db, err := openDB(cfg)
	if err != nil {
		return nil, err
	}

	return &Store{
		db:        db,
		keyPrefix: cfg.KeyPrefix,
	}, nil
}

// NewStoreFromDB creates a store from an existing BadgerDB database.
func NewStoreFromDB(db *badger.DB, keyPrefix string) *Store {
	return &Store{
		db:        db,
		keyPrefix: keyPrefix,
	}
}

// prefixKey adds the key prefix.
func (s *Store) prefixKey(key string) []byte {
	return []byte(s.keyPrefix + key)
}

// Get retrieves a value from the store.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(s.prefixKey(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
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

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(s.prefixKey(key), value)
	})
}

// Delete removes a value from the store.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(s.prefixKey(key))
	})
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying BadgerDB database.
func (s *Store) DB() *badger.DB {
	return s.db
}

// Ensure Store implements cache.Store.
var _ cache.Store = (*Store)(nil)
