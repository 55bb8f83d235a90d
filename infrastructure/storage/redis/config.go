// Package redis provides a Redis-backed implementation of cache.Store
// for shared server deployments.
package redis

import (
	"errors"
	"time"
)

// Config configures Redis storage.
type Config struct {
	// Address is the Redis server address (host:port).
	Address string

	// Password is the Redis password (empty for none).
	Password string

	// DB is the Redis database number.
	DB int

	// DialTimeout is the timeout for establishing a connection.
	DialTimeout time.Duration

	// ReadTimeout is the timeout for reads.
	ReadTimeout time.Duration

	// WriteTimeout is the timeout for writes.
	WriteTimeout time.Duration

	// KeyPrefix is added to all keys.
	KeyPrefix string
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		Address:      "localhost:6379",
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}
}

// ConfigOption configures Redis storage.
type ConfigOption func(*Config)

// WithAddress sets the server address.
func WithAddress(addr string) ConfigOption {
	return func(c *Config) {
		c.Address = addr
	}
}

// WithPassword sets the password.
func WithPassword(password string) ConfigOption {
	return func(c *Config) {
		c.Password = password
	}
}

// WithDB sets the database number.
func WithDB(db int) ConfigOption {
	return func(c *Config) {
		c.DB = db
	}
}

// WithKeyPrefix sets the key prefix.
func WithKeyPrefix(prefix string) ConfigOption {
	return func(c *Config) {
		c.KeyPrefix = prefix
	}
}

// ErrConnectionFailed indicates the server could not be reached.
var ErrConnectionFailed = errors.New("redis: connection failed")
