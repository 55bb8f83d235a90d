// Package config provides configuration loading and validation for the
// advisor gateway and CLI.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Cache backends.
const (
	BackendMemory = "memory"
	BackendBadger = "badger"
	BackendRedis  = "redis"
)

// Config is the full advisor configuration.
type Config struct {
	API     APIConfig     `yaml:"api" json:"api"`
	Cache   CacheConfig   `yaml:"cache" json:"cache"`
	Retry   RetryConfig   `yaml:"retry" json:"retry"`
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// APIConfig configures the generative backend.
type APIConfig struct {
	// Key is the backend API key. Usually set via ${GEMINI_API_KEY}.
	Key string `yaml:"key" json:"key"`
}

// CacheConfig configures result caching.
type CacheConfig struct {
	// Backend selects the store: memory, badger, or redis.
	Backend string `yaml:"backend" json:"backend"`

	// Dir is the data directory for the badger backend.
	Dir string `yaml:"dir" json:"dir"`

	// Address is the server address for the redis backend.
	Address string `yaml:"address" json:"address"`

	// Password is the password for the redis backend.
	Password string `yaml:"password" json:"password"`

	// DB is the database number for the redis backend.
	DB int `yaml:"db" json:"db"`

	// KeyPrefix is added to all cache keys.
	KeyPrefix string `yaml:"key_prefix" json:"key_prefix"`
}

// RetryConfig configures transient-failure retries.
type RetryConfig struct {
	// MaxRetries is the number of retries after the first attempt.
	MaxRetries int `yaml:"max_retries" json:"max_retries"`

	// InitialDelay is the backoff before the first retry; doubles on
	// each subsequent retry.
	InitialDelay Duration `yaml:"initial_delay" json:"initial_delay"`
}

// Duration is a time.Duration that supports JSON/YAML string representation.
type Duration time.Duration

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Duration(d).String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}

	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	dur, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	dur, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}

// Duration returns the underlying time.Duration.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	// Level is the minimum log level.
	Level string `yaml:"level" json:"level"`

	// Format is json or console.
	Format string `yaml:"format" json:"format"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Cache: CacheConfig{
			Backend:   BackendBadger,
			Dir:       ".advisor/cache",
			KeyPrefix: "advisor:",
		},
		Retry: RetryConfig{
			MaxRetries:   3,
			InitialDelay: Duration(3 * time.Second),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validation errors.
var (
	ErrConfigNotFound    = errors.New("config file not found")
	ErrInvalidFormat     = errors.New("invalid config format")
	ErrUnsupportedFormat = errors.New("unsupported config format")
	ErrValidationFailed  = errors.New("config validation failed")
)

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	switch c.Cache.Backend {
	case BackendMemory, BackendBadger, BackendRedis:
	default:
		return fmt.Errorf("%w: unknown cache backend %q", ErrValidationFailed, c.Cache.Backend)
	}

	if c.Cache.Backend == BackendBadger && c.Cache.Dir == "" {
		return fmt.Errorf("%w: badger backend requires cache.dir", ErrValidationFailed)
	}
	if c.Cache.Backend == BackendRedis && c.Cache.Address == "" {
		return fmt.Errorf("%w: redis backend requires cache.address", ErrValidationFailed)
	}

	if c.Retry.MaxRetries < 0 {
		return fmt.Errorf("%w: retry.max_retries must be >= 0", ErrValidationFailed)
	}
	if c.Retry.InitialDelay < 0 {
		return fmt.Errorf("%w: retry.initial_delay must be >= 0", ErrValidationFailed)
	}

	switch c.Logging.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("%w: unknown logging format %q", ErrValidationFailed, c.Logging.Format)
	}

	return nil
}
