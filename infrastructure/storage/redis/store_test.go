package redis

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Address != "localhost:6379" {
		t.Errorf("Address = %s, want localhost:6379", cfg.Address)
	}
	if cfg.Password != "" {
		t.Errorf("Password = %s, want empty", cfg.Password)
	}
	if cfg.DB != 0 {
		t.Errorf("DB = %d, want 0", cfg.DB)
	}
	if cfg.DialTimeout != 5*time.Second {
		t.Errorf("DialTimeout = %v, want %v", cfg.DialTimeout, 5*time.Second)
	}
	if cfg.ReadTimeout != 3*time.Second {
		t.Errorf("ReadTimeout = %v, want %v", cfg.ReadTimeout, 3*time.Second)
	}
	if cfg.WriteTimeout != 3*time.Second {
		t.Errorf("WriteTimeout = %v, want %v", cfg.WriteTimeout, 3*time.Second)
	}
}

func TestConfigOptions(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	for _, opt := range []ConfigOption{
		WithAddress("redis.internal:6380"),
		WithPassword("secret"),
		WithDB(4),
		WithKeyPrefix("advisor:"),
	} {
		opt(&cfg)
	}

	if cfg.Address != "redis.internal:6380" {
		t.Errorf("Address = %s", cfg.Address)
	}
	if cfg.Password != "secret" {
		t.Errorf("Password = %s", cfg.Password)
	}
	if cfg.DB != 4 {
		t.Errorf("DB = %d", cfg.DB)
	}
	if cfg.KeyPrefix != "advisor:" {
		t.Errorf("KeyPrefix = %s", cfg.KeyPrefix)
	}
}

func TestNewStoreFromClient(t *testing.T) {
	t.Parallel()

	s := NewStoreFromClient(nil, "advisor:")
	if s == nil {
		t.Fatal("NewStoreFromClient() returned nil")
	}
	if s.keyPrefix != "advisor:" {
		t.Errorf("keyPrefix = %s, want advisor:", s.keyPrefix)
	}
}

func TestPrefixKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		keyPrefix string
		key       string
		want      string
	}{
		{name: "with prefix", keyPrefix: "advisor:", key: "advice:plan:v2:lo", want: "advisor:advice:plan:v2:lo"},
		{name: "empty prefix", keyPrefix: "", key: "advice:plan:v2:lo", want: "advice:plan:v2:lo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := NewStoreFromClient(nil, tt.keyPrefix)
			if got := s.prefixKey(tt.key); got != tt.want {
				t.Errorf("prefixKey(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}
