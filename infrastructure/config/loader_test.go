package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadStringYAML(t *testing.T) {
	content := `
api:
  key: test-key
cache:
  backend: memory
retry:
  max_retries: 5
  initial_delay: 1s
logging:
  level: debug
  format: json
`
	cfg, err := NewLoader().LoadString(content, FormatYAML)
	if err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}

	if cfg.API.Key != "test-key" {
		t.Errorf("API.Key = %q", cfg.API.Key)
	}
	if cfg.Cache.Backend != BackendMemory {
		t.Errorf("Cache.Backend = %q", cfg.Cache.Backend)
	}
	if cfg.Retry.MaxRetries != 5 {
		t.Errorf("Retry.MaxRetries = %d", cfg.Retry.MaxRetries)
	}
	if cfg.Retry.InitialDelay.Duration() != time.Second {
		t.Errorf("Retry.InitialDelay = %v", cfg.Retry.InitialDelay.Duration())
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
}

func TestLoadStringJSON(t *testing.T) {
	content := `{"cache":{"backend":"redis","address":"localhost:6379"},"retry":{"initial_delay":"500ms"}}`

	cfg, err := NewLoader().LoadString(content, FormatJSON)
	if err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}
	if cfg.Cache.Backend != BackendRedis || cfg.Cache.Address != "localhost:6379" {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
	if cfg.Retry.InitialDelay.Duration() != 500*time.Millisecond {
		t.Errorf("Retry.InitialDelay = %v", cfg.Retry.InitialDelay.Duration())
	}
}

func TestLoadKeepsDefaultsForOmittedKeys(t *testing.T) {
	cfg, err := NewLoader().LoadString("api:\n  key: k\n", FormatYAML)
	if err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}

	def := Default()
	if cfg.Cache.Backend != def.Cache.Backend {
		t.Errorf("Cache.Backend = %q, want default %q", cfg.Cache.Backend, def.Cache.Backend)
	}
	if cfg.Retry.MaxRetries != def.Retry.MaxRetries {
		t.Errorf("Retry.MaxRetries = %d, want default %d", cfg.Retry.MaxRetries, def.Retry.MaxRetries)
	}
	if cfg.Cache.KeyPrefix != def.Cache.KeyPrefix {
		t.Errorf("Cache.KeyPrefix = %q, want default %q", cfg.Cache.KeyPrefix, def.Cache.KeyPrefix)
	}
}

func TestLoadExpandsEnvVars(t *testing.T) {
	t.Setenv("TEST_ADVISOR_KEY", "from-env")

	cfg, err := NewLoader().LoadString("api:\n  key: ${TEST_ADVISOR_KEY}\n", FormatYAML)
	if err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}
	if cfg.API.Key != "from-env" {
		t.Errorf("API.Key = %q, want from-env", cfg.API.Key)
	}
}

func TestLoadStrictEnvFailsOnUnset(t *testing.T) {
	loader := NewLoader()
	loader.StrictEnv = true

	_, err := loader.LoadString("api:\n  key: ${ADVISOR_DEFINITELY_UNSET_VAR}\n", FormatYAML)
	if !errors.Is(err, ErrValidationFailed) {
		t.Errorf("LoadString() error = %v, want ErrValidationFailed", err)
	}
}

func TestLoadValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "unknown backend", content: "cache:\n  backend: cassandra\n"},
		{name: "redis without address", content: "cache:\n  backend: redis\n"},
		{name: "negative retries", content: "retry:\n  max_retries: -1\n"},
		{name: "unknown log format", content: "logging:\n  format: xml\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoader().LoadString(tt.content, FormatYAML)
			if !errors.Is(err, ErrValidationFailed) {
				t.Errorf("LoadString() error = %v, want ErrValidationFailed", err)
			}
		})
	}
}

func TestLoadFileByExtension(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "advisor.yaml")
	if err := os.WriteFile(path, []byte("cache:\n  backend: memory\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewLoader().LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Cache.Backend != BackendMemory {
		t.Errorf("Cache.Backend = %q", cfg.Cache.Backend)
	}
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := NewLoader().LoadFile(filepath.Join(dir, "missing.yaml")); !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("missing file error = %v, want ErrConfigNotFound", err)
	}

	unsupported := filepath.Join(dir, "advisor.toml")
	os.WriteFile(unsupported, []byte("x = 1"), 0o600)
	if _, err := NewLoader().LoadFile(unsupported); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("unsupported ext error = %v, want ErrUnsupportedFormat", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte(":\n  - {"), 0o600)
	if _, err := NewLoader().LoadFile(bad); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("malformed yaml error = %v, want ErrInvalidFormat", err)
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() error = %v", err)
	}
}
