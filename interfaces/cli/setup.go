package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/laokip/advisor/application"
	"github.com/laokip/advisor/domain/cache"
	"github.com/laokip/advisor/infrastructure/adapter/gemini"
	"github.com/laokip/advisor/infrastructure/config"
	"github.com/laokip/advisor/infrastructure/logging"
	"github.com/laokip/advisor/infrastructure/resilience"
	"github.com/laokip/advisor/infrastructure/storage/badger"
	"github.com/laokip/advisor/infrastructure/storage/memory"
	"github.com/laokip/advisor/infrastructure/storage/redis"
)

// buildGateway assembles a gateway from configuration. The returned
// cleanup closes the cache store.
func buildGateway(ctx context.Context, configPath string) (*application.Gateway, func(), error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	apiKey := cfg.API.Key
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	gen, err := gemini.NewAdapter(ctx, gemini.Config{APIKey: apiKey})
	if err != nil {
		return nil, nil, err
	}

	store, cleanup, err := buildStore(cfg)
	if err != nil {
		return nil, nil, err
	}

	gw, err := application.New(gen, cache.NewTTL(store),
		application.WithRetry(resilience.Config{
			MaxRetries:   cfg.Retry.MaxRetries,
			InitialDelay: cfg.Retry.InitialDelay.Duration(),
		}),
	)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	return gw, cleanup, nil
}

// loadConfig loads the config file, or defaults when no path is given.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.NewLoader().LoadFile(path)
}

// buildStore creates the configured cache store.
func buildStore(cfg *config.Config) (cache.Store, func(), error) {
	switch cfg.Cache.Backend {
	case config.BackendMemory:
		return memory.NewStore(), func() {}, nil

	case config.BackendBadger:
		store, err := badger.NewStore(badger.Config{
			Dir:       cfg.Cache.Dir,
			KeyPrefix: cfg.Cache.KeyPrefix,
		})
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil

	case config.BackendRedis:
		store, err := redis.NewStore(redis.Config{
			Address:   cfg.Cache.Address,
			Password:  cfg.Cache.Password,
			DB:        cfg.Cache.DB,
			KeyPrefix: cfg.Cache.KeyPrefix,
		})
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
}
