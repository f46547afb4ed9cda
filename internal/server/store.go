package server

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"portfolio.dev/internal/config"
	"portfolio.dev/internal/storage"
	"portfolio.dev/internal/storage/file"
	"portfolio.dev/internal/storage/memory"
	"portfolio.dev/internal/storage/redis"
	"portfolio.dev/internal/storage/sqlite"
)

// OpenStore opens the backend named by cfg.Driver. For the file driver with
// Watch set, the watcher runs until ctx is done or the store is closed.
func OpenStore(ctx context.Context, cfg config.StoreConfig, logger *zap.Logger) (storage.Store, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return memory.New(), nil

	case config.DriverFile:
		store, err := file.Open(cfg.DataPath, logger)
		if err != nil {
			return nil, err
		}
		if cfg.Watch {
			if err := store.Watch(ctx); err != nil {
				return nil, err
			}
		}
		return store, nil

	case config.DriverSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), 0755); err != nil {
			return nil, fmt.Errorf("create sqlite directory: %w", err)
		}
		return sqlite.Open(ctx, cfg.SQLitePath)

	case config.DriverRedis:
		return redis.Open(ctx, redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Prefix:   cfg.RedisPrefix,
		})

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}
