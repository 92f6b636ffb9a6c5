// Package storage opens the configured persistence backend.
package storage

import (
	"context"
	"fmt"
	"log/slog"

	"device-telemetry/internal/config"
	"device-telemetry/internal/db"
	"device-telemetry/internal/engine"
	"device-telemetry/internal/partition"
	"device-telemetry/internal/sqlite"
)

// Store holds current device records and their history partitions.
type Store interface {
	engine.Repository
	partition.Backend
	Close()
}

var (
	_ Store = (*db.DB)(nil)
	_ Store = (*sqlite.DB)(nil)
)

func Open(ctx context.Context, cfg config.Config) (Store, error) {
	const fn = "Storage:Open"
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		slog.InfoContext(ctx, "Opening postgres storage...")
		s, err := db.Init(ctx, db.Config{
			ConnString:     cfg.Postgres.ConnString,
			MigrationsPath: cfg.Postgres.MigrationsPath,
		})
		if err != nil {
			return nil, fmt.Errorf("%s:%w", fn, err)
		}
		return s, nil
	case config.DriverSQLite:
		slog.InfoContext(ctx, "Opening sqlite storage...", "path", cfg.SQLite.Path)
		s, err := sqlite.Init(ctx, sqlite.Config{Path: cfg.SQLite.Path})
		if err != nil {
			return nil, fmt.Errorf("%s:%w", fn, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%s:%w: unknown storage driver %q", fn, config.ErrInvalidConfig, cfg.Storage.Driver)
	}
}
