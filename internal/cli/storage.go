package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"campaign-desk/internal/adapter/memory"
	"campaign-desk/internal/adapter/postgres"
	"campaign-desk/internal/config"
	"campaign-desk/internal/core/port"
	"campaign-desk/internal/db"
)

// openRepository builds the repository named by cfg.Storage.Driver. The
// returned func releases it.
func openRepository(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.Repository, func(), error) {
	switch strings.ToLower(cfg.Storage.Driver) {
	case "memory", "":
		logger.Info("using in-memory storage")
		return memory.NewRepository(), func() {}, nil
	case "postgres":
		if cfg.Psql.RunMigrations {
			if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
				return nil, nil, fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations applied successfully")
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, nil, fmt.Errorf("database connection: %w", err)
		}
		logger.Info("using postgres storage")
		return postgres.NewRepository(pool), pool.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
