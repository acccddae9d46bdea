package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/social-api/internal/config"
	"github.com/phrazzld/social-api/internal/platform/postgres"
	"github.com/phrazzld/social-api/internal/redact"
)

// runMigrations executes a goose command against the configured database.
// It's called from main() when the -migrate flag is set.
func runMigrations(ctx context.Context, cfg *config.Config, command string, logger *slog.Logger) error {
	switch command {
	case postgres.MigrateUp, postgres.MigrateDown, postgres.MigrateReset,
		postgres.MigrateStatus, postgres.MigrateVersion:
	default:
		return fmt.Errorf("unknown migration command %q", command)
	}

	if cfg.Database.Driver != config.DriverPostgres {
		return fmt.Errorf("migrations require the %s driver, got %q", config.DriverPostgres, cfg.Database.Driver)
	}

	logger.Info("Executing migrations",
		"command", command,
		"database_url", redact.DatabaseURL(cfg.Database.URL))

	db, err := postgres.Open(ctx, cfg.Database.URL, postgres.PoolConfig{
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetimeMinutes) * time.Minute,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.Error("Error closing database connection", "error", closeErr)
		}
	}()

	if err := postgres.Migrate(ctx, db, command, logger); err != nil {
		return fmt.Errorf("migration %s failed: %w", command, err)
	}

	logger.Info("Migrations completed", "command", command)
	return nil
}
