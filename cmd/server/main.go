// Package main implements the entry point for the social API server, which
// serves account registration, login and message management over HTTP.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/phrazzld/social-api/internal/config"
	"github.com/phrazzld/social-api/internal/platform/logger"
	"github.com/phrazzld/social-api/internal/redact"
)

func main() {
	migrateCmd := flag.String("migrate", "", "run a migration command (up, down, reset, status, version) and exit")
	flag.Parse()

	cfg, appLogger, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	ctx := context.Background()

	if *migrateCmd != "" {
		if err := runMigrations(ctx, cfg, *migrateCmd, appLogger); err != nil {
			appLogger.Error("migration failed", "command", *migrateCmd, "error", err)
			os.Exit(1)
		}
		return
	}

	app, err := newApplication(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Error("failed to create application", "error", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		appLogger.Error("application error", "error", err)
		os.Exit(1)
	}
}

// initializeApp loads .env, configuration and the logger.
func initializeApp() (*config.Config, *slog.Logger, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database_driver", cfg.Database.Driver)
	if cfg.Database.URL != "" {
		l.Debug("Database configuration", "url", redact.DatabaseURL(cfg.Database.URL))
	}
	if cfg.Auth.TokensEnabled() {
		l.Debug("Auth configuration", "jwt_secret_present", true)
	}

	return cfg, l, nil
}
