package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/social-api/internal/api/middleware"
	"github.com/phrazzld/social-api/internal/config"
	"github.com/phrazzld/social-api/internal/platform/memory"
	"github.com/phrazzld/social-api/internal/platform/postgres"
	"github.com/phrazzld/social-api/internal/service"
	"github.com/phrazzld/social-api/internal/service/auth"
	"github.com/phrazzld/social-api/internal/store"
)

// metricsNamespace prefixes every exported Prometheus metric.
const metricsNamespace = "social"

// rateLimitCleanupInterval is how often idle client limiters are pruned.
const rateLimitCleanupInterval = 5 * time.Minute

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// db is nil when the memory driver is selected.
	db *sql.DB

	accountStore store.AccountStore
	messageStore store.MessageStore

	jwtService     auth.JWTService
	accountService service.AccountService
	messageService service.MessageService

	metrics     *middleware.Metrics
	rateLimiter *middleware.RateLimiter
}

// newApplication creates a new application instance with all dependencies
// initialized. For the postgres driver the connection is opened here and,
// when auto_migrate is set, migrations are applied before returning.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	if logger == nil {
		logger = slog.Default()
	}
	app := &application{
		config: cfg,
		logger: logger,
	}

	if err := app.setupStores(ctx); err != nil {
		return nil, err
	}

	hasher, err := auth.NewPasswordHasher(cfg.Auth)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to initialize password hasher: %w", err)
	}

	if cfg.Auth.TokensEnabled() {
		app.jwtService, err = auth.NewJWTService(cfg.Auth)
		if err != nil {
			app.cleanup()
			return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
		}
		logger.Info("JWT token issuance enabled",
			"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)
	}

	app.accountService = service.NewAccountService(app.accountStore, hasher, logger)
	app.messageService = service.NewMessageService(app.messageStore, app.accountStore, logger)

	app.metrics = middleware.NewMetrics(metricsNamespace)
	if cfg.RateLimit.RequestsPerSecond > 0 {
		app.rateLimiter = middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, logger)
	}

	logger.Info("Application initialized successfully",
		"database_driver", cfg.Database.Driver,
		"password_scheme", cfg.Auth.PasswordScheme)
	return app, nil
}

// setupStores selects the persistence backend named by database.driver.
func (app *application) setupStores(ctx context.Context) error {
	switch app.config.Database.Driver {
	case config.DriverMemory:
		db := memory.New()
		app.accountStore = db.Accounts()
		app.messageStore = db.Messages()
		app.logger.Info("Using in-memory store")
		return nil

	case config.DriverPostgres:
		db, err := postgres.Open(ctx, app.config.Database.URL, postgres.PoolConfig{
			MaxOpenConns:    app.config.Database.MaxOpenConns,
			MaxIdleConns:    app.config.Database.MaxIdleConns,
			ConnMaxLifetime: time.Duration(app.config.Database.ConnMaxLifetimeMinutes) * time.Minute,
		})
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		app.db = db
		app.logger.Info("Database connection established")

		if app.config.Database.AutoMigrate {
			if err := postgres.Migrate(ctx, db, postgres.MigrateUp, app.logger); err != nil {
				app.cleanup()
				return fmt.Errorf("failed to apply migrations: %w", err)
			}
		}

		app.accountStore = postgres.NewPostgresAccountStore(db, app.logger)
		app.messageStore = postgres.NewPostgresMessageStore(db, app.logger)
		return nil

	default:
		return fmt.Errorf("unsupported database driver %q", app.config.Database.Driver)
	}
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if app.rateLimiter != nil {
		app.rateLimiter.StartCleanup(ctx, rateLimitCleanupInterval)
	}

	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
		app.db = nil
	}

	app.logger.Info("Application shutdown completed")
}
