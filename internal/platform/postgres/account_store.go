package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/phrazzld/social-api/internal/domain"
	"github.com/phrazzld/social-api/internal/platform/logger"
	"github.com/phrazzld/social-api/internal/store"
)

// PostgresAccountStore implements the store.AccountStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAccountStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAccountStore creates a new PostgreSQL implementation of the AccountStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresAccountStore(db store.DBTX, logger *slog.Logger) *PostgresAccountStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAccountStore{
		db:     db,
		logger: logger.With(slog.String("component", "account_store")),
	}
}

// Ensure PostgresAccountStore implements store.AccountStore interface
var _ store.AccountStore = (*PostgresAccountStore)(nil)

// FindByUsername implements store.AccountStore.FindByUsername.
// The comparison is exact and case-sensitive.
func (s *PostgresAccountStore) FindByUsername(
	ctx context.Context,
	username string,
) (*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT account_id, username, password
		FROM accounts
		WHERE username = $1
	`

	var acct domain.Account
	err := s.db.QueryRowContext(ctx, query, username).Scan(
		&acct.ID,
		&acct.Username,
		&acct.Password,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("account not found by username")
			return nil, store.ErrAccountNotFound
		}
		log.Error("failed to get account by username", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return &acct, nil
}

// FindByID implements store.AccountStore.FindByID.
func (s *PostgresAccountStore) FindByID(ctx context.Context, id int64) (*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT account_id, username, password
		FROM accounts
		WHERE account_id = $1
	`

	var acct domain.Account
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&acct.ID,
		&acct.Username,
		&acct.Password,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("account not found", slog.Int64("account_id", id))
			return nil, store.ErrAccountNotFound
		}
		log.Error("failed to get account by ID",
			slog.String("error", err.Error()),
			slog.Int64("account_id", id))
		return nil, MapError(err)
	}

	return &acct, nil
}

// ExistsByID implements store.AccountStore.ExistsByID.
func (s *PostgresAccountStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM accounts WHERE account_id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		log.Error("failed to check account existence",
			slog.String("error", err.Error()),
			slog.Int64("account_id", id))
		return false, MapError(err)
	}

	return exists, nil
}

// Save implements store.AccountStore.Save.
// Returns store.ErrUsernameExists if the unique constraint on username fires.
func (s *PostgresAccountStore) Save(
	ctx context.Context,
	account *domain.Account,
) (*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO accounts (username, password)
		VALUES ($1, $2)
		RETURNING account_id
	`

	saved := *account
	err := s.db.QueryRowContext(ctx, query, account.Username, account.Password).Scan(&saved.ID)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("username already taken")
			return nil, store.ErrUsernameExists
		}
		log.Error("failed to insert account", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	log.Info("account created", slog.Int64("account_id", saved.ID))
	return &saved, nil
}
