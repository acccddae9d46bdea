package store

import (
	"context"

	"github.com/phrazzld/social-api/internal/domain"
)

// AccountStore defines the interface for account data persistence.
type AccountStore interface {
	// FindByUsername retrieves an account by its exact username.
	// Returns ErrAccountNotFound if no account has that username.
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)

	// FindByID retrieves an account by its ID.
	// Returns ErrAccountNotFound if the account does not exist.
	FindByID(ctx context.Context, id int64) (*domain.Account, error)

	// ExistsByID reports whether an account with the given ID exists.
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// Save inserts a new account and returns it with its generated ID.
	// Returns ErrUsernameExists if the username is already taken.
	Save(ctx context.Context, account *domain.Account) (*domain.Account, error)
}
