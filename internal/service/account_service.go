package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/phrazzld/social-api/internal/domain"
	"github.com/phrazzld/social-api/internal/platform/logger"
	"github.com/phrazzld/social-api/internal/service/auth"
	"github.com/phrazzld/social-api/internal/store"
)

// AccountService provides registration, login and account lookups.
type AccountService interface {
	// RegisterAccount validates and stores a new account.
	// Returns domain.ErrInvalidInput for a blank username or a password of
	// four characters or fewer, and domain.ErrDuplicateUsername when the
	// username is taken.
	RegisterAccount(ctx context.Context, account *domain.Account) (*domain.Account, error)

	// LoginAccount returns the account when username exists and password
	// matches, None otherwise. Blank fields yield domain.ErrInvalidInput.
	LoginAccount(ctx context.Context, username, password string) (domain.Option[*domain.Account], error)

	// GetAccountByID looks up an account by ID.
	GetAccountByID(ctx context.Context, id int64) (domain.Option[*domain.Account], error)

	// GetAccountByUsername looks up an account by exact username.
	GetAccountByUsername(ctx context.Context, username string) (domain.Option[*domain.Account], error)

	// AccountExists reports whether an account with id exists.
	AccountExists(ctx context.Context, id int64) (bool, error)

	// ValidateLoginCredentials applies the same blank checks as LoginAccount.
	ValidateLoginCredentials(username, password string) error
}

// AccountServiceImpl implements the AccountService interface.
type AccountServiceImpl struct {
	accounts store.AccountStore
	hasher   auth.PasswordHasher
	logger   *slog.Logger
}

var _ AccountService = (*AccountServiceImpl)(nil)

// NewAccountService creates a new AccountService. A nil hasher stores
// passwords verbatim.
func NewAccountService(
	accounts store.AccountStore,
	hasher auth.PasswordHasher,
	logger *slog.Logger,
) *AccountServiceImpl {
	if hasher == nil {
		hasher = auth.PlainHasher{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AccountServiceImpl{
		accounts: accounts,
		hasher:   hasher,
		logger:   logger.With("component", "account_service"),
	}
}

// RegisterAccount implements AccountService.
func (s *AccountServiceImpl) RegisterAccount(
	ctx context.Context,
	account *domain.Account,
) (*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if account == nil {
		return nil, domain.NewValidationError("account", "is required", domain.ErrInvalidInput)
	}
	if err := account.ValidateRegistration(); err != nil {
		log.Debug("registration rejected", "error", err)
		return nil, err
	}

	if _, err := s.accounts.FindByUsername(ctx, account.Username); err == nil {
		log.Debug("registration rejected: username taken")
		return nil, domain.ErrDuplicateUsername
	} else if !store.IsNotFoundError(err) {
		log.Error("failed to check username availability", "error", err)
		return nil, NewServiceError("register account", err)
	}

	hashed, err := s.hasher.Hash(account.Password)
	if err != nil {
		log.Error("failed to hash password", "error", err)
		return nil, NewServiceError("register account", err)
	}

	saved, err := s.accounts.Save(ctx, &domain.Account{
		Username: account.Username,
		Password: hashed,
	})
	if err != nil {
		// The store closes the race between the check above and the insert.
		if errors.Is(err, store.ErrUsernameExists) {
			log.Debug("registration rejected: username taken on insert")
			return nil, domain.ErrDuplicateUsername
		}
		log.Error("failed to save account", "error", err)
		return nil, NewServiceError("register account", err)
	}

	log.Info("account registered", "account_id", saved.ID)
	return s.present(saved), nil
}

// LoginAccount implements AccountService.
func (s *AccountServiceImpl) LoginAccount(
	ctx context.Context,
	username, password string,
) (domain.Option[*domain.Account], error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := domain.ValidateCredentials(username, password); err != nil {
		return domain.None[*domain.Account](), err
	}

	acct, err := s.accounts.FindByUsername(ctx, username)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("login failed: unknown username")
			return domain.None[*domain.Account](), nil
		}
		log.Error("failed to look up account for login", "error", err)
		return domain.None[*domain.Account](), NewServiceError("login", err)
	}

	if err := s.hasher.Compare(acct.Password, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			log.Debug("login failed: password mismatch", "account_id", acct.ID)
			return domain.None[*domain.Account](), nil
		}
		log.Error("failed to compare password", "error", err, "account_id", acct.ID)
		return domain.None[*domain.Account](), NewServiceError("login", err)
	}

	log.Info("login succeeded", "account_id", acct.ID)
	return domain.Some(s.present(acct)), nil
}

// GetAccountByID implements AccountService.
func (s *AccountServiceImpl) GetAccountByID(
	ctx context.Context,
	id int64,
) (domain.Option[*domain.Account], error) {
	acct, err := s.accounts.FindByID(ctx, id)
	return s.lookupResult(ctx, "get account by id", acct, err)
}

// GetAccountByUsername implements AccountService.
func (s *AccountServiceImpl) GetAccountByUsername(
	ctx context.Context,
	username string,
) (domain.Option[*domain.Account], error) {
	acct, err := s.accounts.FindByUsername(ctx, username)
	return s.lookupResult(ctx, "get account by username", acct, err)
}

// AccountExists implements AccountService.
func (s *AccountServiceImpl) AccountExists(ctx context.Context, id int64) (bool, error) {
	exists, err := s.accounts.ExistsByID(ctx, id)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).
			Error("failed to check account existence", "error", err, "account_id", id)
		return false, NewServiceError("account exists", err)
	}
	return exists, nil
}

// ValidateLoginCredentials implements AccountService.
func (s *AccountServiceImpl) ValidateLoginCredentials(username, password string) error {
	return domain.ValidateCredentials(username, password)
}

func (s *AccountServiceImpl) lookupResult(
	ctx context.Context,
	operation string,
	acct *domain.Account,
	err error,
) (domain.Option[*domain.Account], error) {
	if err != nil {
		if store.IsNotFoundError(err) {
			return domain.None[*domain.Account](), nil
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("account lookup failed",
			"error", err,
			"operation", operation)
		return domain.None[*domain.Account](), NewServiceError(operation, err)
	}
	return domain.Some(s.present(acct)), nil
}

// present hides the stored password when it is a hash.
func (s *AccountServiceImpl) present(acct *domain.Account) *domain.Account {
	if s.hasher.RevealsPassword() {
		return acct
	}
	out := *acct
	out.Password = ""
	return &out
}
