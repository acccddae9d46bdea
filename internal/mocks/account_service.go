package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/social-api/internal/domain"
	"github.com/phrazzld/social-api/internal/service"
)

// MockAccountService implements service.AccountService for testing.
type MockAccountService struct {
	RegisterAccountFn      func(ctx context.Context, account *domain.Account) (*domain.Account, error)
	LoginAccountFn         func(ctx context.Context, username, password string) (domain.Option[*domain.Account], error)
	GetAccountByIDFn       func(ctx context.Context, id int64) (domain.Option[*domain.Account], error)
	GetAccountByUsernameFn func(ctx context.Context, username string) (domain.Option[*domain.Account], error)
	AccountExistsFn        func(ctx context.Context, id int64) (bool, error)

	// Call tracking for verification
	RegisterCalls struct {
		mu       sync.Mutex
		Count    int
		Accounts []*domain.Account
	}
}

var _ service.AccountService = (*MockAccountService)(nil)

func (m *MockAccountService) RegisterAccount(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	m.RegisterCalls.mu.Lock()
	m.RegisterCalls.Count++
	m.RegisterCalls.Accounts = append(m.RegisterCalls.Accounts, account)
	m.RegisterCalls.mu.Unlock()

	if m.RegisterAccountFn != nil {
		return m.RegisterAccountFn(ctx, account)
	}
	saved := *account
	saved.ID = 1
	return &saved, nil
}

func (m *MockAccountService) LoginAccount(
	ctx context.Context,
	username, password string,
) (domain.Option[*domain.Account], error) {
	if m.LoginAccountFn != nil {
		return m.LoginAccountFn(ctx, username, password)
	}
	if err := domain.ValidateCredentials(username, password); err != nil {
		return domain.None[*domain.Account](), err
	}
	return domain.None[*domain.Account](), nil
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, id int64) (domain.Option[*domain.Account], error) {
	if m.GetAccountByIDFn != nil {
		return m.GetAccountByIDFn(ctx, id)
	}
	return domain.None[*domain.Account](), nil
}

func (m *MockAccountService) GetAccountByUsername(
	ctx context.Context,
	username string,
) (domain.Option[*domain.Account], error) {
	if m.GetAccountByUsernameFn != nil {
		return m.GetAccountByUsernameFn(ctx, username)
	}
	return domain.None[*domain.Account](), nil
}

func (m *MockAccountService) AccountExists(ctx context.Context, id int64) (bool, error) {
	if m.AccountExistsFn != nil {
		return m.AccountExistsFn(ctx, id)
	}
	return false, nil
}

func (m *MockAccountService) ValidateLoginCredentials(username, password string) error {
	return domain.ValidateCredentials(username, password)
}
