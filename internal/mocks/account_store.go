package mocks

import (
	"context"

	"github.com/phrazzld/social-api/internal/domain"
	"github.com/phrazzld/social-api/internal/store"
)

// MockAccountStore implements store.AccountStore for testing.
type MockAccountStore struct {
	FindByUsernameFn func(ctx context.Context, username string) (*domain.Account, error)
	FindByIDFn       func(ctx context.Context, id int64) (*domain.Account, error)
	ExistsByIDFn     func(ctx context.Context, id int64) (bool, error)
	SaveFn           func(ctx context.Context, account *domain.Account) (*domain.Account, error)

	// Err is returned by every method without an Fn.
	Err error
}

var _ store.AccountStore = (*MockAccountStore)(nil)

func (m *MockAccountStore) FindByUsername(ctx context.Context, username string) (*domain.Account, error) {
	if m.FindByUsernameFn != nil {
		return m.FindByUsernameFn(ctx, username)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return nil, store.ErrAccountNotFound
}

func (m *MockAccountStore) FindByID(ctx context.Context, id int64) (*domain.Account, error) {
	if m.FindByIDFn != nil {
		return m.FindByIDFn(ctx, id)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return nil, store.ErrAccountNotFound
}

func (m *MockAccountStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	if m.ExistsByIDFn != nil {
		return m.ExistsByIDFn(ctx, id)
	}
	return false, m.Err
}

func (m *MockAccountStore) Save(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, account)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	saved := *account
	return &saved, nil
}
