package memory

import (
	"context"
	"fmt"

	"github.com/phrazzld/social-api/internal/domain"
	"github.com/phrazzld/social-api/internal/store"
)

// AccountStore implements store.AccountStore on top of DB.
type AccountStore struct {
	db *DB
}

var _ store.AccountStore = (*AccountStore)(nil)

func (s *AccountStore) FindByUsername(_ context.Context, username string) (*domain.Account, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	acct, ok := s.db.accountByUsernameLocked(username)
	if !ok {
		return nil, store.ErrAccountNotFound
	}
	return &acct, nil
}

func (s *AccountStore) FindByID(_ context.Context, id int64) (*domain.Account, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	acct, ok := s.db.accounts[id]
	if !ok {
		return nil, store.ErrAccountNotFound
	}
	return &acct, nil
}

func (s *AccountStore) ExistsByID(_ context.Context, id int64) (bool, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	_, ok := s.db.accounts[id]
	return ok, nil
}

func (s *AccountStore) Save(_ context.Context, account *domain.Account) (*domain.Account, error) {
	if account == nil {
		return nil, fmt.Errorf("%w: nil account", store.ErrInvalidEntity)
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	// Checked under the write lock so two concurrent registrations of the
	// same username cannot both succeed.
	if _, taken := s.db.accountByUsernameLocked(account.Username); taken {
		return nil, store.ErrUsernameExists
	}

	acct := *account
	acct.ID = s.db.nextAccountID
	s.db.nextAccountID++
	s.db.accounts[acct.ID] = acct
	s.db.usernames[acct.Username] = acct.ID
	return &acct, nil
}

func (db *DB) accountByUsernameLocked(username string) (domain.Account, bool) {
	id, ok := db.usernames[username]
	if !ok {
		return domain.Account{}, false
	}
	acct, ok := db.accounts[id]
	return acct, ok
}
