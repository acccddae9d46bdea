package memory

import (
	"sync"

	"github.com/phrazzld/social-api/internal/domain"
)

// DB holds the shared state behind AccountStore and MessageStore.
// A single lock covers both tables so that message writes can check
// the author's existence atomically.
type DB struct {
	mu            sync.RWMutex
	nextAccountID int64
	nextMessageID int64
	accounts      map[int64]domain.Account
	messages      map[int64]domain.Message

	// usernames indexes accounts by exact username.
	usernames map[string]int64
}

// New creates an empty database. IDs start at 1.
func New() *DB {
	return &DB{
		nextAccountID: 1,
		nextMessageID: 1,
		accounts:      make(map[int64]domain.Account),
		messages:      make(map[int64]domain.Message),
		usernames:     make(map[string]int64),
	}
}

// Accounts returns an AccountStore backed by db.
func (db *DB) Accounts() *AccountStore {
	return &AccountStore{db: db}
}

// Messages returns a MessageStore backed by db.
func (db *DB) Messages() *MessageStore {
	return &MessageStore{db: db}
}
