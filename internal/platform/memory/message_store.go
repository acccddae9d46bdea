package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/phrazzld/social-api/internal/domain"
	"github.com/phrazzld/social-api/internal/store"
	"github.com/samber/lo"
)

// MessageStore implements store.MessageStore on top of DB.
// Listings are returned in ascending ID order.
type MessageStore struct {
	db *DB
}

var _ store.MessageStore = (*MessageStore)(nil)

func (s *MessageStore) FindAll(_ context.Context) ([]*domain.Message, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	return sortedCopies(lo.Values(s.db.messages)), nil
}

func (s *MessageStore) FindByID(_ context.Context, id int64) (*domain.Message, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	msg, ok := s.db.messages[id]
	if !ok {
		return nil, store.ErrMessageNotFound
	}
	return &msg, nil
}

func (s *MessageStore) FindByPostedBy(_ context.Context, accountID int64) ([]*domain.Message, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	matching := lo.Filter(lo.Values(s.db.messages), func(m domain.Message, _ int) bool {
		return m.PostedBy == accountID
	})
	return sortedCopies(matching), nil
}

func (s *MessageStore) ExistsByID(_ context.Context, id int64) (bool, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	_, ok := s.db.messages[id]
	return ok, nil
}

func (s *MessageStore) Save(_ context.Context, message *domain.Message) (*domain.Message, error) {
	if message == nil {
		return nil, fmt.Errorf("%w: nil message", store.ErrInvalidEntity)
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.accounts[message.PostedBy]; !ok {
		return nil, fmt.Errorf("%w: account with ID %d not found",
			store.ErrInvalidEntity, message.PostedBy)
	}

	msg := *message
	if msg.ID == 0 {
		msg.ID = s.db.nextMessageID
		s.db.nextMessageID++
	} else if _, ok := s.db.messages[msg.ID]; !ok {
		return nil, store.ErrMessageNotFound
	}

	s.db.messages[msg.ID] = msg
	return &msg, nil
}

func (s *MessageStore) DeleteByID(_ context.Context, id int64) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	delete(s.db.messages, id)
	return nil
}

func sortedCopies(messages []domain.Message) []*domain.Message {
	slices.SortFunc(messages, func(a, b domain.Message) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return lo.Map(messages, func(m domain.Message, _ int) *domain.Message {
		return &m
	})
}
