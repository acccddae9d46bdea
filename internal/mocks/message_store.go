package mocks

import (
	"context"

	"github.com/phrazzld/social-api/internal/domain"
	"github.com/phrazzld/social-api/internal/store"
)

// MockMessageStore implements store.MessageStore for testing.
type MockMessageStore struct {
	FindAllFn        func(ctx context.Context) ([]*domain.Message, error)
	FindByIDFn       func(ctx context.Context, id int64) (*domain.Message, error)
	FindByPostedByFn func(ctx context.Context, accountID int64) ([]*domain.Message, error)
	ExistsByIDFn     func(ctx context.Context, id int64) (bool, error)
	SaveFn           func(ctx context.Context, message *domain.Message) (*domain.Message, error)
	DeleteByIDFn     func(ctx context.Context, id int64) error

	// Err is returned by every method without an Fn.
	Err error
}

var _ store.MessageStore = (*MockMessageStore)(nil)

func (m *MockMessageStore) FindAll(ctx context.Context) ([]*domain.Message, error) {
	if m.FindAllFn != nil {
		return m.FindAllFn(ctx)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return []*domain.Message{}, nil
}

func (m *MockMessageStore) FindByID(ctx context.Context, id int64) (*domain.Message, error) {
	if m.FindByIDFn != nil {
		return m.FindByIDFn(ctx, id)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return nil, store.ErrMessageNotFound
}

func (m *MockMessageStore) FindByPostedBy(ctx context.Context, accountID int64) ([]*domain.Message, error) {
	if m.FindByPostedByFn != nil {
		return m.FindByPostedByFn(ctx, accountID)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return []*domain.Message{}, nil
}

func (m *MockMessageStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	if m.ExistsByIDFn != nil {
		return m.ExistsByIDFn(ctx, id)
	}
	return false, m.Err
}

func (m *MockMessageStore) Save(ctx context.Context, message *domain.Message) (*domain.Message, error) {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, message)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	saved := *message
	return &saved, nil
}

func (m *MockMessageStore) DeleteByID(ctx context.Context, id int64) error {
	if m.DeleteByIDFn != nil {
		return m.DeleteByIDFn(ctx, id)
	}
	return m.Err
}
