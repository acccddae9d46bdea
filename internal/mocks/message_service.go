package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/social-api/internal/domain"
	"github.com/phrazzld/social-api/internal/service"
)

// MockMessageService implements service.MessageService for testing.
type MockMessageService struct {
	CreateMessageFn       func(ctx context.Context, message *domain.Message) (*domain.Message, error)
	GetAllMessagesFn      func(ctx context.Context) ([]*domain.Message, error)
	GetMessageByIDFn      func(ctx context.Context, id int64) (domain.Option[*domain.Message], error)
	GetMessagesByUserIDFn func(ctx context.Context, userID int64) ([]*domain.Message, error)
	DeleteMessageFn       func(ctx context.Context, id int64) (int, error)
	UpdateMessageFn       func(ctx context.Context, id int64, newText string) (domain.Option[*domain.Message], error)

	// Call tracking for verification
	UpdateCalls struct {
		mu    sync.Mutex
		Count int
		IDs   []int64
		Texts []string
	}
}

var _ service.MessageService = (*MockMessageService)(nil)

func (m *MockMessageService) CreateMessage(ctx context.Context, message *domain.Message) (*domain.Message, error) {
	if m.CreateMessageFn != nil {
		return m.CreateMessageFn(ctx, message)
	}
	saved := *message
	saved.ID = 1
	return &saved, nil
}

func (m *MockMessageService) GetAllMessages(ctx context.Context) ([]*domain.Message, error) {
	if m.GetAllMessagesFn != nil {
		return m.GetAllMessagesFn(ctx)
	}
	return []*domain.Message{}, nil
}

func (m *MockMessageService) GetMessageByID(ctx context.Context, id int64) (domain.Option[*domain.Message], error) {
	if m.GetMessageByIDFn != nil {
		return m.GetMessageByIDFn(ctx, id)
	}
	return domain.None[*domain.Message](), nil
}

func (m *MockMessageService) GetMessagesByUserID(ctx context.Context, userID int64) ([]*domain.Message, error) {
	if m.GetMessagesByUserIDFn != nil {
		return m.GetMessagesByUserIDFn(ctx, userID)
	}
	return []*domain.Message{}, nil
}

func (m *MockMessageService) DeleteMessage(ctx context.Context, id int64) (int, error) {
	if m.DeleteMessageFn != nil {
		return m.DeleteMessageFn(ctx, id)
	}
	return 0, nil
}

func (m *MockMessageService) UpdateMessage(
	ctx context.Context,
	id int64,
	newText string,
) (domain.Option[*domain.Message], error) {
	m.UpdateCalls.mu.Lock()
	m.UpdateCalls.Count++
	m.UpdateCalls.IDs = append(m.UpdateCalls.IDs, id)
	m.UpdateCalls.Texts = append(m.UpdateCalls.Texts, newText)
	m.UpdateCalls.mu.Unlock()

	if m.UpdateMessageFn != nil {
		return m.UpdateMessageFn(ctx, id, newText)
	}
	return domain.None[*domain.Message](), nil
}
