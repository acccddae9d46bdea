package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/phrazzld/social-api/internal/domain"
	"github.com/phrazzld/social-api/internal/platform/logger"
	"github.com/phrazzld/social-api/internal/store"
)

// MessageService provides message creation, retrieval, update and deletion.
type MessageService interface {
	// CreateMessage validates and stores a new message. The text must be
	// non-blank and at most domain.MaxMessageLength characters, and PostedBy
	// must name an existing account; otherwise domain.ErrInvalidInput.
	// A zero TimePostedEpoch is stamped with the current time.
	CreateMessage(ctx context.Context, message *domain.Message) (*domain.Message, error)

	// GetAllMessages returns every message in store order.
	GetAllMessages(ctx context.Context) ([]*domain.Message, error)

	// GetMessageByID looks up a message by ID.
	GetMessageByID(ctx context.Context, id int64) (domain.Option[*domain.Message], error)

	// GetMessagesByUserID returns every message posted by userID.
	GetMessagesByUserID(ctx context.Context, userID int64) ([]*domain.Message, error)

	// DeleteMessage removes the message and returns 1, or returns 0 if it did not exist.
	DeleteMessage(ctx context.Context, id int64) (int, error)

	// UpdateMessage replaces the text of an existing message. It returns None
	// when the message does not exist and domain.ErrInvalidInput for bad text.
	UpdateMessage(ctx context.Context, id int64, newText string) (domain.Option[*domain.Message], error)
}

// MessageServiceImpl implements the MessageService interface.
type MessageServiceImpl struct {
	messages store.MessageStore
	accounts store.AccountStore
	logger   *slog.Logger
	timeFunc func() time.Time // Injectable for testing
}

var _ MessageService = (*MessageServiceImpl)(nil)

// NewMessageService creates a new MessageService. The account store is
// consulted to confirm that a message's author exists.
func NewMessageService(
	messages store.MessageStore,
	accounts store.AccountStore,
	logger *slog.Logger,
) *MessageServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &MessageServiceImpl{
		messages: messages,
		accounts: accounts,
		logger:   logger.With("component", "message_service"),
		timeFunc: time.Now,
	}
}

// CreateMessage implements MessageService.
func (s *MessageServiceImpl) CreateMessage(
	ctx context.Context,
	message *domain.Message,
) (*domain.Message, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if message == nil {
		return nil, domain.NewValidationError("message", "is required", domain.ErrInvalidInput)
	}
	if err := domain.ValidateMessageText(message.MessageText); err != nil {
		log.Debug("message rejected", "error", err)
		return nil, err
	}
	if message.PostedBy == 0 {
		return nil, domain.NewValidationError("postedBy", "is required", domain.ErrInvalidInput)
	}

	exists, err := s.accounts.ExistsByID(ctx, message.PostedBy)
	if err != nil {
		log.Error("failed to check author existence", "error", err, "posted_by", message.PostedBy)
		return nil, NewServiceError("create message", err)
	}
	if !exists {
		log.Debug("message rejected: unknown author", "posted_by", message.PostedBy)
		return nil, domain.NewValidationError("postedBy", "does not reference an existing account", domain.ErrInvalidInput)
	}

	toSave := &domain.Message{
		PostedBy:        message.PostedBy,
		MessageText:     message.MessageText,
		TimePostedEpoch: message.TimePostedEpoch,
	}
	if toSave.TimePostedEpoch == 0 {
		toSave.TimePostedEpoch = s.timeFunc().Unix()
	}

	saved, err := s.messages.Save(ctx, toSave)
	if err != nil {
		// The author can vanish between the existence check and the insert.
		if errors.Is(err, store.ErrInvalidEntity) {
			return nil, domain.NewValidationError("postedBy", "does not reference an existing account", domain.ErrInvalidInput)
		}
		log.Error("failed to save message", "error", err, "posted_by", message.PostedBy)
		return nil, NewServiceError("create message", err)
	}

	log.Info("message created", "message_id", saved.ID, "posted_by", saved.PostedBy)
	return saved, nil
}

// GetAllMessages implements MessageService.
func (s *MessageServiceImpl) GetAllMessages(ctx context.Context) ([]*domain.Message, error) {
	messages, err := s.messages.FindAll(ctx)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list messages", "error", err)
		return nil, NewServiceError("get all messages", err)
	}
	return nonNil(messages), nil
}

// GetMessageByID implements MessageService.
func (s *MessageServiceImpl) GetMessageByID(
	ctx context.Context,
	id int64,
) (domain.Option[*domain.Message], error) {
	msg, err := s.messages.FindByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return domain.None[*domain.Message](), nil
		}
		logger.FromContextOrDefault(ctx, s.logger).
			Error("failed to get message", "error", err, "message_id", id)
		return domain.None[*domain.Message](), NewServiceError("get message by id", err)
	}
	return domain.Some(msg), nil
}

// GetMessagesByUserID implements MessageService.
func (s *MessageServiceImpl) GetMessagesByUserID(
	ctx context.Context,
	userID int64,
) ([]*domain.Message, error) {
	messages, err := s.messages.FindByPostedBy(ctx, userID)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).
			Error("failed to list messages by author", "error", err, "posted_by", userID)
		return nil, NewServiceError("get messages by user id", err)
	}
	return nonNil(messages), nil
}

// DeleteMessage implements MessageService.
func (s *MessageServiceImpl) DeleteMessage(ctx context.Context, id int64) (int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	exists, err := s.messages.ExistsByID(ctx, id)
	if err != nil {
		log.Error("failed to check message existence", "error", err, "message_id", id)
		return 0, NewServiceError("delete message", err)
	}
	if !exists {
		return 0, nil
	}

	if err := s.messages.DeleteByID(ctx, id); err != nil {
		log.Error("failed to delete message", "error", err, "message_id", id)
		return 0, NewServiceError("delete message", err)
	}

	log.Info("message deleted", "message_id", id)
	return 1, nil
}

// UpdateMessage implements MessageService.
func (s *MessageServiceImpl) UpdateMessage(
	ctx context.Context,
	id int64,
	newText string,
) (domain.Option[*domain.Message], error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := domain.ValidateMessageText(newText); err != nil {
		log.Debug("message update rejected", "error", err, "message_id", id)
		return domain.None[*domain.Message](), err
	}

	msg, err := s.messages.FindByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return domain.None[*domain.Message](), nil
		}
		log.Error("failed to load message for update", "error", err, "message_id", id)
		return domain.None[*domain.Message](), NewServiceError("update message", err)
	}

	msg.MessageText = newText
	updated, err := s.messages.Save(ctx, msg)
	if err != nil {
		if store.IsNotFoundError(err) {
			return domain.None[*domain.Message](), nil
		}
		log.Error("failed to save updated message", "error", err, "message_id", id)
		return domain.None[*domain.Message](), NewServiceError("update message", err)
	}

	log.Info("message updated", "message_id", id)
	return domain.Some(updated), nil
}

func nonNil(messages []*domain.Message) []*domain.Message {
	if messages == nil {
		return []*domain.Message{}
	}
	return messages
}
