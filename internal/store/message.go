package store

import (
	"context"

	"github.com/phrazzld/social-api/internal/domain"
)

// MessageStore defines the interface for message data persistence.
type MessageStore interface {
	// FindAll returns every message. The order is implementation-defined.
	// Returns an empty slice when there are none.
	FindAll(ctx context.Context) ([]*domain.Message, error)

	// FindByID retrieves a message by its ID.
	// Returns ErrMessageNotFound if the message does not exist.
	FindByID(ctx context.Context, id int64) (*domain.Message, error)

	// FindByPostedBy returns all messages whose author is accountID.
	// Returns an empty slice when there are none.
	FindByPostedBy(ctx context.Context, accountID int64) ([]*domain.Message, error)

	// ExistsByID reports whether a message with the given ID exists.
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// Save inserts the message when its ID is zero and updates it otherwise.
	// It returns the stored message, including a generated ID on insert.
	// Returns ErrMessageNotFound when updating a message that does not exist,
	// and ErrInvalidEntity when the author does not exist.
	Save(ctx context.Context, message *domain.Message) (*domain.Message, error)

	// DeleteByID removes a message. Deleting a missing message is not an error.
	DeleteByID(ctx context.Context, id int64) error
}
