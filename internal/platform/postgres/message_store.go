package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/social-api/internal/domain"
	"github.com/phrazzld/social-api/internal/platform/logger"
	"github.com/phrazzld/social-api/internal/store"
)

const messageColumns = `message_id, posted_by, message_text, time_posted_epoch`

// PostgresMessageStore implements the store.MessageStore interface
// using a PostgreSQL database as the storage backend.
type PostgresMessageStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresMessageStore creates a new PostgreSQL implementation of the MessageStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresMessageStore(db store.DBTX, logger *slog.Logger) *PostgresMessageStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresMessageStore{
		db:     db,
		logger: logger.With(slog.String("component", "message_store")),
	}
}

// Ensure PostgresMessageStore implements store.MessageStore interface
var _ store.MessageStore = (*PostgresMessageStore)(nil)

// FindAll implements store.MessageStore.FindAll.
func (s *PostgresMessageStore) FindAll(ctx context.Context) ([]*domain.Message, error) {
	query := `SELECT ` + messageColumns + ` FROM messages ORDER BY message_id`
	return s.queryMessages(ctx, query)
}

// FindByPostedBy implements store.MessageStore.FindByPostedBy.
func (s *PostgresMessageStore) FindByPostedBy(
	ctx context.Context,
	accountID int64,
) ([]*domain.Message, error) {
	query := `SELECT ` + messageColumns + ` FROM messages WHERE posted_by = $1 ORDER BY message_id`
	return s.queryMessages(ctx, query, accountID)
}

// FindByID implements store.MessageStore.FindByID.
func (s *PostgresMessageStore) FindByID(ctx context.Context, id int64) (*domain.Message, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + messageColumns + ` FROM messages WHERE message_id = $1`

	var msg domain.Message
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&msg.ID,
		&msg.PostedBy,
		&msg.MessageText,
		&msg.TimePostedEpoch,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("message not found", slog.Int64("message_id", id))
			return nil, store.ErrMessageNotFound
		}
		log.Error("failed to get message by ID",
			slog.String("error", err.Error()),
			slog.Int64("message_id", id))
		return nil, MapError(err)
	}

	return &msg, nil
}

// ExistsByID implements store.MessageStore.ExistsByID.
func (s *PostgresMessageStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM messages WHERE message_id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		log.Error("failed to check message existence",
			slog.String("error", err.Error()),
			slog.Int64("message_id", id))
		return false, MapError(err)
	}

	return exists, nil
}

// Save implements store.MessageStore.Save.
// A zero ID inserts a new row; any other ID updates the existing row.
func (s *PostgresMessageStore) Save(
	ctx context.Context,
	message *domain.Message,
) (*domain.Message, error) {
	if message.ID == 0 {
		return s.insert(ctx, message)
	}
	return s.update(ctx, message)
}

func (s *PostgresMessageStore) insert(
	ctx context.Context,
	message *domain.Message,
) (*domain.Message, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO messages (posted_by, message_text, time_posted_epoch)
		VALUES ($1, $2, $3)
		RETURNING message_id
	`

	saved := *message
	err := s.db.QueryRowContext(
		ctx,
		query,
		message.PostedBy,
		message.MessageText,
		message.TimePostedEpoch,
	).Scan(&saved.ID)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during message creation",
				slog.Int64("posted_by", message.PostedBy))
			return nil, fmt.Errorf("%w: account with ID %d not found",
				store.ErrInvalidEntity, message.PostedBy)
		}
		log.Error("failed to insert message",
			slog.String("error", err.Error()),
			slog.Int64("posted_by", message.PostedBy))
		return nil, MapError(err)
	}

	log.Info("message created",
		slog.Int64("message_id", saved.ID),
		slog.Int64("posted_by", saved.PostedBy))
	return &saved, nil
}

func (s *PostgresMessageStore) update(
	ctx context.Context,
	message *domain.Message,
) (*domain.Message, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE messages
		SET posted_by = $1, message_text = $2, time_posted_epoch = $3
		WHERE message_id = $4
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		message.PostedBy,
		message.MessageText,
		message.TimePostedEpoch,
		message.ID,
	)
	if err != nil {
		log.Error("failed to update message",
			slog.String("error", err.Error()),
			slog.Int64("message_id", message.ID))
		return nil, MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrMessageNotFound); err != nil {
		log.Debug("message not found for update", slog.Int64("message_id", message.ID))
		return nil, err
	}

	saved := *message
	log.Info("message updated", slog.Int64("message_id", saved.ID))
	return &saved, nil
}

// DeleteByID implements store.MessageStore.DeleteByID.
// Deleting a message that does not exist is not an error.
func (s *PostgresMessageStore) DeleteByID(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	_, err := s.db.ExecContext(ctx, `DELETE FROM messages WHERE message_id = $1`, id)
	if err != nil {
		log.Error("failed to delete message",
			slog.String("error", err.Error()),
			slog.Int64("message_id", id))
		return MapError(err)
	}

	log.Debug("message deleted", slog.Int64("message_id", id))
	return nil
}

func (s *PostgresMessageStore) queryMessages(
	ctx context.Context,
	query string,
	args ...any,
) ([]*domain.Message, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query messages", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	messages := []*domain.Message{}
	for rows.Next() {
		var msg domain.Message
		if err := rows.Scan(
			&msg.ID,
			&msg.PostedBy,
			&msg.MessageText,
			&msg.TimePostedEpoch,
		); err != nil {
			log.Error("failed to scan message row", slog.String("error", err.Error()))
			return nil, err
		}
		messages = append(messages, &msg)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("messages retrieved", slog.Int("count", len(messages)))
	return messages, nil
}
