package store

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/mystery-message/internal/logger"
	"github.com/MKhiriev/mystery-message/models"
)

// messageRepository is the SQL implementation of [MessageRepository].
type messageRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMessageRepository constructs a [MessageRepository] backed by db.
func NewMessageRepository(db *DB, logger *logger.Logger) MessageRepository {
	logger.Debug().Msg("creating message repository")
	return &messageRepository{
		db:     db,
		logger: logger,
	}
}

// AppendMessage inserts msg through INSERT .. SELECT gated on the owner's
// accepting flag. Zero affected rows means the gate was closed.
func (r *messageRepository) AppendMessage(ctx context.Context, msg models.Message) (models.Message, error) {
	log := logger.FromContext(ctx)

	query, args, err := appendMessageQuery(r.db.builder, r.db.dialect, msg)
	if err != nil {
		return models.Message{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.AppendMessage").Msg("error appending message")
		return models.Message{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.Message{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return models.Message{}, ErrNotAcceptingMessages
	}

	return msg, nil
}

func (r *messageRepository) ListMessages(ctx context.Context, userID int64) ([]models.Message, error) {
	query, args, err := listMessagesQuery(r.db.builder, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryMessages(ctx, "*messageRepository.ListMessages", query, args)
}

// RecentMessages reads newest first and reverses, so the result is oldest first.
func (r *messageRepository) RecentMessages(ctx context.Context, userID int64, limit int) ([]models.Message, error) {
	if limit <= 0 {
		return []models.Message{}, nil
	}

	query, args, err := recentMessagesQuery(r.db.builder, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	messages, err := r.queryMessages(ctx, "*messageRepository.RecentMessages", query, args)
	if err != nil {
		return nil, err
	}
	slices.Reverse(messages)
	return messages, nil
}

func (r *messageRepository) queryMessages(ctx context.Context, funcName, query string, args []any) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error querying messages")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	messages := make([]models.Message, 0)
	for rows.Next() {
		msg, err := scanMessage(rows)
		if err != nil {
			log.Err(err).Str("func", funcName).Msg("error scanning message")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		messages = append(messages, msg)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error iterating messages")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return messages, nil
}

func (r *messageRepository) DeleteMessage(ctx context.Context, userID int64, messageID string) error {
	log := logger.FromContext(ctx)

	query, args, err := deleteMessageQuery(r.db.builder, userID, messageID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.DeleteMessage").Msg("error deleting message")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrMessageNotFound
	}

	return nil
}
