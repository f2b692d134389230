package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/mystery-message/internal/logger"
	"github.com/MKhiriev/mystery-message/internal/store"
	"github.com/MKhiriev/mystery-message/internal/utils"
	"github.com/MKhiriev/mystery-message/models"
)

type inboxService struct {
	userRepository    store.UserRepository
	messageRepository store.MessageRepository
	ids               IDGenerator
	now               func() time.Time
	logger            *logger.Logger
}

// NewInboxService constructs an InboxService over the given repositories.
// Message IDs are UUIDv7 strings.
func NewInboxService(userRepository store.UserRepository, messageRepository store.MessageRepository, logger *logger.Logger) InboxService {
	return &inboxService{
		userRepository:    userRepository,
		messageRepository: messageRepository,
		ids:               utils.NewUUIDGenerator(),
		now:               time.Now,
		logger:            logger,
	}
}

func (s *inboxService) SetAcceptingMessages(ctx context.Context, userID int64, accepting bool) (bool, error) {
	if userID <= 0 {
		return false, ErrUnauthorized
	}

	user, err := s.userRepository.SetAcceptingMessages(ctx, userID, accepting)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*inboxService.SetAcceptingMessages").Int64("id", userID).Msg("updating accepting flag failed")
		return false, fmt.Errorf("updating accepting flag failed: %w", err)
	}

	return user.IsAcceptingMessages, nil
}

func (s *inboxService) AcceptingStatus(ctx context.Context, userID int64) (bool, error) {
	user, err := s.Account(ctx, userID)
	if err != nil {
		return false, err
	}

	return user.IsAcceptingMessages, nil
}

// SubmitMessage delivers an anonymous message. The accepting flag is checked
// once here for a friendly error and again atomically by the store.
func (s *inboxService) SubmitMessage(ctx context.Context, req models.SendMessageRequest) error {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.FindUserByUsername(ctx, normalizeUsername(req.Username))
	if err != nil {
		return fmt.Errorf("user search by username failed: %w", err)
	}
	if !user.IsAcceptingMessages {
		return ErrNotAccepting
	}

	msg, err := s.messageRepository.AppendMessage(ctx, models.Message{
		MessageID: s.ids.Generate(),
		UserID:    user.UserID,
		Content:   req.Content,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, store.ErrNotAcceptingMessages) {
			return ErrNotAccepting
		}
		log.Err(err).Str("func", "*inboxService.SubmitMessage").Int64("id", user.UserID).Msg("appending message failed")
		return fmt.Errorf("appending message failed: %w", err)
	}

	log.Debug().Str("func", "*inboxService.SubmitMessage").Str("message_id", msg.MessageID).Msg("message delivered")
	return nil
}

func (s *inboxService) ListMessages(ctx context.Context, userID int64) ([]models.Message, error) {
	if userID <= 0 {
		return nil, ErrUnauthorized
	}

	messages, err := s.messageRepository.ListMessages(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*inboxService.ListMessages").Int64("id", userID).Msg("listing messages failed")
		return nil, fmt.Errorf("listing messages failed: %w", err)
	}

	return messages, nil
}

// DeleteMessage removes one of the owner's messages. Malformed IDs are
// reported as not found.
func (s *inboxService) DeleteMessage(ctx context.Context, userID int64, messageID string) error {
	if userID <= 0 {
		return ErrUnauthorized
	}
	if !utils.IsUUID(messageID) {
		return store.ErrMessageNotFound
	}

	return s.messageRepository.DeleteMessage(ctx, userID, messageID)
}

func (s *inboxService) Profile(ctx context.Context, query models.UsernameQuery) (models.Profile, error) {
	user, err := s.userRepository.FindUserByUsername(ctx, normalizeUsername(query.Username))
	if err != nil {
		return models.Profile{}, fmt.Errorf("user search by username failed: %w", err)
	}

	return user.Profile(), nil
}

func (s *inboxService) Account(ctx context.Context, userID int64) (models.User, error) {
	if userID <= 0 {
		return models.User{}, ErrUnauthorized
	}

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}
