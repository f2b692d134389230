package store

import (
	"context"
	"time"

	"github.com/MKhiriev/mystery-message/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_store.go -package=mock

// UserRepository persists accounts and their verification state.
//
// Every mutating method is atomic against one user row.
type UserRepository interface {
	// CreatePendingUser inserts an unverified user, or supersedes an
	// unverified user holding the same username. A superseded user starts
	// over with no messages and a new creation time. It fails with
	// [ErrUsernameAlreadyTaken] when a verified user holds the username and
	// with [ErrEmailAlreadyExists] when another user holds the email.
	CreatePendingUser(ctx context.Context, user models.User) (models.User, error)

	// UpdatePendingUser replaces the secret and code of a still unverified
	// user. It fails with [ErrUserAlreadyVerified] when the user is verified
	// or gone.
	UpdatePendingUser(ctx context.Context, userID int64, passwordHash, code string, expiresAt time.Time) (models.User, error)

	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByIdentifier matches identifier against email or username.
	FindUserByIdentifier(ctx context.Context, identifier string) (models.User, error)

	// SetVerificationCode stores a fresh code regardless of verified state.
	SetVerificationCode(ctx context.Context, userID int64, code string, expiresAt time.Time) (models.User, error)

	// MarkVerified flips the user to verified and clears the code, provided
	// the stored code still equals code. Otherwise it fails with
	// [ErrVerificationCodeChanged].
	MarkVerified(ctx context.Context, userID int64, code string) error

	SetAcceptingMessages(ctx context.Context, userID int64, accepting bool) (models.User, error)
}

// MessageRepository persists inbox messages.
type MessageRepository interface {
	// AppendMessage stores msg for its owner only while the owner accepts
	// messages. Otherwise it fails with [ErrNotAcceptingMessages].
	AppendMessage(ctx context.Context, msg models.Message) (models.Message, error)

	// ListMessages returns the owner's messages, newest first. Messages with
	// equal timestamps keep insertion order.
	ListMessages(ctx context.Context, userID int64) ([]models.Message, error)

	// RecentMessages returns up to limit of the most recently inserted
	// messages, oldest first.
	RecentMessages(ctx context.Context, userID int64, limit int) ([]models.Message, error)

	// DeleteMessage removes a message owned by userID. It fails with
	// [ErrMessageNotFound] when no such message belongs to userID.
	DeleteMessage(ctx context.Context, userID int64, messageID string) error
}
