package service

import (
	"context"

	"github.com/MKhiriev/mystery-message/models"
)

// AuthService covers the account lifecycle: registration, email
// verification, code resend, login and token handling.
type AuthService interface {
	// Register creates or refreshes an unverified account and emails it a
	// verification code.
	Register(ctx context.Context, req models.RegisterRequest) error

	// Verify checks a submitted code and marks the account verified.
	Verify(ctx context.Context, req models.VerifyRequest) error

	// Resend issues and emails a fresh code.
	Resend(ctx context.Context, req models.ResendRequest) error

	// Login authenticates by email or username.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// CheckUsernameAvailable reports whether registration with the handle
	// would not fail with ErrHandleTaken.
	CheckUsernameAvailable(ctx context.Context, query models.UsernameQuery) (bool, error)
}

// InboxService manages the accepting flag and the messages of an inbox.
type InboxService interface {
	SetAcceptingMessages(ctx context.Context, userID int64, accepting bool) (bool, error)
	AcceptingStatus(ctx context.Context, userID int64) (bool, error)

	// SubmitMessage delivers an anonymous message to a public handle.
	SubmitMessage(ctx context.Context, req models.SendMessageRequest) error

	ListMessages(ctx context.Context, userID int64) ([]models.Message, error)
	DeleteMessage(ctx context.Context, userID int64, messageID string) error

	Profile(ctx context.Context, query models.UsernameQuery) (models.Profile, error)
	Account(ctx context.Context, userID int64) (models.User, error)
}

// SuggestionService produces message starters for a handle.
type SuggestionService interface {
	Suggest(ctx context.Context, req models.SuggestRequest) ([]string, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// CodeGenerator produces one-time verification codes.
type CodeGenerator interface {
	Generate() (string, error)
}

// IDGenerator produces message identifiers.
type IDGenerator interface {
	Generate() string
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// InboxServiceWrapper defines middleware composition for InboxService.
type InboxServiceWrapper interface {
	Wrap(InboxService) InboxService
}

// SuggestionServiceWrapper defines middleware composition for SuggestionService.
type SuggestionServiceWrapper interface {
	Wrap(SuggestionService) SuggestionService
}
