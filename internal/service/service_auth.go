package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/mystery-message/internal/config"
	"github.com/MKhiriev/mystery-message/internal/logger"
	"github.com/MKhiriev/mystery-message/internal/mailer"
	"github.com/MKhiriev/mystery-message/internal/store"
	"github.com/MKhiriev/mystery-message/internal/utils"
	"github.com/MKhiriev/mystery-message/models"
)

// maxCodeAttempts bounds the search for a resend code that differs from the
// stored one.
const maxCodeAttempts = 8

// authService is the concrete implementation of AuthService.
// It drives the verification lifecycle, hashes secrets with bcrypt and
// issues JWT tokens.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// mailer delivers verification codes.
	mailer mailer.Mailer

	// codes produces verification codes.
	codes CodeGenerator

	// now is the clock used for code expiry.
	now func() time.Time

	// codeTTL is how long an issued code stays valid. Used on every path
	// that issues a code.
	codeTTL time.Duration

	// hashCost is the bcrypt cost factor.
	hashCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and Mailer and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, m mailer.Mailer, appCfg config.App, verificationCfg config.Verification, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		mailer:         m,
		codes:          NewCodeGenerator(),
		now:            time.Now,
		codeTTL:        verificationCfg.CodeTTL,
		hashCost:       appCfg.PasswordHashCost,
		tokenSignKey:   appCfg.TokenSignKey,
		tokenIssuer:    appCfg.TokenIssuer,
		tokenDuration:  appCfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new unverified account or refreshes a pending one, then
// emails a fresh code.
//
// Returns:
//   - ErrHandleTaken if a verified user owns the username.
//   - ErrEmailTaken if a verified user owns the email.
//   - ErrDeliveryFailed if the email could not be sent. The account stays
//     persisted and Resend can recover it.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) error {
	log := logger.FromContext(ctx)

	holder, err := a.userRepository.FindUserByUsername(ctx, req.Username)
	switch {
	case err == nil && holder.IsVerified:
		return ErrHandleTaken
	case err != nil && !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Str("func", "*authService.Register").Msg("user search by username failed")
		return fmt.Errorf("user search by username failed: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), a.hashCost)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	code, err := a.codes.Generate()
	if err != nil {
		return err
	}
	expiresAt := a.now().Add(a.codeTTL)

	user, err := a.savePendingUser(ctx, req, string(passwordHash), code, expiresAt)
	if err != nil {
		return err
	}

	return a.deliver(ctx, user, code)
}

// savePendingUser reuses an unverified account found by email, or upserts
// one by username.
func (a *authService) savePendingUser(ctx context.Context, req models.RegisterRequest, passwordHash, code string, expiresAt time.Time) (models.User, error) {
	log := logger.FromContext(ctx)

	byEmail, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	switch {
	case err == nil:
		if byEmail.IsVerified {
			return models.User{}, ErrEmailTaken
		}

		user, err := a.userRepository.UpdatePendingUser(ctx, byEmail.UserID, passwordHash, code, expiresAt)
		if errors.Is(err, store.ErrUserAlreadyVerified) {
			return models.User{}, ErrEmailTaken
		}
		if err != nil {
			log.Err(err).Str("func", "*authService.savePendingUser").Msg("pending user update failed")
			return models.User{}, fmt.Errorf("pending user update failed: %w", err)
		}
		return user, nil

	case errors.Is(err, store.ErrUserNotFound):
		user, err := a.userRepository.CreatePendingUser(ctx, models.User{
			Username:            req.Username,
			Email:               req.Email,
			PasswordHash:        passwordHash,
			VerifyCode:          code,
			VerifyCodeExpiry:    &expiresAt,
			IsAcceptingMessages: true,
			CreatedAt:           a.now().UTC(),
		})
		switch {
		case errors.Is(err, store.ErrUsernameAlreadyTaken):
			return models.User{}, ErrHandleTaken
		case errors.Is(err, store.ErrEmailAlreadyExists):
			return models.User{}, ErrEmailTaken
		case err != nil:
			log.Err(err).Str("func", "*authService.savePendingUser").Msg("user creation ended with error")
			return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
		}
		return user, nil

	default:
		log.Err(err).Str("func", "*authService.savePendingUser").Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}
}

// Verify checks the submitted code against the stored one.
//
// Returns store.ErrUserNotFound for an unknown handle, ErrCodeMismatch when
// the code differs (including when a concurrent resend replaced it) and
// ErrCodeExpired when the code is past its expiry.
func (a *authService) Verify(ctx context.Context, req models.VerifyRequest) error {
	log := logger.FromContext(ctx)

	// the code is compared exactly as submitted
	username := normalizeUsername(req.Username)
	code := req.Code
	if username == "" || strings.TrimSpace(code) == "" {
		return ErrValidation
	}

	user, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("user search by username failed: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(user.VerifyCode), []byte(code)) != 1 {
		return ErrCodeMismatch
	}
	if user.CodeExpired(a.now()) {
		return ErrCodeExpired
	}

	if err = a.userRepository.MarkVerified(ctx, user.UserID, code); err != nil {
		if errors.Is(err, store.ErrVerificationCodeChanged) {
			return ErrCodeMismatch
		}
		log.Err(err).Str("func", "*authService.Verify").Int64("id", user.UserID).Msg("marking user verified failed")
		return fmt.Errorf("marking user verified failed: %w", err)
	}

	log.Info().Str("func", "*authService.Verify").Int64("id", user.UserID).Msg("user verified")
	return nil
}

// Resend stores a new code that differs from the current one and emails it.
// Verified users may resend too. On ErrDeliveryFailed the new code stays
// stored.
func (a *authService) Resend(ctx context.Context, req models.ResendRequest) error {
	log := logger.FromContext(ctx)

	username := normalizeUsername(req.Username)
	if username == "" {
		return ErrValidation
	}

	user, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("user search by username failed: %w", err)
	}

	code, err := a.freshCode(user.VerifyCode)
	if err != nil {
		return err
	}

	user, err = a.userRepository.SetVerificationCode(ctx, user.UserID, code, a.now().Add(a.codeTTL))
	if err != nil {
		log.Err(err).Str("func", "*authService.Resend").Msg("storing verification code failed")
		return fmt.Errorf("storing verification code failed: %w", err)
	}

	return a.deliver(ctx, user, code)
}

func (a *authService) freshCode(current string) (string, error) {
	for range maxCodeAttempts {
		code, err := a.codes.Generate()
		if err != nil {
			return "", err
		}
		if code != current {
			return code, nil
		}
	}
	return "", errors.New("could not generate a new verification code")
}

func (a *authService) deliver(ctx context.Context, user models.User, code string) error {
	log := logger.FromContext(ctx)

	err := a.mailer.SendVerificationEmail(ctx, mailer.VerificationEmail{
		To:        user.Email,
		Username:  user.Username,
		Code:      code,
		ExpiresIn: a.codeTTL,
	})
	if err != nil {
		log.Err(err).Str("func", "*authService.deliver").Int64("id", user.UserID).Msg("verification email delivery failed")
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	return nil
}

// Login authenticates by email or username.
//
// Unknown identifiers and wrong passwords both yield ErrInvalidCredentials.
// A correct password on an unverified account yields ErrNotVerified.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByIdentifier(ctx, strings.TrimSpace(req.Identifier))
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "*authService.Login").Msg("user search by identifier failed")
		return models.User{}, fmt.Errorf("user search by identifier failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	if !user.IsVerified {
		return models.User{}, ErrNotVerified
	}

	return user, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string. Any validation failure
// (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// CheckUsernameAvailable reports false only when a verified user owns the
// handle, matching what Register enforces.
func (a *authService) CheckUsernameAvailable(ctx context.Context, query models.UsernameQuery) (bool, error) {
	user, err := a.userRepository.FindUserByUsername(ctx, query.Username)
	if errors.Is(err, store.ErrUserNotFound) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("user search by username failed: %w", err)
	}

	return !user.IsVerified, nil
}

// normalizeUsername trims and URL-decodes a handle taken from a link or form.
// Undecodable input is kept as trimmed.
func normalizeUsername(raw string) string {
	trimmed := strings.TrimSpace(raw)
	decoded, err := url.QueryUnescape(trimmed)
	if err != nil {
		return trimmed
	}
	return decoded
}
