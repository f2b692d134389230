package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/mystery-message/internal/logger"
	"github.com/MKhiriev/mystery-message/models"
)

// userRepository is the SQL implementation of [UserRepository] for both
// PostgreSQL and SQLite. Statements are built with squirrel using the
// placeholder format of the connection's dialect.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePendingUser inserts an unverified user or supersedes an unverified
// holder of the same username. A superseded holder loses its messages; the
// upsert and the cleanup commit together.
//
// Error handling:
//   - no row returned (verified holder) → [ErrUsernameAlreadyTaken].
//   - unique violation (email) → [ErrEmailAlreadyExists].
func (r *userRepository) CreatePendingUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := createPendingUserQuery(r.db.builder, user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreatePendingUser").Msg("failed to begin transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	created, err := scanUser(tx.QueryRowContext(ctx, query, args...))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return models.User{}, ErrUsernameAlreadyTaken
		case r.db.errorClassificator.Classify(err) == UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreatePendingUser").Msg("error creating pending user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	// a fresh insert has no messages, so this only affects a superseded row
	clearQuery, clearArgs, err := clearMessagesQuery(r.db.builder, created.UserID)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		log.Err(err).Str("func", "*userRepository.CreatePendingUser").Int64("id", created.UserID).Msg("error clearing superseded messages")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreatePendingUser").Msg("failed to commit transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrCommittingTransaction, err)
	}

	return created, nil
}

// UpdatePendingUser rewrites the secret and code of an unverified user.
func (r *userRepository) UpdatePendingUser(ctx context.Context, userID int64, passwordHash, code string, expiresAt time.Time) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := updatePendingUserQuery(r.db.builder, userID, passwordHash, code, expiresAt)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserAlreadyVerified
		}
		log.Err(err).Str("func", "*userRepository.UpdatePendingUser").Msg("error updating pending user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByID", sq.Eq{"user_id": userID})
}

func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByUsername", sq.Eq{"username": username})
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByEmail", sq.Eq{"email": email})
}

func (r *userRepository) FindUserByIdentifier(ctx context.Context, identifier string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByIdentifier", sq.Or{
		sq.Eq{"email": identifier},
		sq.Eq{"username": identifier},
	})
}

func (r *userRepository) findUser(ctx context.Context, funcName string, pred sq.Sqlizer) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := findUserQuery(r.db.builder, pred)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", funcName).Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

func (r *userRepository) SetVerificationCode(ctx context.Context, userID int64, code string, expiresAt time.Time) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := setVerificationCodeQuery(r.db.builder, userID, code, expiresAt)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.SetVerificationCode").Msg("error setting verification code")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// MarkVerified is a compare-and-set on the stored code, so a code replaced by
// a concurrent resend cannot verify the account.
func (r *userRepository) MarkVerified(ctx context.Context, userID int64, code string) error {
	log := logger.FromContext(ctx)

	query, args, err := markVerifiedQuery(r.db.builder, userID, code)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.MarkVerified").Msg("error marking user verified")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrVerificationCodeChanged
	}

	return nil
}

func (r *userRepository) SetAcceptingMessages(ctx context.Context, userID int64, accepting bool) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := setAcceptingMessagesQuery(r.db.builder, userID, accepting)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.SetAcceptingMessages").Msg("error updating accepting flag")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}
