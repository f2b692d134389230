package store

import (
	"database/sql"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/mystery-message/models"
)

const (
	usersTable    = "users"
	messagesTable = "messages"
)

var (
	userColumns = []string{
		"user_id",
		"username",
		"email",
		"password_hash",
		"verify_code",
		"verify_code_expiry",
		"is_verified",
		"is_accepting_messages",
		"created_at",
	}

	messageColumns = []string{
		"message_id",
		"user_id",
		"content",
		"created_at",
	}
)

// supersedeUnverified turns a username conflict into an update of the
// existing row, but only while that row is unverified. A verified holder
// makes the statement return no row. The new claimant starts as a fresh
// account, so messages of the old one are removed by clearMessagesQuery in
// the same transaction.
const supersedeUnverified = `ON CONFLICT (username) DO UPDATE SET
		email = excluded.email,
		password_hash = excluded.password_hash,
		verify_code = excluded.verify_code,
		verify_code_expiry = excluded.verify_code_expiry,
		is_accepting_messages = excluded.is_accepting_messages,
		created_at = excluded.created_at
	WHERE users.is_verified = FALSE`

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func createPendingUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns(userColumns[1:]...).
		Values(
			user.Username,
			user.Email,
			user.PasswordHash,
			user.VerifyCode,
			nullTime(user.VerifyCodeExpiry),
			false,
			true,
			user.CreatedAt,
		).
		Suffix(supersedeUnverified + " " + returning(userColumns)).
		ToSql()
}

func updatePendingUserQuery(b sq.StatementBuilderType, userID int64, passwordHash, code string, expiresAt time.Time) (string, []any, error) {
	return b.Update(usersTable).
		Set("password_hash", passwordHash).
		Set("verify_code", code).
		Set("verify_code_expiry", expiresAt).
		Where(sq.Eq{"user_id": userID, "is_verified": false}).
		Suffix(returning(userColumns)).
		ToSql()
}

func findUserQuery(b sq.StatementBuilderType, pred sq.Sqlizer) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(pred).
		Limit(1).
		ToSql()
}

func setVerificationCodeQuery(b sq.StatementBuilderType, userID int64, code string, expiresAt time.Time) (string, []any, error) {
	return b.Update(usersTable).
		Set("verify_code", code).
		Set("verify_code_expiry", expiresAt).
		Where(sq.Eq{"user_id": userID}).
		Suffix(returning(userColumns)).
		ToSql()
}

func markVerifiedQuery(b sq.StatementBuilderType, userID int64, code string) (string, []any, error) {
	return b.Update(usersTable).
		Set("is_verified", true).
		Set("verify_code", "").
		Set("verify_code_expiry", nil).
		Where(sq.Eq{"user_id": userID, "verify_code": code}).
		ToSql()
}

func setAcceptingMessagesQuery(b sq.StatementBuilderType, userID int64, accepting bool) (string, []any, error) {
	return b.Update(usersTable).
		Set("is_accepting_messages", accepting).
		Where(sq.Eq{"user_id": userID}).
		Suffix(returning(userColumns)).
		ToSql()
}

// appendMessageQuery inserts the message only if its owner currently accepts
// messages, in a single statement.
func appendMessageQuery(b sq.StatementBuilderType, d dialect, msg models.Message) (string, []any, error) {
	source := sq.Select().
		Column(d.param("UUID"), msg.MessageID).
		Column("user_id").
		Column(d.param("TEXT"), msg.Content).
		Column(d.param("TIMESTAMPTZ"), msg.CreatedAt).
		From(usersTable).
		Where(sq.Eq{"user_id": msg.UserID, "is_accepting_messages": true})

	return b.Insert(messagesTable).
		Columns(messageColumns...).
		Select(source).
		ToSql()
}

func listMessagesQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(messageColumns...).
		From(messagesTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "seq ASC").
		ToSql()
}

func recentMessagesQuery(b sq.StatementBuilderType, userID int64, limit int) (string, []any, error) {
	return b.Select(messageColumns...).
		From(messagesTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("seq DESC").
		Limit(uint64(limit)).
		ToSql()
}

func clearMessagesQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Delete(messagesTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func deleteMessageQuery(b sq.StatementBuilderType, userID int64, messageID string) (string, []any, error) {
	return b.Delete(messagesTable).
		Where(sq.Eq{"message_id": messageID, "user_id": userID}).
		ToSql()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user   models.User
		expiry sql.NullTime
	)
	err := row.Scan(
		&user.UserID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.VerifyCode,
		&expiry,
		&user.IsVerified,
		&user.IsAcceptingMessages,
		&user.CreatedAt,
	)
	if err != nil {
		return models.User{}, err
	}
	if expiry.Valid {
		t := expiry.Time
		user.VerifyCodeExpiry = &t
	}
	return user, nil
}

func scanMessage(row rowScanner) (models.Message, error) {
	var msg models.Message
	err := row.Scan(&msg.MessageID, &msg.UserID, &msg.Content, &msg.CreatedAt)
	return msg, err
}
