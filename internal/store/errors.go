package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameAlreadyTaken is returned when a verified user already holds
	// the requested username.
	ErrUsernameAlreadyTaken = errors.New("username is already taken")

	// ErrEmailAlreadyExists is returned when another user holds the email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserAlreadyVerified is returned when a pending-registration update
	// finds the user verified (or missing).
	ErrUserAlreadyVerified = errors.New("user is already verified")

	// ErrVerificationCodeChanged is returned when the stored code no longer
	// matches the one being confirmed.
	ErrVerificationCodeChanged = errors.New("verification code changed")

	// ErrNotAcceptingMessages is returned when the inbox owner has stopped
	// accepting messages or does not exist.
	ErrNotAcceptingMessages = errors.New("user is not accepting messages")

	// ErrMessageNotFound is returned when the message does not exist in the
	// caller's inbox.
	ErrMessageNotFound = errors.New("message not found")

	// ErrUnknownDriver is returned by [NewStorages] for an unsupported driver.
	ErrUnknownDriver = errors.New("unknown storage driver")
)

// Low-level database operation errors. These are wrapped together with the
// driver error when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a result set fails.
	ErrScanningRows = errors.New("failed to scan rows")

	ErrBeginningTransaction  = errors.New("error beginning transaction")
	ErrCommittingTransaction = errors.New("error committing transaction")
)
