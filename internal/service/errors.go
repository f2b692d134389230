package service

import "errors"

var (
	// ErrValidation wraps every input rule violation. The wrapped reason
	// comes from the validators package.
	ErrValidation = errors.New("validation error")

	ErrHandleTaken    = errors.New("username is already taken")
	ErrEmailTaken     = errors.New("user already exists with this email")
	ErrDeliveryFailed = errors.New("failed to send verification email")
	ErrCodeMismatch   = errors.New("incorrect verification code")
	ErrCodeExpired    = errors.New("verification code has expired, please sign up again to get a new code")
	ErrNotAccepting   = errors.New("user is not accepting messages")

	// ErrUnauthorized is returned when an operation needs an identity and
	// none was supplied.
	ErrUnauthorized = errors.New("not authenticated")

	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrNotVerified        = errors.New("please verify your account before logging in")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
