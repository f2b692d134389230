package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername       = errors.New("username is required")
	ErrInvalidUsernameSize = errors.New("username must be between 2 and 20 characters")
	ErrInvalidUsernameChar = errors.New("username must contain only letters, digits and underscores")
	ErrInvalidEmail        = errors.New("invalid email address")
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters")
	ErrEmptyIdentifier     = errors.New("email or username is required")
	ErrEmptyPassword       = errors.New("password is required")
	ErrEmptyCode           = errors.New("verification code is required")
	ErrEmptyContent        = errors.New("empty message not allowed")
	ErrContentTooLong      = errors.New("message must be no longer than 300 characters")
	ErrInvalidTone         = errors.New("invalid tone")
	ErrInvalidLength       = errors.New("invalid length")
	ErrInvalidCount        = errors.New("count must be between 1 and 6")
)
