package validators

import (
	"context"
	"net/mail"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/mystery-message/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldUsername applies the full handle rules.
	FieldUsername = "username"

	// FieldUsernamePresent only requires a non-blank handle. Lookups by an
	// existing handle use it so that handle rules can evolve.
	FieldUsernamePresent = "username_present"

	FieldEmail      = "email"
	FieldPassword   = "password"
	FieldIdentifier = "identifier"

	// FieldPasswordPresent only requires a non-empty password.
	FieldPasswordPresent = "password_present"

	FieldCode    = "code"
	FieldContent = "content"
	FieldTone    = "tone"
	FieldLength  = "length"
	FieldCount   = "count"
)

const (
	minUsernameLength = 2
	maxUsernameLength = 20
	minPasswordLength = 6
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

var (
	allowedTones = []models.Tone{
		models.ToneFriendly,
		models.ToneFormal,
		models.ToneCasual,
		models.ToneProfessional,
		models.ToneFunny,
	}
	allowedLengths = []models.Length{
		models.LengthShort,
		models.LengthMedium,
		models.LengthLong,
	}
)

// RequestValidator validates the inbound request models.
type RequestValidator struct{}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate implements [Validator]. Without fields, every rule of the
// request type is applied.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(*value, fields...)

	case models.VerifyRequest:
		return v.validateVerifyRequest(value, fields...)
	case *models.VerifyRequest:
		return v.validateVerifyRequest(*value, fields...)

	case models.ResendRequest:
		return v.validateResendRequest(value, fields...)
	case *models.ResendRequest:
		return v.validateResendRequest(*value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(*value, fields...)

	case models.SendMessageRequest:
		return v.validateSendMessageRequest(value, fields...)
	case *models.SendMessageRequest:
		return v.validateSendMessageRequest(*value, fields...)

	case models.SuggestRequest:
		return v.validateSuggestRequest(value, fields...)
	case *models.SuggestRequest:
		return v.validateSuggestRequest(*value, fields...)

	case models.UsernameQuery:
		return v.validateUsernameQuery(value, fields...)
	case *models.UsernameQuery:
		return v.validateUsernameQuery(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) checkFields(fields, defaults []string, check func(field string) error) error {
	if len(fields) == 0 {
		fields = defaults
	}
	for _, f := range fields {
		if err := check(f); err != nil {
			return err
		}
	}
	return nil
}

// validateCommon checks the handle and password fields shared by several
// requests.
func (v *RequestValidator) validateCommon(field, username, password string) error {
	switch field {
	case FieldUsername:
		return validateUsername(username)
	case FieldUsernamePresent:
		if strings.TrimSpace(username) == "" {
			return ErrEmptyUsername
		}
	case FieldPassword:
		if utf8.RuneCountInString(password) < minPasswordLength {
			return ErrPasswordTooShort
		}
	case FieldPasswordPresent:
		if password == "" {
			return ErrEmptyPassword
		}
	default:
		return ErrUnknownField
	}
	return nil
}

func (v *RequestValidator) validateRegisterRequest(req models.RegisterRequest, fields ...string) error {
	return v.checkFields(fields, []string{FieldUsername, FieldEmail, FieldPassword}, func(f string) error {
		if f == FieldEmail {
			return validateEmail(req.Email)
		}
		return v.validateCommon(f, req.Username, req.Password)
	})
}

func (v *RequestValidator) validateVerifyRequest(req models.VerifyRequest, fields ...string) error {
	return v.checkFields(fields, []string{FieldUsernamePresent, FieldCode}, func(f string) error {
		if f == FieldCode {
			if strings.TrimSpace(req.Code) == "" {
				return ErrEmptyCode
			}
			return nil
		}
		return v.validateCommon(f, req.Username, "")
	})
}

func (v *RequestValidator) validateResendRequest(req models.ResendRequest, fields ...string) error {
	return v.checkFields(fields, []string{FieldUsernamePresent}, func(f string) error {
		return v.validateCommon(f, req.Username, "")
	})
}

func (v *RequestValidator) validateUsernameQuery(query models.UsernameQuery, fields ...string) error {
	return v.checkFields(fields, []string{FieldUsername}, func(f string) error {
		return v.validateCommon(f, query.Username, "")
	})
}

func (v *RequestValidator) validateLoginRequest(req models.LoginRequest, fields ...string) error {
	return v.checkFields(fields, []string{FieldIdentifier, FieldPasswordPresent}, func(f string) error {
		if f == FieldIdentifier {
			if strings.TrimSpace(req.Identifier) == "" {
				return ErrEmptyIdentifier
			}
			return nil
		}
		return v.validateCommon(f, "", req.Password)
	})
}

func (v *RequestValidator) validateSendMessageRequest(req models.SendMessageRequest, fields ...string) error {
	return v.checkFields(fields, []string{FieldUsernamePresent, FieldContent}, func(f string) error {
		if f == FieldContent {
			return validateContent(req.Content)
		}
		return v.validateCommon(f, req.Username, "")
	})
}

func (v *RequestValidator) validateSuggestRequest(req models.SuggestRequest, fields ...string) error {
	return v.checkFields(fields, []string{FieldUsernamePresent, FieldTone, FieldLength, FieldCount}, func(f string) error {
		switch f {
		case FieldTone:
			if req.Tone != "" && !slices.Contains(allowedTones, req.Tone) {
				return ErrInvalidTone
			}
		case FieldLength:
			if req.Length != "" && !slices.Contains(allowedLengths, req.Length) {
				return ErrInvalidLength
			}
		case FieldCount:
			// zero means "not set" and is replaced by the default count
			if req.Count != 0 && (req.Count < models.MinSuggestionCount || req.Count > models.MaxSuggestionCount) {
				return ErrInvalidCount
			}
		default:
			return v.validateCommon(f, req.Username, "")
		}
		return nil
	})
}

func validateUsername(username string) error {
	if username == "" {
		return ErrEmptyUsername
	}
	if n := utf8.RuneCountInString(username); n < minUsernameLength || n > maxUsernameLength {
		return ErrInvalidUsernameSize
	}
	if !usernamePattern.MatchString(username) {
		return ErrInvalidUsernameChar
	}
	return nil
}

// validateEmail accepts a bare address only, without a display name.
func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(addr.Address, ".") {
		return ErrInvalidEmail
	}
	return nil
}

// validateContent counts characters as Unicode code points.
func validateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}
	if utf8.RuneCountInString(content) > models.MaxMessageLength {
		return ErrContentTooLong
	}
	return nil
}
