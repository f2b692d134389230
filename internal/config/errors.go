package config

import (
	"errors"
	"fmt"
)

// Validation errors returned by [StructuredConfig.validate]. Each wraps
// [ErrInvalidConfig].
var (
	// ErrInvalidConfig is the root of every validation failure.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidAppConfigs indicates missing or malformed token settings.
	ErrInvalidAppConfigs = fmt.Errorf("%w: invalid app configuration", ErrInvalidConfig)
	// ErrInvalidStorageConfigs indicates an unknown driver or a missing DSN.
	ErrInvalidStorageConfigs = fmt.Errorf("%w: invalid storage configuration", ErrInvalidConfig)
	// ErrInvalidServerConfigs indicates a missing address or timeout.
	ErrInvalidServerConfigs = fmt.Errorf("%w: invalid server configuration", ErrInvalidConfig)
	// ErrInvalidMailConfigs indicates an unknown driver or incomplete credentials.
	ErrInvalidMailConfigs = fmt.Errorf("%w: invalid mail configuration", ErrInvalidConfig)
	// ErrInvalidVerificationConfigs indicates a non-positive code lifetime.
	ErrInvalidVerificationConfigs = fmt.Errorf("%w: invalid verification configuration", ErrInvalidConfig)
	// ErrInvalidSuggestionConfigs indicates a non-positive provider timeout.
	ErrInvalidSuggestionConfigs = fmt.Errorf("%w: invalid suggestions configuration", ErrInvalidConfig)
)
