// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
)

// validate checks that the merged [StructuredConfig] can be used at startup.
// All failures are reported together.
func (cfg *StructuredConfig) validate() error {
	return errors.Join(
		cfg.App.validate(),
		cfg.Storage.validate(),
		cfg.Server.validate(),
		cfg.Mail.validate(),
		cfg.Verification.validate(),
		cfg.Suggestions.validate(),
	)
}

func (a App) validate() error {
	switch {
	case a.TokenSignKey == "":
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	case a.TokenIssuer == "":
		return fmt.Errorf("%w: token issuer is required", ErrInvalidAppConfigs)
	case a.TokenDuration <= 0:
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	case a.PasswordHashCost < 4 || a.PasswordHashCost > 31:
		return fmt.Errorf("%w: password hash cost must be in range 4-31", ErrInvalidAppConfigs)
	}
	return nil
}

func (s Storage) validate() error {
	switch s.Driver {
	case StorageDriverMemory:
		return nil
	case StorageDriverPostgres, StorageDriverSQLite:
		if s.DB.DSN == "" {
			return fmt.Errorf("%w: dsn is required for %s", ErrInvalidStorageConfigs, s.Driver)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, s.Driver)
	}
}

func (s Server) validate() error {
	if s.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs)
	}
	if s.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidServerConfigs)
	}
	return nil
}

func (m Mail) validate() error {
	switch m.Driver {
	case MailDriverLog:
		return nil
	case MailDriverSMTP:
		if m.SMTP.Host == "" || m.From == "" {
			return fmt.Errorf("%w: smtp host and from address are required", ErrInvalidMailConfigs)
		}
		if m.SMTP.Port < 1 || m.SMTP.Port > 65535 {
			return fmt.Errorf("%w: smtp port must be in range 1-65535", ErrInvalidMailConfigs)
		}
		return nil
	case MailDriverResend:
		if m.Resend.APIKey == "" || m.From == "" {
			return fmt.Errorf("%w: resend api key and from address are required", ErrInvalidMailConfigs)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidMailConfigs, m.Driver)
	}
}

func (v Verification) validate() error {
	if v.CodeTTL <= 0 {
		return fmt.Errorf("%w: code ttl must be positive", ErrInvalidVerificationConfigs)
	}
	return nil
}

func (s Suggestions) validate() error {
	if s.ProviderTimeout <= 0 {
		return fmt.Errorf("%w: provider timeout must be positive", ErrInvalidSuggestionConfigs)
	}
	return nil
}
