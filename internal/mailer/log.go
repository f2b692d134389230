package mailer

import (
	"context"

	"github.com/MKhiriev/mystery-message/internal/logger"
)

type logMailer struct {
	logger *logger.Logger
}

// NewLogMailer returns a [Mailer] that never sends anything and logs the
// code instead. Intended for local development.
func NewLogMailer(log *logger.Logger) Mailer {
	return &logMailer{logger: log}
}

func (m *logMailer) SendVerificationEmail(_ context.Context, email VerificationEmail) error {
	m.logger.Warn().
		Str("func", "*logMailer.SendVerificationEmail").
		Str("to", email.To).
		Str("username", email.Username).
		Str("code", email.Code).
		Dur("expires_in", email.ExpiresIn).
		Msg("verification email not sent, log mail driver in use")
	return nil
}
