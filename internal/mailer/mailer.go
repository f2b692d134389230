// Package mailer delivers verification codes by email.
//
// A [Mailer] is selected by the mail driver in configuration: "smtp" talks to
// an SMTP relay through go-mail, "resend" posts to the Resend HTTP API and
// "log" only writes the code to the server log.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/mystery-message/internal/config"
	"github.com/MKhiriev/mystery-message/internal/logger"
)

//go:generate mockgen -source=mailer.go -destination=../mock/mock_mailer.go -package=mock

// Mailer sends transactional email.
type Mailer interface {
	// SendVerificationEmail delivers a one-time code to email.To. A non-nil
	// error means the recipient cannot be assumed to have received it.
	SendVerificationEmail(ctx context.Context, email VerificationEmail) error
}

// VerificationEmail is the data rendered into a verification message.
type VerificationEmail struct {
	To        string
	Username  string
	Code      string
	ExpiresIn time.Duration
}

var (
	// ErrUnknownDriver is returned by [NewMailer] for an unsupported driver.
	ErrUnknownDriver = errors.New("unknown mail driver")

	// ErrSendingEmail wraps every transport failure.
	ErrSendingEmail = errors.New("error sending email")
)

// NewMailer builds the [Mailer] selected by cfg.Driver.
func NewMailer(cfg config.Mail, log *logger.Logger) (Mailer, error) {
	switch cfg.Driver {
	case config.MailDriverSMTP:
		return NewSMTPMailer(cfg, log)
	case config.MailDriverResend:
		return NewResendMailer(cfg, log), nil
	case config.MailDriverLog:
		return NewLogMailer(log), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}
