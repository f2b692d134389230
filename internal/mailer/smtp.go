package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/MKhiriev/mystery-message/internal/config"
	"github.com/MKhiriev/mystery-message/internal/logger"
)

const smtpTimeout = 30 * time.Second

type smtpMailer struct {
	client *mail.Client
	from   string
	logger *logger.Logger
}

// NewSMTPMailer returns a [Mailer] that relays through cfg.SMTP.
// Authentication is enabled only when both username and password are set.
func NewSMTPMailer(cfg config.Mail, log *logger.Logger) (Mailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.SMTP.Port),
		mail.WithTimeout(smtpTimeout),
		mail.WithTLSPolicy(tlsPolicy(cfg.SMTP.TLSPolicy)),
	}
	if cfg.SMTP.Username != "" && cfg.SMTP.Password != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthLogin),
			mail.WithUsername(cfg.SMTP.Username),
			mail.WithPassword(cfg.SMTP.Password),
		)
	}

	client, err := mail.NewClient(cfg.SMTP.Host, opts...)
	if err != nil {
		log.Err(err).Str("func", "NewSMTPMailer").Msg("failed to create mail client")
		return nil, fmt.Errorf("error creating smtp client: %w", err)
	}

	log.Info().Str("func", "NewSMTPMailer").
		Str("host", cfg.SMTP.Host).
		Int("port", cfg.SMTP.Port).
		Msg("smtp mailer created")

	return &smtpMailer{client: client, from: cfg.From, logger: log}, nil
}

func tlsPolicy(policy string) mail.TLSPolicy {
	switch policy {
	case "none":
		return mail.NoTLS
	case "opportunistic":
		return mail.TLSOpportunistic
	default:
		return mail.TLSMandatory
	}
}

func (m *smtpMailer) SendVerificationEmail(ctx context.Context, email VerificationEmail) error {
	log := logger.FromContext(ctx)

	msg, err := m.buildMessage(email)
	if err != nil {
		return err
	}

	if err = m.client.DialAndSendWithContext(ctx, msg); err != nil {
		log.Err(err).Str("func", "*smtpMailer.SendVerificationEmail").Msg("failed to send email")
		return fmt.Errorf("%w: %w", ErrSendingEmail, err)
	}

	log.Info().Str("func", "*smtpMailer.SendVerificationEmail").Str("to", email.To).Msg("verification email sent")
	return nil
}

func (m *smtpMailer) buildMessage(email VerificationEmail) (*mail.Msg, error) {
	rendered, err := render(email)
	if err != nil {
		return nil, fmt.Errorf("%w: rendering template: %w", ErrSendingEmail, err)
	}

	msg := mail.NewMsg()
	if err = msg.From(m.from); err != nil {
		return nil, fmt.Errorf("%w: invalid from address: %w", ErrSendingEmail, err)
	}
	if err = msg.To(email.To); err != nil {
		return nil, fmt.Errorf("%w: invalid recipient: %w", ErrSendingEmail, err)
	}
	msg.Subject(rendered.Subject)
	msg.SetBodyString(mail.TypeTextPlain, rendered.Text)
	msg.AddAlternativeString(mail.TypeTextHTML, rendered.HTML)

	return msg, nil
}
