package mailer

import (
	"context"
	"fmt"

	"github.com/MKhiriev/mystery-message/internal/config"
	"github.com/MKhiriev/mystery-message/internal/logger"
	"github.com/MKhiriev/mystery-message/internal/utils"
)

type resendMailer struct {
	client *utils.HTTPClient
	from   string
	logger *logger.Logger
}

type resendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	Text    string   `json:"text"`
}

type resendEmailResponse struct {
	ID string `json:"id"`
}

type resendErrorResponse struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// NewResendMailer returns a [Mailer] that posts to the Resend emails API.
func NewResendMailer(cfg config.Mail, log *logger.Logger) Mailer {
	client := utils.NewHTTPClient(cfg.Resend.BaseURL, smtpTimeout)
	client.SetAuthToken(cfg.Resend.APIKey)

	return &resendMailer{client: client, from: cfg.From, logger: log}
}

func (m *resendMailer) SendVerificationEmail(ctx context.Context, email VerificationEmail) error {
	log := logger.FromContext(ctx)

	rendered, err := render(email)
	if err != nil {
		return fmt.Errorf("%w: rendering template: %w", ErrSendingEmail, err)
	}

	var (
		result  resendEmailResponse
		failure resendErrorResponse
	)
	resp, err := m.client.R().
		SetContext(ctx).
		SetBody(resendEmailRequest{
			From:    m.from,
			To:      []string{email.To},
			Subject: rendered.Subject,
			HTML:    rendered.HTML,
			Text:    rendered.Text,
		}).
		SetResult(&result).
		SetError(&failure).
		Post("/emails")
	if err != nil {
		log.Err(err).Str("func", "*resendMailer.SendVerificationEmail").Msg("request to resend failed")
		return fmt.Errorf("%w: %w", ErrSendingEmail, err)
	}
	if resp.IsError() {
		log.Error().Str("func", "*resendMailer.SendVerificationEmail").
			Int("status", resp.StatusCode()).
			Str("error", failure.Message).
			Msg("resend rejected email")
		return fmt.Errorf("%w: resend responded %d: %s", ErrSendingEmail, resp.StatusCode(), failure.Message)
	}

	log.Info().Str("func", "*resendMailer.SendVerificationEmail").
		Str("to", email.To).
		Str("id", result.ID).
		Msg("verification email sent")
	return nil
}
