// Package mailer sends transactional email through SendGrid.
// Delivery is best-effort: callers log failures and carry on.
package mailer

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/aikombin/aikombin-server/pkg/config"
)

// Mailer sends a single plain-text email.
type Mailer interface {
	Send(toEmail, subject, textContent string) error
}

// SendgridMailer implements Mailer on the SendGrid v3 API.
type SendgridMailer struct {
	client *sendgrid.Client
	from   *mail.Email
}

// NewSendgridMailer returns a SendgridMailer, or nil when no API key is
// configured so callers can treat mail as disabled.
func NewSendgridMailer(cfg *config.Config) *SendgridMailer {
	if cfg.SendgridAPIKey == "" {
		return nil
	}
	return &SendgridMailer{
		client: sendgrid.NewSendClient(cfg.SendgridAPIKey),
		from:   mail.NewEmail("AIKombin", cfg.MailFromAddress),
	}
}

// Send delivers one email and returns an error on any non-2xx response.
func (m *SendgridMailer) Send(toEmail, subject, textContent string) error {
	message := mail.NewSingleEmail(m.from, subject, mail.NewEmail("", toEmail), textContent, "")
	resp, err := m.client.Send(message)
	if err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("send mail: sendgrid returned status %d", resp.StatusCode)
	}
	return nil
}
