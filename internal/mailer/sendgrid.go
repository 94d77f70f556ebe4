package mailer

import (
	"context"
	"fmt"
	"strings"

	"github.com/altchain/landing-api/internal/log"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridMailer delivers messages through the SendGrid v3 API.
type SendGridMailer struct {
	client *sendgrid.Client
	logger *log.Logger
}

// NewSendGridMailer returns ErrNotConfigured when the API key is
// absent so the caller can pick its own fallback policy.
func NewSendGridMailer(apiKey string, logger *log.Logger) (*SendGridMailer, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrNotConfigured
	}

	return &SendGridMailer{
		client: sendgrid.NewSendClient(apiKey),
		logger: logger,
	}, nil
}

// Configured reports that a real provider backs this mailer.
func (m *SendGridMailer) Configured() bool { return true }

func (m *SendGridMailer) Send(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	email := mail.NewV3Mail()
	email.SetFrom(mail.NewEmail("", msg.From))
	email.Subject = msg.Subject

	personalization := mail.NewPersonalization()
	personalization.AddTos(mail.NewEmail("", msg.To))
	email.AddPersonalizations(personalization)

	if msg.Text != "" {
		email.AddContent(mail.NewContent("text/plain", msg.Text))
	}
	if msg.HTML != "" {
		email.AddContent(mail.NewContent("text/html", msg.HTML))
	}

	resp, err := m.client.SendWithContext(ctx, email)
	if err != nil {
		m.logger.Error("SendGrid request failed", "to", msg.To, "subject", msg.Subject, "error", err)
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	if resp.StatusCode >= 400 {
		m.logger.Error("SendGrid rejected message", "to", msg.To, "subject", msg.Subject, "status", resp.StatusCode)
		return fmt.Errorf("%w: status %d", ErrSendFailed, resp.StatusCode)
	}

	m.logger.Info("Email sent", "to", msg.To, "subject", msg.Subject)
	return nil
}
