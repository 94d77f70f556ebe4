package config

import (
	"errors"
	"os"

	"github.com/altchain/landing-api/internal/log"
	"github.com/altchain/landing-api/internal/mailer"
)

// MailerConfig establishes the sender identity and the operator
// addresses for outbound email. The provider key is optional outside
// production so the API can run against the logging fallback.
type MailerConfig struct {
	SendGridAPIKey string
	SenderEmail    string
	AdminEmail     string
	ContactEmail   string
}

func NewMailerConfig() *MailerConfig {
	return &MailerConfig{
		SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
		SenderEmail:    GetValueFromEnvironmentVariable("SENDER_EMAIL", "no-reply@altchain.app"),
		AdminEmail:     os.Getenv("ADMIN_EMAIL"),
		ContactEmail:   os.Getenv("CONTACT_EMAIL"),
	}
}

func (mc *MailerConfig) IsConfigured() bool {
	return mc.SendGridAPIKey != ""
}

// NewMailer resolves the missing-credential policy in one place: a
// SendGrid client when the key is present, the logging fallback in
// dev-like environments, and a hard error in production.
func (mc *MailerConfig) NewMailer(logger *log.Logger) (mailer.Mailer, error) {
	m, err := mailer.NewSendGridMailer(mc.SendGridAPIKey, logger)
	if err == nil {
		logger.Info("SendGrid mailer configured", "sender", mc.SenderEmail)
		return m, nil
	}

	if !errors.Is(err, mailer.ErrNotConfigured) {
		return nil, err
	}

	if isProductionEnv() {
		logger.Error("SENDGRID_API_KEY is required in production")
		return nil, err
	}

	logger.Warn("SENDGRID_API_KEY not set; outbound email will be logged, not delivered")
	return mailer.NewLogMailer(logger), nil
}

func isProductionEnv() bool {
	switch GetAppEnv() {
	case "prod", "production":
		return true
	default:
		return false
	}
}
