package contact

import (
	"context"
	"errors"
	"strings"

	"github.com/altchain/landing-api/internal/log"
	"github.com/altchain/landing-api/internal/mailer"
	apperrors "github.com/altchain/landing-api/pkg/errors"
)

// EmailConfig carries the sender identity and the operator address
// contact messages are relayed to.
type EmailConfig struct {
	Sender  string
	Contact string
}

type ContactService interface {
	// SendMessage relays a contact form submission to the operator
	// address. Unlike the waitlist flow there is no persisted fallback,
	// so a delivery failure is surfaced to the caller.
	SendMessage(ctx context.Context, req *SendMessageRequest) error
}

type contactService struct {
	logger *log.Logger
	mailer mailer.Mailer
	email  EmailConfig
}

func NewContactService(logger *log.Logger, m mailer.Mailer, email EmailConfig) ContactService {
	return &contactService{logger: logger, mailer: m, email: email}
}

func (s *contactService) SendMessage(ctx context.Context, req *SendMessageRequest) error {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if req == nil {
		logger.Error("SendMessage received empty request")
		return apperrors.NewInvalidRequestError("request cannot be nil", nil)
	}

	name := strings.TrimSpace(req.Name)
	message := strings.TrimSpace(req.Message)
	if name == "" || message == "" {
		logger.Error("SendMessage received blank fields", "email", req.Email)
		return apperrors.NewInvalidRequestError("name and message cannot be blank", nil)
	}

	if s.email.Contact == "" {
		logger.Error("Contact address is not configured")
		return apperrors.NewNotConfiguredError("contact form is not configured", nil)
	}

	subject, text, html, err := mailer.RenderContactRelay(name, req.Email, message)
	if err != nil {
		logger.Error("Failed to render contact relay email", "error", err)
		return apperrors.NewInternalServerError("unable to process contact message", err)
	}

	msg := mailer.Message{
		To:      s.email.Contact,
		From:    s.email.Sender,
		Subject: subject,
		Text:    text,
		HTML:    html,
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		logger.Error("Failed to relay contact message", "from", req.Email, "stage", "send", "error", err)
		if errors.Is(err, mailer.ErrNotConfigured) {
			return apperrors.NewNotConfiguredError("email provider is not configured", err)
		}
		return apperrors.NewDeliveryError("unable to send contact message", err)
	}

	logger.Info("Contact message relayed", "from", req.Email)
	return nil
}
