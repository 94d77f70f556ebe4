package waitlist

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/altchain/landing-api/internal/lang"
	"github.com/altchain/landing-api/internal/log"
	"github.com/altchain/landing-api/internal/mailer"
	apperrors "github.com/altchain/landing-api/pkg/errors"
)

// EmailConfig carries the addresses the signup flow sends from and
// notifies. An empty Admin address disables operator notifications.
type EmailConfig struct {
	Sender string
	Admin  string
}

type WaitlistService interface {
	// JoinWaitlist validates a signup, persists it once per email, and
	// dispatches the confirmation and operator-notification emails.
	JoinWaitlist(ctx context.Context, req *JoinWaitlistRequest) (*JoinWaitlistResponse, error)
}

type waitlistService struct {
	logger     *log.Logger
	repository WaitlistRepository
	mailer     mailer.Mailer
	email      EmailConfig
}

func NewWaitlistService(logger *log.Logger, repository WaitlistRepository, m mailer.Mailer, email EmailConfig) WaitlistService {
	return &waitlistService{logger: logger, repository: repository, mailer: m, email: email}
}

func (s *waitlistService) JoinWaitlist(ctx context.Context, req *JoinWaitlistRequest) (*JoinWaitlistResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if req == nil {
		logger.Error("JoinWaitlist received empty request")
		return nil, apperrors.NewInvalidRequestError("request cannot be nil", nil)
	}

	name := strings.TrimSpace(req.Name)
	if req.Name != "" && utf8.RuneCountInString(name) < 2 {
		logger.Error("JoinWaitlist received too-short name", "email", req.Email)
		return nil, apperrors.NewInvalidRequestError("name must be at least 2 characters", nil)
	}

	langCode := lang.Resolve(req.Language)

	entry, err := s.repository.CreateEntry(ctx, ToWaitlistEntryModel(req.Email, name, langCode))

	isExisting := false
	if err != nil {
		if apperrors.GetErrorType(err) != apperrors.ErrorTypeConflict {
			logger.Error("Failed to create waitlist entry", "email", req.Email, "error", err)
			return nil, err
		}

		// The unique index on email is the duplicate-detection signal:
		// a conflicting insert means this address already signed up.
		entry, err = s.repository.FindEntryByEmail(ctx, req.Email)
		if err != nil {
			logger.Error("Failed to load existing waitlist entry", "email", req.Email, "error", err)
			return nil, err
		}
		isExisting = true
		logger.Info("Duplicate waitlist signup", "email", req.Email)
	}

	// Best-effort confirmation: a delivery failure is logged and
	// swallowed, never surfaced. Duplicate signups are re-confirmed
	// on purpose.
	s.sendConfirmation(ctx, logger, req.Email, name, langCode)

	if !isExisting {
		s.notifyAdminAsync(entry.Email, entry.Name, entry.Language)
	}

	response := ToJoinWaitlistResponse(entry, isExisting)
	return &response, nil
}

func (s *waitlistService) sendConfirmation(ctx context.Context, logger *log.Logger, email, name, langCode string) {
	subject, text, html, err := mailer.RenderConfirmation(langCode, name)
	if err != nil {
		logger.Error("Failed to render confirmation email", "email", email, "language", langCode, "error", err)
		return
	}

	msg := mailer.Message{
		To:      email,
		From:    s.email.Sender,
		Subject: subject,
		Text:    text,
		HTML:    html,
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		logger.Error("Failed to send confirmation email", "email", email, "error", err)
	}
}

// notifyAdminAsync reports a fresh signup to the operator address
// without blocking the response. The goroutine owns its own deadline
// and all failures end in the log.
func (s *waitlistService) notifyAdminAsync(email, name, langCode string) {
	if s.email.Admin == "" {
		s.logger.Info("Admin notification skipped (no admin address configured)", "email", email)
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		total, err := s.repository.CountEntries(ctx)
		if err != nil {
			s.logger.Error("Failed to count waitlist entries for notification", "error", err)
		}

		subject, text, err := mailer.RenderSignupNotice(email, name, langCode, total)
		if err != nil {
			s.logger.Error("Failed to render signup notification", "email", email, "error", err)
			return
		}

		msg := mailer.Message{
			To:      s.email.Admin,
			From:    s.email.Sender,
			Subject: subject,
			Text:    text,
		}

		if err := s.mailer.Send(ctx, msg); err != nil {
			s.logger.Error("Failed to send signup notification", "email", email, "error", err)
		}
	}()
}
