package mailer

import (
	"context"

	"github.com/altchain/landing-api/internal/log"
)

// LogMailer records would-be emails instead of delivering them. It is
// the development fallback when no provider credential is configured;
// production refuses to start instead of using it.
type LogMailer struct {
	logger *log.Logger
}

func NewLogMailer(logger *log.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

// Configured reports that no real provider backs this mailer.
func (m *LogMailer) Configured() bool { return false }

func (m *LogMailer) Send(_ context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	m.logger.Info("Email dispatch skipped (no provider configured)",
		"to", msg.To,
		"from", msg.From,
		"subject", msg.Subject,
		"has_text", msg.Text != "",
		"has_html", msg.HTML != "",
	)
	return nil
}
