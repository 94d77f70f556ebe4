package mailer

import (
	"context"
	"errors"
	"strings"
)

var (
	// ErrNotConfigured signals a missing provider credential. The
	// process entry point decides whether that is fatal; request
	// handlers surface it as an operator-actionable failure.
	ErrNotConfigured = errors.New("mailer: provider credential is not configured")

	// ErrEmptyMessage is returned before the provider is contacted
	// when a message is missing an address, a subject, or any body.
	ErrEmptyMessage = errors.New("mailer: message is missing required fields")

	// ErrSendFailed wraps provider-side delivery failures.
	ErrSendFailed = errors.New("mailer: provider failed to send message")
)

// Message is one outbound transactional email. At least one of Text
// and HTML must be set.
type Message struct {
	To      string
	From    string
	Subject string
	Text    string
	HTML    string
}

func (m Message) Validate() error {
	if strings.TrimSpace(m.To) == "" ||
		strings.TrimSpace(m.From) == "" ||
		strings.TrimSpace(m.Subject) == "" {
		return ErrEmptyMessage
	}
	if m.Text == "" && m.HTML == "" {
		return ErrEmptyMessage
	}
	return nil
}

// Mailer hands a message to a delivery provider. Implementations must
// not retry: a transient provider failure is terminal for the request
// that triggered the send.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
