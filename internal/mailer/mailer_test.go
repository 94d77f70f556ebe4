package mailer

import (
	"context"
	"testing"

	"github.com/altchain/landing-api/internal/log"
	"github.com/stretchr/testify/assert"
)

func TestMessageValidate(t *testing.T) {
	valid := Message{
		To:      "test@example.com",
		From:    "no-reply@altchain.app",
		Subject: "Hello",
		Text:    "body",
	}

	t.Run("complete message passes", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("html-only body passes", func(t *testing.T) {
		msg := valid
		msg.Text = ""
		msg.HTML = "<p>body</p>"
		assert.NoError(t, msg.Validate())
	})

	t.Run("missing recipient fails", func(t *testing.T) {
		msg := valid
		msg.To = "  "
		assert.ErrorIs(t, msg.Validate(), ErrEmptyMessage)
	})

	t.Run("missing sender fails", func(t *testing.T) {
		msg := valid
		msg.From = ""
		assert.ErrorIs(t, msg.Validate(), ErrEmptyMessage)
	})

	t.Run("missing subject fails", func(t *testing.T) {
		msg := valid
		msg.Subject = ""
		assert.ErrorIs(t, msg.Validate(), ErrEmptyMessage)
	})

	t.Run("empty body fails", func(t *testing.T) {
		msg := valid
		msg.Text = ""
		msg.HTML = ""
		assert.ErrorIs(t, msg.Validate(), ErrEmptyMessage)
	})
}

func TestLogMailer(t *testing.T) {
	logger := log.NewLoggerWithJSONOutput()
	m := NewLogMailer(logger)

	assert.False(t, m.Configured())

	t.Run("accepts a valid message without a provider", func(t *testing.T) {
		err := m.Send(context.Background(), Message{
			To:      "test@example.com",
			From:    "no-reply@altchain.app",
			Subject: "Hello",
			Text:    "body",
		})
		assert.NoError(t, err)
	})

	t.Run("still validates the message", func(t *testing.T) {
		err := m.Send(context.Background(), Message{To: "test@example.com"})
		assert.ErrorIs(t, err, ErrEmptyMessage)
	})
}

func TestNewSendGridMailer(t *testing.T) {
	logger := log.NewLoggerWithJSONOutput()

	t.Run("empty key reports not configured", func(t *testing.T) {
		m, err := NewSendGridMailer("", logger)
		assert.Nil(t, m)
		assert.ErrorIs(t, err, ErrNotConfigured)
	})

	t.Run("key yields a configured mailer", func(t *testing.T) {
		m, err := NewSendGridMailer("SG.test-key", logger)
		assert.NoError(t, err)
		assert.True(t, m.Configured())
	})
}
