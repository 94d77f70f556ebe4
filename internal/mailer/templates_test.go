package mailer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderConfirmation(t *testing.T) {
	t.Run("renders every supported language", func(t *testing.T) {
		for langCode := range confirmationContents {
			subject, text, html, err := RenderConfirmation(langCode, "Jane")
			assert.NoError(t, err, langCode)
			assert.NotEmpty(t, subject, langCode)
			assert.Contains(t, text, "Jane", langCode)
			assert.Contains(t, html, "Jane", langCode)
		}
	})

	t.Run("unknown language falls back to english", func(t *testing.T) {
		subject, _, _, err := RenderConfirmation("de", "Jane")
		assert.NoError(t, err)

		enSubject, _, _, _ := RenderConfirmation("en", "Jane")
		assert.Equal(t, enSubject, subject)
	})

	t.Run("empty name still renders a greeting", func(t *testing.T) {
		_, text, _, err := RenderConfirmation("en", "")
		assert.NoError(t, err)
		assert.NotEmpty(t, text)
	})

	t.Run("html-sensitive names are escaped in the html body", func(t *testing.T) {
		_, _, html, err := RenderConfirmation("en", "<script>x</script>")
		assert.NoError(t, err)
		assert.NotContains(t, html, "<script>")
	})
}

func TestRenderSignupNotice(t *testing.T) {
	subject, text, err := RenderSignupNotice("test@example.com", "Jane", "es", 42)
	assert.NoError(t, err)
	assert.NotEmpty(t, subject)
	assert.Contains(t, text, "test@example.com")
	assert.Contains(t, text, "42")
}

func TestRenderContactRelay(t *testing.T) {
	subject, text, html, err := RenderContactRelay("Jane", "jane@example.com", "Hello there")
	assert.NoError(t, err)
	assert.Contains(t, subject, "Jane")
	assert.Contains(t, text, "jane@example.com")
	assert.Contains(t, text, "Hello there")
	assert.Contains(t, html, "jane@example.com")

	t.Run("message markup is escaped", func(t *testing.T) {
		_, _, html, err := RenderContactRelay("Jane", "jane@example.com", "<img src=x>")
		assert.NoError(t, err)
		assert.False(t, strings.Contains(html, "<img"))
	})
}
