package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggest(t *testing.T) {
	tests := []struct {
		name       string
		signals    Signals
		suggestion string
		ok         bool
	}{
		{
			name:       "top browser locale beats current language",
			signals:    Signals{Locales: []string{"es-MX", "en-US"}, Current: "en"},
			suggestion: "es",
			ok:         true,
		},
		{
			name:       "timezone bonus rescues a locale-less visitor",
			signals:    Signals{Current: "en", Timezone: "Europe/Paris"},
			suggestion: "fr",
			ok:         true,
		},
		{
			name:    "weak signal alone stays below the threshold",
			signals: Signals{Current: "en", Timezone: "America/Lima"},
			// es gets only the 0.3 regional hint, en is current
			ok: false,
		},
		{
			name:    "current language is never suggested",
			signals: Signals{Locales: []string{"en-US", "en-GB"}, Current: "en"},
			ok:      false,
		},
		{
			name:       "current in a regional form still blocks its base",
			signals:    Signals{Locales: []string{"es-MX", "fr-FR"}, Current: "es-ES"},
			suggestion: "fr",
			ok:         true,
		},
		{
			name:    "unsupported locales contribute nothing",
			signals: Signals{Locales: []string{"de-DE", "pl-PL"}, Current: "en"},
			ok:      false,
		},
		{
			name:       "positional weight favors the earlier locale",
			signals:    Signals{Locales: []string{"ru-RU", "zh-CN"}, Current: "en"},
			suggestion: "ru",
			ok:         true,
		},
		{
			name:       "locale and timezone scores accumulate",
			signals:    Signals{Locales: []string{"en-US", "zh-TW"}, Current: "en", Timezone: "Asia/Taipei"},
			suggestion: "zh",
			ok:         true,
		},
		{
			name:       "strong regional hint alone clears the threshold",
			signals:    Signals{Current: "fr", Timezone: "Europe/Madrid"},
			suggestion: "es",
			ok:         true,
		},
		{
			name:    "no signals no suggestion",
			signals: Signals{Current: "en"},
			ok:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Suggest(tt.signals)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.suggestion, got)
		})
	}
}
