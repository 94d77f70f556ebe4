package lang

import (
	"strings"

	"golang.org/x/text/language"
)

// Default is the fallback language for unrecognized or absent values.
const Default = "en"

// Supported lists the locale codes the landing page has translated
// email templates for, in suggestion-precedence order.
var Supported = []string{"en", "es", "fr", "zh", "ru"}

func IsSupported(code string) bool {
	for _, s := range Supported {
		if s == code {
			return true
		}
	}
	return false
}

// Normalize reduces an arbitrary locale string ("es-MX", "zh_Hant_TW")
// to its base language code, or "" when it cannot be parsed.
func Normalize(locale string) string {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return ""
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return ""
	}

	base, _ := tag.Base()
	return base.String()
}

// Resolve maps a submitted language value onto the supported set.
// Unrecognized values fall back to the default; this is a pure
// default-substitution, never an error.
func Resolve(raw string) string {
	code := Normalize(raw)
	if IsSupported(code) {
		return code
	}
	return Default
}
