package lang

import "strings"

// Signals carries the browser-derived inputs to the suggestion
// heuristic: preferred locales in order, the language the UI is
// currently rendered in, and an optional IANA timezone identifier.
type Signals struct {
	Locales  []string
	Current  string
	Timezone string
}

// localeWeight is the numerator of the positional weight: a locale at
// index i contributes localeWeight/(i+1) to its language's score.
const localeWeight = 5.0

// suggestionThreshold is the minimum accumulated score for a
// suggestion to be emitted at all.
const suggestionThreshold = 0.5

type timezoneBonus struct {
	fragment string
	code     string
	bonus    float64
}

// Rough region-to-language hints. Fragments are matched as substrings
// of the IANA zone name, so "America" also covers "America/Lima".
var timezoneBonuses = []timezoneBonus{
	{"Madrid", "es", 0.6},
	{"Lisbon", "es", 0.6},
	{"Paris", "fr", 0.6},
	{"Brussels", "fr", 0.6},
	{"Moscow", "ru", 0.6},
	{"Shanghai", "zh", 0.6},
	{"Hong_Kong", "zh", 0.6},
	{"Taipei", "zh", 0.6},
	{"America", "en", 0.5},
	{"America", "es", 0.3},
}

// Suggest scores the supported languages against the given signals and
// returns at most one suggestion distinct from the current language.
// Ties resolve to the language listed first in Supported.
func Suggest(sig Signals) (string, bool) {
	current := Resolve(sig.Current)
	scores := make(map[string]float64, len(Supported))

	for i, locale := range sig.Locales {
		code := Normalize(locale)
		if !IsSupported(code) || code == current {
			continue
		}
		scores[code] += localeWeight / float64(i+1)
	}

	if tz := strings.TrimSpace(sig.Timezone); tz != "" {
		for _, tb := range timezoneBonuses {
			if strings.Contains(tz, tb.fragment) {
				scores[tb.code] += tb.bonus
			}
		}
	}

	best := ""
	bestScore := 0.0
	for _, code := range Supported {
		if code == current {
			continue
		}
		if scores[code] > bestScore {
			best = code
			bestScore = scores[code]
		}
	}

	if bestScore < suggestionThreshold {
		return "", false
	}
	return best, true
}
