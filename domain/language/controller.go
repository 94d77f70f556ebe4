package language

import (
	"github.com/altchain/landing-api/config/router"
	"github.com/altchain/landing-api/internal/lang"
	"golang.org/x/text/language"
)

type SuggestionResponse struct {
	Suggestion string   `json:"suggestion,omitempty"`
	Current    string   `json:"current"`
	Supported  []string `json:"supported"`
}

// NewLanguageController serves the UI-language suggestion: the browser
// sends its Accept-Language preferences plus the active language and
// resolved timezone, and gets back at most one suggested switch.
func NewLanguageController() *router.RESTController {
	return router.NewRESTController(
		"LanguageController",
		"/api/language",
		func(rs *router.RouterService, c *router.RESTController) {
			rs.AddGetHandler(c, nil, "", suggestLanguageHandler())
		},
	)
}

func suggestLanguageHandler() router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		current := lang.Resolve(ctx.DefaultQuery("current", lang.Default))

		signals := lang.Signals{
			Locales:  parseAcceptLanguage(ctx.GetHeader("Accept-Language")),
			Current:  current,
			Timezone: ctx.Query("tz"),
		}

		response := SuggestionResponse{
			Current:   current,
			Supported: lang.Supported,
		}

		if suggestion, ok := lang.Suggest(signals); ok {
			response.Suggestion = suggestion
		}

		return router.OKResult(response, "Language suggestion computed")
	}
}

// parseAcceptLanguage keeps the header's preference order; a malformed
// header simply yields no locale signals.
func parseAcceptLanguage(header string) []string {
	if header == "" {
		return nil
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return nil
	}

	locales := make([]string, 0, len(tags))
	for _, tag := range tags {
		locales = append(locales, tag.String())
	}
	return locales
}
