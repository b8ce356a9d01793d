// Package language detects the input language and routes non-English text
// through the translation collaborator. Routing is total: detection and
// translation failures degrade to safe defaults, never errors.
package language

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ppiankov/truthlens/internal/translate"
)

// Unknown is the sentinel language code when detection fails
const Unknown = "unknown"

// marathiClues distinguishes Marathi from Hindi once Devanagari script is
// found; any hit prefers "mr", otherwise Devanagari defaults to "hi"
var marathiClues = []string{
	"आहे",
	"नाही",
	"लोकना",
	"म्हणजे",
	"मला",
	"तुम्हाला",
}

// Router owns language detection and the translation handle
type Router struct {
	detector   Detector
	translator translate.Translator
	logger     zerolog.Logger
}

// NewRouter creates a new language router. A nil detector disables the
// statistical fallback; the Devanagari heuristic always applies.
func NewRouter(detector Detector, translator translate.Translator, logger zerolog.Logger) *Router {
	return &Router{
		detector:   detector,
		translator: translator,
		logger:     logger,
	}
}

// Route detects the language of text and translates it to English when the
// detected language is a known, non-English code. On any collaborator
// failure the original text is returned together with the language code
// determined so far. Route never fails, for any input.
func (r *Router) Route(ctx context.Context, text string) (string, string) {
	lang := r.detect(text)

	if lang == "en" || lang == Unknown {
		return text, lang
	}

	if r.translator == nil {
		return text, lang
	}

	translated, err := r.translator.Translate(ctx, text, lang, "en")
	if err != nil || translated == "" {
		r.logger.Debug().Err(err).Str("lang", lang).Msg("translation unavailable, keeping original text")
		return text, lang
	}

	return translated, lang
}

// detect determines the language code: Devanagari script heuristic first,
// statistical detector as fallback, Unknown when neither applies
func (r *Router) detect(text string) string {
	if text == "" {
		return Unknown
	}

	if containsDevanagari(text) {
		lower := strings.ToLower(text)
		for _, clue := range marathiClues {
			if strings.Contains(lower, clue) {
				return "mr"
			}
		}
		return "hi"
	}

	if r.detector == nil {
		return Unknown
	}

	code, err := r.detector.Detect(text)
	if err != nil || code == "" {
		return Unknown
	}

	return code
}

// containsDevanagari reports whether text has any character in the
// Devanagari block (covers Hindi, Marathi, Nepali)
func containsDevanagari(text string) bool {
	for _, r := range text {
		if r >= 0x0900 && r <= 0x097F {
			return true
		}
	}
	return false
}
