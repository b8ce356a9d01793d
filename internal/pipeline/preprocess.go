package pipeline

import (
	"context"

	"github.com/ppiankov/truthlens/internal/guard"
	"github.com/ppiankov/truthlens/internal/language"
	"github.com/ppiankov/truthlens/internal/normalize"
)

// Preprocess prepares raw input for scoring: markup is stripped, critical
// tokens are guarded with placeholders across translation, the text is
// routed through language detection and translation, placeholders are
// restored and the result is normalized. Returns the English analysis
// text and the detected language code.
func (p *Pipeline) Preprocess(ctx context.Context, raw string) (string, string) {
	if raw == "" {
		return "", language.Unknown
	}

	text := normalize.StripMarkup(raw)

	guarded, spans := guard.Guard(text)
	translated, lang := p.router.Route(ctx, guarded)
	restored := guard.Restore(translated, spans)

	return normalize.Normalize(restored), lang
}
