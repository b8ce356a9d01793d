// Package explain renders an English summary of a verification outcome
// and its Hindi and Marathi translations.
package explain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ppiankov/truthlens/internal/model"
	"github.com/ppiankov/truthlens/internal/translate"
)

// Generator builds explanation summaries. The translator may be nil or
// disabled, in which case every language falls back to English.
type Generator struct {
	translator translate.Translator
	logger     zerolog.Logger
}

// NewGenerator returns a Generator using the given translator.
func NewGenerator(translator translate.Translator, logger zerolog.Logger) *Generator {
	return &Generator{translator: translator, logger: logger}
}

// Summarize produces an English summary for the verdict and evidence,
// citing up to two fact-check titles.
func (g *Generator) Summarize(results []model.FactCheckResult, verdict model.Verdict) string {
	if len(results) == 0 {
		return "No external fact-checks were found for this claim. " +
			"The analysis relies on internal signals which may indicate risk but external " +
			"corroboration is unavailable."
	}

	hasMixed := false
	titles := make([]string, 0, len(results))
	for _, r := range results {
		if r.Verdict == model.ExternalMixed {
			hasMixed = true
		}
		title := r.Title
		if title == "" {
			title = "source"
		}
		titles = append(titles, title)
	}
	cites := strings.Join(titles[:min(2, len(titles))], ", ")

	switch {
	case verdict == model.VerdictUnclear && hasMixed:
		return fmt.Sprintf("Verification attempts show mixed evidence. Some sources (%s) provide partial or "+
			"conflicting information. While some safety data or context is available, the specific "+
			"claim lacks strong official confirmation, making the overall verdict unclear.", cites)
	case verdict == model.VerdictFake:
		return fmt.Sprintf("External fact-checks (e.g., %s) contradict the claim. Available evidence indicates "+
			"the claim is false or unsupported. Proceed with caution and rely on verified sources.", cites)
	case verdict == model.VerdictReal:
		return fmt.Sprintf("External fact-checks (e.g., %s) support the claim or provide corroborating evidence. "+
			"The claim appears to be supported by available sources.", cites)
	}
	return "The verification result is unclear based on available data."
}

// Multilingual translates the English summary into Hindi and Marathi.
// Each target language is requested independently; any failure falls
// back to the English text for that language only.
func (g *Generator) Multilingual(ctx context.Context, english string) model.Explanation {
	out := model.Explanation{English: english, Hindi: english, Marathi: english}
	if g.translator == nil {
		return out
	}

	if hi, err := g.translator.Translate(ctx, english, "en", "hi"); err == nil && hi != "" {
		out.Hindi = hi
	} else if err != nil && !errors.Is(err, translate.ErrDisabled) {
		g.logger.Debug().Err(err).Str("lang", "hi").Msg("summary translation failed, using English")
	}

	if mr, err := g.translator.Translate(ctx, english, "en", "mr"); err == nil && mr != "" {
		out.Marathi = mr
	} else if err != nil && !errors.Is(err, translate.ErrDisabled) {
		g.logger.Debug().Err(err).Str("lang", "mr").Msg("summary translation failed, using English")
	}

	return out
}
