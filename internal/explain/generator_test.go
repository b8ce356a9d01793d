package explain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ppiankov/truthlens/internal/model"
	"github.com/ppiankov/truthlens/internal/translate"
)

type fakeTranslator struct {
	byLang map[string]string
	err    error
}

func (f *fakeTranslator) Name() string { return "fake" }

func (f *fakeTranslator) Translate(ctx context.Context, text, src, dst string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if out, ok := f.byLang[dst]; ok {
		return out, nil
	}
	return "", errors.New("no translation")
}

func TestSummarize_NoResults(t *testing.T) {
	g := NewGenerator(nil, zerolog.Nop())
	got := g.Summarize(nil, model.VerdictUnclear)
	if !strings.Contains(got, "No external fact-checks were found") {
		t.Errorf("unexpected summary: %q", got)
	}
}

func TestSummarize_MixedEvidence(t *testing.T) {
	g := NewGenerator(nil, zerolog.Nop())
	results := []model.FactCheckResult{
		{Verdict: model.ExternalMixed, Title: "Vaccine safety review"},
		{Verdict: model.ExternalFalse, Title: "Scheme fact-check"},
		{Verdict: model.ExternalMixed, Title: "Third source"},
	}
	got := g.Summarize(results, model.VerdictUnclear)
	if !strings.Contains(got, "mixed evidence") {
		t.Errorf("expected mixed-evidence summary, got %q", got)
	}
	if !strings.Contains(got, "Vaccine safety review, Scheme fact-check") {
		t.Errorf("expected first two titles cited, got %q", got)
	}
	if strings.Contains(got, "Third source") {
		t.Errorf("expected at most two citations, got %q", got)
	}
}

func TestSummarize_FakeVerdict(t *testing.T) {
	g := NewGenerator(nil, zerolog.Nop())
	results := []model.FactCheckResult{
		{Verdict: model.ExternalFalse, Title: "Claim found false"},
	}
	got := g.Summarize(results, model.VerdictFake)
	if !strings.Contains(got, "contradict the claim") {
		t.Errorf("expected contradiction summary, got %q", got)
	}
	if !strings.Contains(got, "Claim found false") {
		t.Errorf("expected title cited, got %q", got)
	}
}

func TestSummarize_RealVerdict(t *testing.T) {
	g := NewGenerator(nil, zerolog.Nop())
	results := []model.FactCheckResult{
		{Verdict: model.ExternalTrue, Title: "Corroborating report"},
	}
	got := g.Summarize(results, model.VerdictReal)
	if !strings.Contains(got, "support the claim") {
		t.Errorf("expected supporting summary, got %q", got)
	}
}

func TestSummarize_UnclearWithoutMixed(t *testing.T) {
	g := NewGenerator(nil, zerolog.Nop())
	results := []model.FactCheckResult{
		{Verdict: model.ExternalFalse, Title: "A"},
		{Verdict: model.ExternalTrue, Title: "B"},
	}
	got := g.Summarize(results, model.VerdictUnclear)
	if got != "The verification result is unclear based on available data." {
		t.Errorf("expected fallback summary, got %q", got)
	}
}

func TestSummarize_EmptyTitleFallsBack(t *testing.T) {
	g := NewGenerator(nil, zerolog.Nop())
	results := []model.FactCheckResult{
		{Verdict: model.ExternalFalse},
	}
	got := g.Summarize(results, model.VerdictFake)
	if !strings.Contains(got, "source") {
		t.Errorf("expected placeholder citation, got %q", got)
	}
}

func TestMultilingual_NoTranslator(t *testing.T) {
	g := NewGenerator(nil, zerolog.Nop())
	got := g.Multilingual(context.Background(), "summary text")
	if got.English != "summary text" || got.Hindi != "summary text" || got.Marathi != "summary text" {
		t.Errorf("expected English fallback everywhere, got %+v", got)
	}
}

func TestMultilingual_Translated(t *testing.T) {
	tr := &fakeTranslator{byLang: map[string]string{"hi": "hindi text", "mr": "marathi text"}}
	g := NewGenerator(tr, zerolog.Nop())
	got := g.Multilingual(context.Background(), "summary text")
	if got.English != "summary text" {
		t.Errorf("expected English preserved, got %q", got.English)
	}
	if got.Hindi != "hindi text" {
		t.Errorf("expected Hindi translation, got %q", got.Hindi)
	}
	if got.Marathi != "marathi text" {
		t.Errorf("expected Marathi translation, got %q", got.Marathi)
	}
}

func TestMultilingual_PartialFailure(t *testing.T) {
	tr := &fakeTranslator{byLang: map[string]string{"hi": "hindi text"}}
	g := NewGenerator(tr, zerolog.Nop())
	got := g.Multilingual(context.Background(), "summary text")
	if got.Hindi != "hindi text" {
		t.Errorf("expected Hindi translation, got %q", got.Hindi)
	}
	if got.Marathi != "summary text" {
		t.Errorf("expected Marathi to fall back to English, got %q", got.Marathi)
	}
}

func TestMultilingual_TranslatorError(t *testing.T) {
	tr := &fakeTranslator{err: errors.New("service down")}
	g := NewGenerator(tr, zerolog.Nop())
	got := g.Multilingual(context.Background(), "summary text")
	if got.Hindi != "summary text" || got.Marathi != "summary text" {
		t.Errorf("expected English fallback on error, got %+v", got)
	}
}

func TestMultilingual_WrappedDisabledIsQuiet(t *testing.T) {
	// Decorators wrap provider errors, so the disabled sentinel may arrive
	// inside an error chain. It must stay silent, like the bare sentinel.
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	tr := &fakeTranslator{err: fmt.Errorf("rate limit: %w", translate.ErrDisabled)}
	g := NewGenerator(tr, logger)

	got := g.Multilingual(context.Background(), "summary text")
	if got.Hindi != "summary text" || got.Marathi != "summary text" {
		t.Errorf("expected English fallback, got %+v", got)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no log output for disabled translator, got %q", buf.String())
	}
}
