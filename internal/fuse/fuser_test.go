package fuse

import (
	"testing"

	"github.com/ppiankov/truthlens/internal/model"
)

func result(v model.ExternalVerdict) model.FactCheckResult {
	return model.FactCheckResult{Verdict: v, URL: "https://example.com", Title: "check"}
}

func TestFuse_NoResults(t *testing.T) {
	tests := []struct {
		name       string
		misinfo    float64
		confidence int
		verdict    model.Verdict
	}{
		{name: "zero score", misinfo: 0, confidence: 25, verdict: model.VerdictReal},
		{name: "mid score", misinfo: 0.5, confidence: 50, verdict: model.VerdictUnclear},
		{name: "at high cutoff", misinfo: 0.70, confidence: 60, verdict: model.VerdictUnclear},
		{name: "above high cutoff", misinfo: 0.85, confidence: 70, verdict: model.VerdictFake},
		{name: "maximum score", misinfo: 1.0, confidence: 80, verdict: model.VerdictFake},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fuse(tt.misinfo, nil)
			if got.Confidence != tt.confidence {
				t.Errorf("expected confidence %d, got %d", tt.confidence, got.Confidence)
			}
			if got.Verdict != tt.verdict {
				t.Errorf("expected verdict %q, got %q", tt.verdict, got.Verdict)
			}
		})
	}
}

func TestFuse_VerdictSets(t *testing.T) {
	tests := []struct {
		name       string
		results    []model.FactCheckResult
		confidence int
		verdict    model.Verdict
	}{
		{
			name:       "unanimous false",
			results:    []model.FactCheckResult{result(model.ExternalFalse), result(model.ExternalFalse)},
			confidence: 95,
			verdict:    model.VerdictFake,
		},
		{
			name:       "unanimous true",
			results:    []model.FactCheckResult{result(model.ExternalTrue)},
			confidence: 95,
			verdict:    model.VerdictReal,
		},
		{
			name:       "mixed only",
			results:    []model.FactCheckResult{result(model.ExternalMixed)},
			confidence: 60,
			verdict:    model.VerdictUnclear,
		},
		{
			name:       "conflicting true and false",
			results:    []model.FactCheckResult{result(model.ExternalTrue), result(model.ExternalFalse)},
			confidence: 60,
			verdict:    model.VerdictUnclear,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fuse(0.5, tt.results)
			if got.Confidence != tt.confidence {
				t.Errorf("expected confidence %d, got %d", tt.confidence, got.Confidence)
			}
			if got.Verdict != tt.verdict {
				t.Errorf("expected verdict %q, got %q", tt.verdict, got.Verdict)
			}
		})
	}
}

func TestFuse_FalseAndMixedUsesWeightedBlend(t *testing.T) {
	results := []model.FactCheckResult{result(model.ExternalFalse), result(model.ExternalMixed)}

	// external = (1/2)*50 = 25, internal = 0.4*50 = 20, final = 45.
	got := Fuse(0.4, results)
	if got.Confidence != 45 {
		t.Errorf("expected confidence 45, got %d", got.Confidence)
	}
	if got.Verdict != model.VerdictUnclear {
		t.Errorf("expected verdict %q, got %q", model.VerdictUnclear, got.Verdict)
	}

	// internal = 0.9*50 = 45, final = 70, crossing the Fake threshold.
	got = Fuse(0.9, results)
	if got.Confidence != 70 {
		t.Errorf("expected confidence 70, got %d", got.Confidence)
	}
	if got.Verdict != model.VerdictFake {
		t.Errorf("expected verdict %q, got %q", model.VerdictFake, got.Verdict)
	}
}

func TestFuse_ConfidenceBounds(t *testing.T) {
	scores := []float64{-0.5, 0, 0.33, 0.66, 0.71, 1.0, 2.0}
	resultSets := [][]model.FactCheckResult{
		nil,
		{result(model.ExternalFalse)},
		{result(model.ExternalFalse), result(model.ExternalMixed)},
		{result(model.ExternalTrue), result(model.ExternalFalse), result(model.ExternalMixed)},
	}

	for _, score := range scores {
		for _, results := range resultSets {
			got := Fuse(score, results)
			if got.Confidence < 0 || got.Confidence > 100 {
				t.Errorf("Fuse(%f, %d results): confidence %d out of range", score, len(results), got.Confidence)
			}
			switch got.Verdict {
			case model.VerdictFake, model.VerdictReal, model.VerdictUnclear:
			default:
				t.Errorf("Fuse(%f, %d results): unexpected verdict %q", score, len(results), got.Verdict)
			}
		}
	}
}

func TestFuse_Deterministic(t *testing.T) {
	results := []model.FactCheckResult{result(model.ExternalFalse), result(model.ExternalMixed)}
	first := Fuse(0.6, results)
	second := Fuse(0.6, results)
	if first != second {
		t.Errorf("results differ: %v vs %v", first, second)
	}
}
