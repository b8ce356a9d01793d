// Package fuse combines the internal misinformation score with external
// fact-check evidence into a final 0-100 confidence and verdict.
package fuse

import (
	"math"

	"github.com/ppiankov/truthlens/internal/model"
)

// Fuse blends the misinformation score with fact-check results.
//
// Without external results the confidence comes from the internal score
// alone: scores above 0.70 map linearly onto the 60-80 band and yield a
// Fake verdict; everything else maps onto 25-75 and the verdict follows
// the standard thresholds. With external results the verdict set decides:
// unanimous False or True evidence is near-certain, mixed or conflicting
// evidence caps confidence at 60 with an Unclear verdict, and anything
// else falls back to blending the False fraction with the internal score.
func Fuse(misinfo float64, results []model.FactCheckResult) model.ConfidenceVerdict {
	if len(results) == 0 {
		if misinfo > 0.70 {
			confidence := 60 + ((misinfo-0.70)/0.30)*20
			return model.ConfidenceVerdict{
				Confidence: clampRound(confidence),
				Verdict:    model.VerdictFake,
			}
		}
		return thresholdVerdict(misinfo*50 + 25)
	}

	var falseCount, trueCount, mixedCount int
	for _, r := range results {
		switch r.Verdict {
		case model.ExternalFalse:
			falseCount++
		case model.ExternalTrue:
			trueCount++
		case model.ExternalMixed:
			mixedCount++
		}
	}

	switch {
	case falseCount > 0 && trueCount == 0 && mixedCount == 0:
		return model.ConfidenceVerdict{Confidence: 95, Verdict: model.VerdictFake}
	case trueCount > 0 && falseCount == 0 && mixedCount == 0:
		return model.ConfidenceVerdict{Confidence: 95, Verdict: model.VerdictReal}
	case mixedCount > 0 && falseCount == 0 && trueCount == 0:
		return model.ConfidenceVerdict{Confidence: 60, Verdict: model.VerdictUnclear}
	case falseCount > 0 && trueCount > 0:
		return model.ConfidenceVerdict{Confidence: 60, Verdict: model.VerdictUnclear}
	}

	external := (float64(falseCount) / float64(len(results))) * 50
	return thresholdVerdict(misinfo*50 + external)
}

// thresholdVerdict clamps and rounds the raw confidence, then applies the
// standard verdict cutoffs: 66 and above is Fake, 33 and below is Real.
func thresholdVerdict(confidence float64) model.ConfidenceVerdict {
	final := clampRound(confidence)
	verdict := model.VerdictUnclear
	switch {
	case final >= 66:
		verdict = model.VerdictFake
	case final <= 33:
		verdict = model.VerdictReal
	}
	return model.ConfidenceVerdict{Confidence: final, Verdict: verdict}
}

func clampRound(v float64) int {
	if v < 0 {
		v = 0
	}
	if v > 100 {
		v = 100
	}
	return int(math.Round(v))
}
