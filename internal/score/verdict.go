package score

import "github.com/ppiankov/truthlens/internal/model"

// PreliminaryVerdict combines raw scores into a provisional verdict using
// the plain 0.6/0.3 thresholds. This policy predates the sensitivity boost
// and is kept as a separate, callable behavior.
func PreliminaryVerdict(misinfo, sensationalism float64) model.Verdict {
	if misinfo > 0.6 && sensationalism > 0.3 {
		return model.VerdictFake
	}
	if misinfo < 0.3 && sensationalism < 0.3 {
		return model.VerdictReal
	}
	return model.VerdictUnclear
}

// BoostedVerdict applies the widened 0.8/0.2 thresholds intended for
// scores that have passed through the sensitivity boost
func BoostedVerdict(pair model.ScorePair) model.Verdict {
	if pair.Misinformation > 0.80 || pair.Sensationalism > 0.80 {
		return model.VerdictFake
	}
	if pair.Misinformation < 0.20 && pair.Sensationalism < 0.20 {
		return model.VerdictReal
	}
	return model.VerdictUnclear
}
