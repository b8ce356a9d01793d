package score

import (
	"math"
	"strings"

	"github.com/ppiankov/truthlens/internal/model"
)

const (
	misinfoBoostCeiling     = 0.70
	misinfoBoostAmount      = 0.50
	sensationalBoostCeiling = 0.20
	sensationalBoostAmount  = 0.20
)

// Booster scores text with both heuristic scorers and raises the scores
// when crisis keywords are present, so unverified public-safety claims
// cannot score zero
type Booster struct {
	misinfo     *MisinformationScorer
	sensational *SensationalismScorer
}

// NewBooster creates a booster over the default scorers
func NewBooster() *Booster {
	return &Booster{
		misinfo:     NewMisinformationScorer(),
		sensational: NewSensationalismScorer(),
	}
}

// Analyze scores text, applies the crisis boost, and returns the boosted
// pair together with the boosted preliminary verdict
func (b *Booster) Analyze(text string) (model.ScorePair, model.Verdict) {
	pair := model.ScorePair{
		Misinformation: b.misinfo.Score(text),
		Sensationalism: b.sensational.Score(text),
	}

	pair = Boost(pair, text)

	return pair, BoostedVerdict(pair)
}

// Boost raises scores when any crisis keyword is present. Scores are never
// lowered, and scores already at or above the ceiling are left alone.
func Boost(pair model.ScorePair, text string) model.ScorePair {
	if !containsAny(strings.ToLower(text), crisisKeywords) {
		return pair
	}

	if pair.Misinformation < misinfoBoostCeiling {
		pair.Misinformation = math.Min(1, pair.Misinformation+misinfoBoostAmount)
	}
	if pair.Sensationalism < sensationalBoostCeiling {
		pair.Sensationalism = math.Min(1, pair.Sensationalism+sensationalBoostAmount)
	}

	return pair
}
