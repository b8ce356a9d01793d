package score

import (
	"math"
	"strings"
)

const (
	sensationalBoost = 0.45
	financialBoost   = 0.35
	authorityBoost   = 0.20
)

// MisinformationScorer scores suspicion-term density with flat boosts for
// sensational, financial and authority-plus-sensational patterns
type MisinformationScorer struct {
	terms []string
}

// NewMisinformationScorer creates a scorer. With no arguments the default
// suspicion lexicon is used.
func NewMisinformationScorer(terms ...string) *MisinformationScorer {
	if len(terms) == 0 {
		terms = suspicionTerms
	}

	return &MisinformationScorer{terms: terms}
}

// Score returns a misinformation score in [0,1]. Empty text scores 0.
func (s *MisinformationScorer) Score(text string) float64 {
	if text == "" {
		return 0
	}

	lower := strings.ToLower(text)

	// Substring occurrences, not token matches, so fused tokens count too
	count := 0
	for _, term := range s.terms {
		count += strings.Count(lower, term)
	}

	var boost float64
	sensational := containsAny(lower, sensationalMarkers)

	if sensational {
		boost += sensationalBoost
	}
	if containsAny(lower, financialMarkers) {
		boost += financialBoost
	}
	if sensational && containsAny(lower, authorityTerms) {
		boost += authorityBoost
	}

	// Density: occurrences per whitespace token. Clearer than length
	// log-normalization for short, high-signal texts.
	tokenCount := len(strings.Fields(text))
	if tokenCount == 0 {
		tokenCount = 1
	}
	base := float64(count) / float64(tokenCount)

	return clamp01(base + boost)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
