package score

import "strings"

// SensationalismScorer measures the strength of sensational language as the
// fraction of catalog terms present in the text
type SensationalismScorer struct {
	catalog []string
}

// NewSensationalismScorer creates a scorer over the default term catalog
func NewSensationalismScorer() *SensationalismScorer {
	return &SensationalismScorer{catalog: sensationalCatalog}
}

// Score returns a sensationalism score in [0,1]. Each catalog term counts
// at most once regardless of repetition. Empty text scores 0.
func (s *SensationalismScorer) Score(text string) float64 {
	if text == "" {
		return 0
	}

	lower := strings.ToLower(text)

	hits := 0
	for _, term := range s.catalog {
		if strings.Contains(lower, term) {
			hits++
		}
	}

	return clamp01(float64(hits) / float64(len(s.catalog)))
}
