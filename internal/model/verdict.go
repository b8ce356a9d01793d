package model

// Verdict is the three-way outcome of claim triage
type Verdict string

const (
	VerdictFake    Verdict = "Fake"    // Claim contradicted or highly suspicious
	VerdictReal    Verdict = "Real"    // Claim supported or unremarkable
	VerdictUnclear Verdict = "Unclear" // Evidence missing or contradictory
)

// ExternalVerdict is the rating attached to a simulated external fact-check
type ExternalVerdict string

const (
	ExternalFalse ExternalVerdict = "False"
	ExternalTrue  ExternalVerdict = "True"
	ExternalMixed ExternalVerdict = "Mixed"
)

// FactCheckResult is one mocked external fact-check hit
type FactCheckResult struct {
	Verdict ExternalVerdict `json:"verdict"`
	URL     string          `json:"url"`
	Title   string          `json:"title"`
}

// ScorePair holds the two independent heuristic scores, each in [0,1]
type ScorePair struct {
	Misinformation float64 `json:"misinformation"`
	Sensationalism float64 `json:"sensationalism"`
}

// ConfidenceVerdict is the fused final outcome
type ConfidenceVerdict struct {
	Confidence int     `json:"confidence"` // 0-100
	Verdict    Verdict `json:"verdict"`
}

// Explanation holds the summary in every supported language.
// Hindi and Marathi fall back to the English text when translation
// is unavailable, so every field is always populated.
type Explanation struct {
	English string `json:"en"`
	Hindi   string `json:"hi"`
	Marathi string `json:"mr"`
}
