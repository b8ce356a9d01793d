package model

import "time"

// Report is the complete triage artifact for a single claim
type Report struct {
	Input      string    `json:"input"`      // Raw submitted text
	Normalized string    `json:"normalized"` // English analysis text after guarding, translation and normalization
	Language   string    `json:"language"`   // Detected ISO 639-1 code or "unknown"
	AnalyzedAt time.Time `json:"analyzed_at"`

	Scores      ScorePair `json:"scores"`      // Boosted heuristic scores
	Preliminary Verdict   `json:"preliminary"` // Preliminary prediction from the boosted thresholds

	FactChecks []FactCheckResult `json:"fact_checks,omitempty"` // Simulated external evidence, rule order

	Confidence int     `json:"confidence"` // Fused confidence, 0-100
	Verdict    Verdict `json:"verdict"`    // Final verdict

	Explanation Explanation `json:"explanation"`
}
