// Package factcheck matches claims against a fixed table of known
// fact-check outcomes. It stands in for a live fact-check API and is
// fully deterministic: the same claim always yields the same results.
package factcheck

import (
	"strings"

	"github.com/ppiankov/truthlens/internal/model"
)

// rule matches a claim when the text contains the required term (if any)
// and at least one of the trigger terms.
type rule struct {
	require string
	any     []string
	result  model.FactCheckResult
}

var rules = []rule{
	{
		any: []string{"fake", "hoax", "conspiracy", "coverup", "lying", "exposed"},
		result: model.FactCheckResult{
			Verdict: model.ExternalFalse,
			URL:     "https://factcheck.google.com/claim-false",
			Title:   "Google Fact Check: Claim found to be false",
		},
	},
	{
		require: "who",
		any:     []string{"hiding", "hidden", "cure", "virus", "pandemic", "health", "confirmed"},
		result: model.FactCheckResult{
			Verdict: model.ExternalFalse,
			URL:     "https://www.who.int/news/factcheck-cure-hoax",
			Title:   "WHO Fact-check: No evidence for specific virus cure (Health Hoax)",
		},
	},
	{
		any: []string{"government", "modi", "finance", "subsidy", "bank account", "pension"},
		result: model.FactCheckResult{
			Verdict: model.ExternalFalse,
			URL:     "https://pib.gov.in/factcheck-govt-scheme-hoax",
			Title:   "PIB Fact Check: Government has not announced this scheme.",
		},
	},
	{
		any: []string{"vaccine", "vaccination"},
		result: model.FactCheckResult{
			Verdict: model.ExternalMixed,
			URL:     "https://example.com/factcheck-vaccine",
			Title:   "Fact-check: Mixed evidence on vaccine claim",
		},
	},
}

// Simulator evaluates claims against the rule table.
type Simulator struct{}

// NewSimulator returns a rule-table fact-check simulator.
func NewSimulator() *Simulator {
	return &Simulator{}
}

// Check returns the fact-check results whose rules match the claim, in
// table order. An empty claim returns nil.
func (s *Simulator) Check(text string) []model.FactCheckResult {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)

	var results []model.FactCheckResult
	for _, r := range rules {
		if r.require != "" && !strings.Contains(lower, r.require) {
			continue
		}
		for _, trigger := range r.any {
			if strings.Contains(lower, trigger) {
				results = append(results, r.result)
				break
			}
		}
	}
	return results
}
