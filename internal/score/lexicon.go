package score

import "strings"

// suspicionTerms are counted as substrings so joined/compound tokens
// (e.g. "newsmodi") are still caught
var suspicionTerms = []string{
	"false",
	"hoax",
	"conspiracy",
	"hidden",
	"coverup",
	"fake",
	"exposed",
	"lying",

	// financial/hoax indicators
	"withdrawn",
	"bank",
	"account",
	"whatsapp",
	"scam",
	"modi",
	"important",

	// political / election / urgency / health terms
	"election",
	"protest",
	"results",
	"tomorrow",
	"immediately",
	"fraud",
	"vote",
	"scandal",
	"corrupt",
	"who",
	"cure",
	"virus",
	"pandemic",
	"confirmed",
	"officially",
	"health",
}

// sensationalMarkers indicate attention-grabbing framing; any hit adds a
// flat boost to the misinformation score
var sensationalMarkers = []string{
	"urgent",
	"alert",
	"shocking",
	"you won't believe",
	"just confirmed",
	"has just confirmed",
	"breaking",
	"important news",
	"important",
}

// financialMarkers increase suspicion of money-related scams
var financialMarkers = []string{
	"withdrawn",
	"bank",
	"account",
	"5000",
	"rupees",
	"whatsapp",
	"transfer",
}

// authorityTerms paired with a sensational marker push suspicion further
var authorityTerms = []string{
	"who",
	"government",
	"modi",
}

// sensationalCatalog is the fixed term list for the sensationalism scorer;
// each term contributes at most once
var sensationalCatalog = []string{
	"shocking",
	"urgent",
	"breaking",
	"unbelievable",
	"horrific",
	"shocker",
	"alert",
	"exclusive",
	"must read",
	"you won't believe",
	"hidden",
	"hiding",
	"important",
	"important news",
	"withdrawn",
	"bank",
	"whatsapp",
	"modi",

	// urgency/action terms
	"protest",
	"immediately",
	"fake news alert",
	"crisis",
	"emergency",
}

// crisisKeywords force an upward-only score adjustment so high-risk,
// unverified public-safety claims cannot sit at zero
var crisisKeywords = []string{
	"schools closed",
	"lockdown",
	"government mandate",
	"withdraw money",
	"urgently",
	"emergency",
	"closed indefinitely",

	// health-related crisis keywords
	"who",
	"pandemic",
	"virus cure",
	"virus",
	"health",

	// political/election/health crisis terms
	"election results fake",
	"protest immediately",
	"voting fraud",
	"who cure",
	"pandemic virus",
}

// containsAny reports whether lower contains any of the terms as a substring
func containsAny(lower string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
