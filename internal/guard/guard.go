// Package guard protects safety-critical tokens from being mangled by
// translation. Digit runs and a fixed phrase catalog are swapped for inert
// placeholder keys before the text crosses the translation boundary and
// swapped back afterwards.
package guard

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Span associates a placeholder key with the original text it replaced.
// Spans are restored by index, in insertion order, so repeated occurrences
// of the same phrase round-trip independently.
type Span struct {
	Key      string
	Original string
}

var digitRun = regexp.MustCompile(`[0-9]{3,}`)

// criticalPhrases must survive translation verbatim. Scanned longest-first
// so "withdraw money" wins over "withdraw".
var criticalPhrases = []string{
	"indefinitely",
	"closed",
	"government",
	"lockdown",
	"schools",
	"withdraw",
	"withdraw money",
	"urgent",
	"urgently",
	"emergency",
}

// Guard replaces digit runs of length >= 3 and every critical-phrase
// occurrence with unique placeholder keys. Keys are checked against the
// current text, so a key can never collide with user content.
func Guard(text string) (string, []Span) {
	if text == "" {
		return "", nil
	}

	var spans []Span
	text, spans = protect(text, digitRun, "NUM", spans)

	phrases := make([]string, len(criticalPhrases))
	copy(phrases, criticalPhrases)
	sort.SliceStable(phrases, func(i, j int) bool {
		return len(phrases[i]) > len(phrases[j])
	})

	for _, phrase := range phrases {
		re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(phrase))
		text, spans = protect(text, re, "TOK", spans)
	}

	return text, spans
}

// Restore replaces every placeholder key with its original text exactly
// once, in span order.
func Restore(text string, spans []Span) string {
	for _, s := range spans {
		text = strings.Replace(text, s.Key, s.Original, 1)
	}

	return text
}

// protect rewrites every match of re with a fresh key, scanning left to
// right and resuming after each inserted key so placeholder contents are
// never re-matched.
func protect(text string, re *regexp.Regexp, class string, spans []Span) (string, []Span) {
	pos := 0

	for pos < len(text) {
		loc := re.FindStringIndex(text[pos:])
		if loc == nil {
			break
		}

		start, end := pos+loc[0], pos+loc[1]
		key := newKey(text, class, len(spans))
		spans = append(spans, Span{Key: key, Original: text[start:end]})
		text = text[:start] + key + text[end:]
		pos = start + len(key)
	}

	return text, spans
}

// newKey returns a marker guaranteed absent from text. The salt loop only
// runs when the input itself happens to contain a would-be key.
func newKey(text, class string, n int) string {
	key := fmt.Sprintf("__%s%d__", class, n)
	for salt := 1; strings.Contains(text, key); salt++ {
		key = fmt.Sprintf("__%s%dx%d__", class, n, salt)
	}

	return key
}
