package normalize

import (
	"regexp"
	"strings"
	"unicode"
)

var urlPattern = regexp.MustCompile(`https?://\S+|www\.\S+`)

// Normalize cleans text for analysis: lowercase, strip URLs, strip
// punctuation while preserving letters and digits in any script, collapse
// whitespace. Empty input yields empty output, and the function is
// idempotent.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	text = strings.ToLower(text)
	text = urlPattern.ReplaceAllString(text, "")

	var b strings.Builder
	b.Grow(len(text))

	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsSpace(r):
			b.WriteRune(r)
		case unicode.Is(unicode.Pc, r):
			// Connector marks become a space so adjacent tokens don't fuse
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
