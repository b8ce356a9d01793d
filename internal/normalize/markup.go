package normalize

import (
	"strings"

	"golang.org/x/net/html"
)

// StripMarkup reduces pasted HTML (article excerpts, embeds) to its visible
// text. Plain text passes through unchanged.
func StripMarkup(text string) string {
	if !strings.ContainsRune(text, '<') {
		return text
	}

	doc, err := html.Parse(strings.NewReader(text))
	if err != nil {
		return text
	}

	return strings.TrimSpace(visibleText(doc))
}

// visibleText collects text nodes, skipping scripts/styles
func visibleText(n *html.Node) string {
	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(n)
	return buf.String()
}
