package util

import (
	"strings"

	"golang.org/x/net/html"
)

// LooksLikeHTML reports whether plan text was pasted as markup rather than
// plain prose.
func LooksLikeHTML(text string) bool {
	lower := strings.ToLower(text)
	for _, marker := range []string{"<html", "<body", "<p>", "<div", "<br"} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// VisibleText extracts the visible text from HTML content, skipping
// scripts and styles. Returns the input unchanged if it fails to parse.
func VisibleText(htmlContent string) string {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return htmlContent
	}

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

	walk(doc)
	return strings.TrimSpace(buf.String())
}
