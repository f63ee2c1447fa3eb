package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// blankLines separates paragraph-like segments of plain text.
var blankLines = regexp.MustCompile(`\n\s*\n`)

// hiddenElement reports whether text below n is never displayed.
func hiddenElement(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	switch n.Data {
	case "script", "style", "template", "noscript":
		return true
	}
	return false
}

// walkText calls fn for every visible text node below the nodes of sel,
// in document order.
func walkText(sel *goquery.Selection, fn func(string)) {
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			fn(n.Data)
			return
		}
		if hiddenElement(n) {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
}

// visibleText concatenates the visible text of sel and trims the result.
func visibleText(sel *goquery.Selection) string {
	var b strings.Builder
	walkText(sel, func(s string) {
		b.WriteString(s)
	})
	return strings.TrimSpace(b.String())
}

// textSegments joins the trimmed, non-empty text nodes of sel with line
// breaks and splits the result on blank lines. Empty segments are dropped.
func textSegments(sel *goquery.Selection) []string {
	var lines []string
	walkText(sel, func(s string) {
		if t := strings.TrimSpace(s); t != "" {
			lines = append(lines, t)
		}
	})
	if len(lines) == 0 {
		return nil
	}

	var segments []string
	for _, part := range blankLines.Split(strings.Join(lines, "\n"), -1) {
		if t := strings.TrimSpace(part); t != "" {
			segments = append(segments, t)
		}
	}
	return segments
}
