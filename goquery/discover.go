package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	// idPattern matches ids that commonly mark an article container.
	idPattern = regexp.MustCompile(`(?i)article|content|body`)

	// classPattern matches class names that commonly mark an article container.
	classPattern = regexp.MustCompile(`(?i)article|content|body|post|text`)
)

// Candidate is an element found by the discovery scan.
type Candidate struct {
	// Selector is "#id" for id matches and ".c1.c2" (all classes of the
	// element) for class matches.
	Selector string

	Selection *goquery.Selection
}

// DiscoverCandidates scans the document for likely article containers.
// Id matches come first, then class matches, each in document order.
// Repeated selectors are reported once, at their first position.
func DiscoverCandidates(doc *goquery.Document) []Candidate {
	var byID, byClass []Candidate

	doc.Find("*").Each(func(_ int, sel *goquery.Selection) {
		if id, ok := sel.Attr("id"); ok && idPattern.MatchString(id) {
			byID = append(byID, Candidate{Selector: "#" + id, Selection: sel})
		}

		class, ok := sel.Attr("class")
		if !ok {
			return
		}
		classes := strings.Fields(class)
		for _, c := range classes {
			if classPattern.MatchString(c) {
				byClass = append(byClass, Candidate{
					Selector:  "." + strings.Join(classes, "."),
					Selection: sel,
				})
				break
			}
		}
	})

	seen := make(map[string]bool, len(byID)+len(byClass))
	candidates := make([]Candidate, 0, len(byID)+len(byClass))
	for _, c := range append(byID, byClass...) {
		if seen[c.Selector] {
			continue
		}
		seen[c.Selector] = true
		candidates = append(candidates, c)
	}
	return candidates
}
