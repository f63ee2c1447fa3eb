package seqscrape

import (
	"strconv"
	"strings"
)

// Rule is the delimiter line written above and below article headers.
var Rule = strings.Repeat("=", 50)

// FormatArticle renders one article as a delimited section:
// a rule, "ARTICLE <index>", a rule, a blank line, the content and two
// trailing newlines.
func FormatArticle(a *Article) string {
	var b strings.Builder
	b.WriteString(Rule)
	b.WriteString("\nARTICLE ")
	b.WriteString(strconv.Itoa(a.Index))
	b.WriteString("\n")
	b.WriteString(Rule)
	b.WriteString("\n\n")
	b.WriteString(a.Content)
	b.WriteString("\n\n")
	return b.String()
}

// FormatArticles concatenates the sections of all articles in the given order.
func FormatArticles(articles []*Article) string {
	var b strings.Builder
	for _, a := range articles {
		b.WriteString(FormatArticle(a))
	}
	return b.String()
}
