// Package readability locates the main content of a page with go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/seqscrape"
	"github.com/go-shiori/go-readability"
)

// Ensure Locator implements seqscrape.RootLocator at compile time.
var _ seqscrape.RootLocator = (*Locator)(nil)

// Locator wraps go-readability to find the main content of a page.
type Locator struct{}

// NewLocator creates a new Locator.
func NewLocator() *Locator {
	return &Locator{}
}

// Name returns the locator name.
func (l *Locator) Name() string {
	return "readability"
}

// Locate returns the HTML of the readable article body.
func (l *Locator) Locate(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", seqscrape.Errorf(seqscrape.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(article.Content) == "" {
		return "", seqscrape.Errorf(seqscrape.ENOTFOUND, "no readable content found")
	}
	return article.Content, nil
}
