// Package trafilatura locates the main content of a page with go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/seqscrape"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Locator implements seqscrape.RootLocator at compile time.
var _ seqscrape.RootLocator = (*Locator)(nil)

// Locator wraps go-trafilatura to find the main content of a page when no
// selector or discovered element matches.
type Locator struct{}

// NewLocator creates a new Locator.
func NewLocator() *Locator {
	return &Locator{}
}

// Name returns the locator name.
func (l *Locator) Name() string {
	return "trafilatura"
}

// Locate returns the HTML of the main content node.
func (l *Locator) Locate(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", seqscrape.Errorf(seqscrape.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), trafilatura.Options{
		EnableFallback: true,
	})
	if err != nil {
		return "", err
	}
	if result == nil || result.ContentNode == nil {
		return "", seqscrape.Errorf(seqscrape.ENOTFOUND, "no main content found")
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, result.ContentNode); err != nil {
		return "", err
	}
	return buf.String(), nil
}
