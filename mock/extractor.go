package mock

import "github.com/fwojciec/seqscrape"

// Compile-time interface verification.
var (
	_ seqscrape.Extractor   = (*Extractor)(nil)
	_ seqscrape.RootLocator = (*RootLocator)(nil)
)

// Extractor is a mock implementation of seqscrape.Extractor.
type Extractor struct {
	ExtractFn func(html string, selector string) *seqscrape.Extraction
}

func (e *Extractor) Extract(html string, selector string) *seqscrape.Extraction {
	return e.ExtractFn(html, selector)
}

// RootLocator is a mock implementation of seqscrape.RootLocator.
type RootLocator struct {
	LocateFn func(rawHTML string) (string, error)
	NameFn   func() string
}

func (l *RootLocator) Locate(rawHTML string) (string, error) {
	return l.LocateFn(rawHTML)
}

func (l *RootLocator) Name() string {
	return l.NameFn()
}
