package mock

import "github.com/fwojciec/seqscrape"

var _ seqscrape.Converter = (*Converter)(nil)

// Converter is a mock implementation of seqscrape.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
