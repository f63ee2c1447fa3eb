// Package htmltomarkdown renders article roots as Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/seqscrape"
)

// Ensure Converter implements seqscrape.Converter at compile time.
var _ seqscrape.Converter = (*Converter)(nil)

// Converter renders the HTML of an article root as CommonMark.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(
				commonmark.WithBulletListMarker("-"),
				commonmark.WithHeadingStyle(commonmark.HeadingStyleATX),
			),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert renders html as Markdown. Returns EINVALID for blank input and
// ENOTFOUND when the markup holds no text.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", seqscrape.Errorf(seqscrape.EINVALID, "empty HTML input")
	}

	md, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	md = strings.TrimSpace(md)
	if md == "" {
		return "", seqscrape.Errorf(seqscrape.ENOTFOUND, "no text in HTML")
	}
	return md, nil
}
