// Package goquery implements seqscrape.Extractor on top of goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/seqscrape"
)

// Ensure Extractor implements seqscrape.Extractor at compile time.
var _ seqscrape.Extractor = (*Extractor)(nil)

// structuralTags are the elements visited by the structural pass.
const structuralTags = "h1, h2, h3, h4, h5, h6, p, ul, ol, blockquote"

// Extractor finds the article container of a page and converts its
// headings, paragraphs, quotes and lists into content blocks.
//
// The container is the first element matching the requested selector. When
// nothing matches, the first element found by DiscoverCandidates is used,
// and after that the optional RootLocator.
type Extractor struct {
	locator seqscrape.RootLocator
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLocator sets a RootLocator consulted when neither the selector nor
// the discovery scan finds a container.
func WithLocator(l seqscrape.RootLocator) Option {
	return func(e *Extractor) {
		e.locator = l
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract implements seqscrape.Extractor.
func (e *Extractor) Extract(rawHTML string, selector string) *seqscrape.Extraction {
	result := &seqscrape.Extraction{}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return result
	}

	root := e.findRoot(doc, rawHTML, selector, result)
	if root == nil {
		return result
	}

	content, err := ExtractSelection(root)
	if err != nil {
		return &seqscrape.Extraction{}
	}
	result.RootHTML = content.RootHTML
	result.Blocks = content.Blocks
	result.PlainText = content.PlainText
	return result
}

// ExtractSelection converts an already selected container into blocks. It
// fails when the container cannot be rendered back to HTML.
func ExtractSelection(root *goquery.Selection) (*seqscrape.Extraction, error) {
	rootHTML, err := goquery.OuterHtml(root)
	if err != nil {
		return nil, seqscrape.Errorf(seqscrape.EINTERNAL, "render container: %v", err)
	}

	result := &seqscrape.Extraction{RootHTML: rootHTML}
	result.Blocks = StructuralBlocks(root)
	if len(result.Blocks) == 0 {
		result.PlainText = true
		result.Blocks = PlainTextBlocks(root)
	}
	return result, nil
}

// findRoot selects the container and records how it was found.
// Returns nil when no container exists.
func (e *Extractor) findRoot(doc *goquery.Document, rawHTML, selector string, result *seqscrape.Extraction) *goquery.Selection {
	if strings.TrimSpace(selector) != "" {
		// Invalid selectors match nothing.
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			result.Source = seqscrape.RootSelector
			result.Selector = selector
			return sel
		}
	}

	candidates := DiscoverCandidates(doc)
	if len(candidates) > 0 {
		result.Candidates = make([]string, len(candidates))
		for i, c := range candidates {
			result.Candidates[i] = c.Selector
		}
		result.Source = seqscrape.RootDiscovered
		result.Selector = candidates[0].Selector
		return candidates[0].Selection
	}

	if e.locator == nil {
		return nil
	}
	content, err := e.locator.Locate(rawHTML)
	if err != nil || strings.TrimSpace(content) == "" {
		return nil
	}
	located, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil
	}
	result.Source = seqscrape.RootLocated
	result.Selector = e.locator.Name()
	return located.Find("body").First()
}

// StructuralBlocks converts the headings, paragraphs, quotes and lists below
// root into blocks, in document order. Empty paragraphs are skipped; list
// items are emitted through their enclosing list.
func StructuralBlocks(root *goquery.Selection) []seqscrape.Block {
	var blocks []seqscrape.Block

	root.Find(structuralTags).Each(func(_ int, sel *goquery.Selection) {
		switch tag := goquery.NodeName(sel); tag {
		case "h1", "h2", "h3", "h4", "h5", "h6":
			blocks = append(blocks, seqscrape.Heading(int(tag[1]-'0'), visibleText(sel)))
		case "p":
			if text := visibleText(sel); text != "" {
				blocks = append(blocks, seqscrape.Paragraph(text))
			}
		case "blockquote":
			blocks = append(blocks, seqscrape.Quote(visibleText(sel)))
		case "ul", "ol":
			ordered := tag == "ol"
			sel.Find("li").Each(func(i int, li *goquery.Selection) {
				if ordered {
					blocks = append(blocks, seqscrape.NumberedItem(i+1, visibleText(li)))
				} else {
					blocks = append(blocks, seqscrape.BulletItem(visibleText(li)))
				}
			})
		}
	})

	return blocks
}

// PlainTextBlocks splits the visible text of root on blank lines and
// returns one paragraph per non-empty segment.
func PlainTextBlocks(root *goquery.Selection) []seqscrape.Block {
	segments := textSegments(root)
	if len(segments) == 0 {
		return nil
	}
	blocks := make([]seqscrape.Block, len(segments))
	for i, s := range segments {
		blocks[i] = seqscrape.Paragraph(s)
	}
	return blocks
}
