package seqscrape

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms an HTML fragment (typically Extraction.RootHTML)
	// into Markdown.
	Convert(html string) (string, error)
}
