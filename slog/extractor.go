package slog

import (
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/seqscrape"
)

// Ensure LoggingExtractor implements seqscrape.Extractor.
var _ seqscrape.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor and reports how the article container
// was found. The log output is advisory; results are passed through as is.
type LoggingExtractor struct {
	next   seqscrape.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next seqscrape.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs diagnostics.
func (e *LoggingExtractor) Extract(html string, selector string) *seqscrape.Extraction {
	begin := time.Now()
	ext := e.next.Extract(html, selector)

	if ext.Source != seqscrape.RootSelector && len(ext.Hints()) > 0 {
		e.logger.Info("selector not found, try one of these selectors",
			"selector", selector,
			"candidates", ext.Hints(),
		)
	}

	switch ext.Source {
	case seqscrape.RootNone:
		e.logger.Warn("no article content found",
			"selector", selector,
			"duration", time.Since(begin),
		)
		return ext
	case seqscrape.RootDiscovered:
		e.logger.Info("using alternative selector", "selector", ext.Selector)
	case seqscrape.RootLocated:
		e.logger.Info("using content locator", "locator", ext.Selector)
	}

	content := ext.Content()
	if content == "" {
		e.logger.Warn("article container is empty", "selector", ext.Selector)
		return ext
	}

	e.logger.Debug("extract",
		"selector", ext.Selector,
		"blocks", len(ext.Blocks),
		"chars", utf8.RuneCountInString(content),
		"plain_text", ext.PlainText,
		"duration", time.Since(begin),
	)
	return ext
}
