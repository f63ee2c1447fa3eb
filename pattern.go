package seqscrape

import (
	"iter"
	"regexp"
	"strconv"
	"strings"
)

// Placeholder marks the position of the index in Pattern.Template.
const Placeholder = "{}"

var digitRun = regexp.MustCompile(`[0-9]+`)

// Pattern is a URL template with one numeric slot, derived from an example
// URL such as https://example.com/article/42.html.
type Pattern struct {
	prefix string
	suffix string

	// Token is the digit run found in the example URL's last path segment.
	Token string
}

// PatternOption configures DerivePattern.
type PatternOption func(*patternOptions)

type patternOptions struct {
	segmentScope bool
}

// WithSegmentScope makes DerivePattern replace the digit run inside the
// last path segment instead of the first occurrence of the same digits
// anywhere in the URL.
func WithSegmentScope() PatternOption {
	return func(o *patternOptions) {
		o.segmentScope = true
	}
}

// DerivePattern finds the first run of digits in the last "/"-separated
// segment of exampleURL and turns it into the numeric slot.
//
// By default the slot replaces the first occurrence of that digit string in
// the whole URL. When the same digits appear earlier (a year in the path, a
// port, a host name) the earlier occurrence is replaced, not the one in the
// last segment. Use WithSegmentScope to avoid this.
//
// Returns EINVALID if the last segment contains no digits.
func DerivePattern(exampleURL string, opts ...PatternOption) (*Pattern, error) {
	var o patternOptions
	for _, opt := range opts {
		opt(&o)
	}

	segStart := strings.LastIndex(exampleURL, "/") + 1
	segment := exampleURL[segStart:]

	loc := digitRun.FindStringIndex(segment)
	if loc == nil {
		return nil, Errorf(EINVALID, "no numeric token found in %q", exampleURL)
	}
	token := segment[loc[0]:loc[1]]

	start := strings.Index(exampleURL, token)
	if o.segmentScope {
		start = segStart + loc[0]
	}

	return &Pattern{
		prefix: exampleURL[:start],
		suffix: exampleURL[start+len(token):],
		Token:  token,
	}, nil
}

// URLFor returns the URL for index i, written in decimal without padding.
func (p *Pattern) URLFor(i int) string {
	return p.prefix + strconv.Itoa(i) + p.suffix
}

// Template returns the pattern with Placeholder in place of the index.
func (p *Pattern) Template() string {
	return p.prefix + Placeholder + p.suffix
}

// URLs yields (i, URLFor(i)) for i from 1 to n. URLs are built lazily.
func (p *Pattern) URLs(n int) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i := 1; i <= n; i++ {
			if !yield(i, p.URLFor(i)) {
				return
			}
		}
	}
}
