package seqscrape

// DefaultSelector is the selector tried first when none is given.
const DefaultSelector = "#articlebody"

// MaxHints caps the number of discovered selectors reported to the user.
const MaxHints = 5

// RootSource records how the article container was located.
type RootSource string

// Root sources, in the order an Extractor tries them.
const (
	RootNone       RootSource = ""
	RootSelector   RootSource = "selector"
	RootDiscovered RootSource = "discovered"
	RootLocated    RootSource = "located"
)

// Extraction is the result of extracting one page. The zero value means no
// container was found.
type Extraction struct {
	// Source tells whether the root came from the requested selector,
	// the discovery scan or a RootLocator.
	Source RootSource

	// Selector matched the root. For RootLocated it names the locator.
	Selector string

	// Candidates holds every selector found by the discovery scan, in
	// document order, ids before classes. Empty when the requested
	// selector matched.
	Candidates []string

	// PlainText is true when no structural tags were found and the blocks
	// come from splitting the root's text on blank lines.
	PlainText bool

	Blocks []Block

	// RootHTML is the outer HTML of the chosen root.
	RootHTML string
}

// Found reports whether a root element was chosen.
func (e *Extraction) Found() bool {
	return e != nil && e.Source != RootNone
}

// Content renders the blocks as simplified markup. An empty string means no
// usable content was found.
func (e *Extraction) Content() string {
	if e == nil {
		return ""
	}
	return FormatBlocks(e.Blocks)
}

// Hints returns at most MaxHints discovered selectors.
func (e *Extraction) Hints() []string {
	if e == nil {
		return nil
	}
	if len(e.Candidates) > MaxHints {
		return e.Candidates[:MaxHints]
	}
	return e.Candidates
}

// Extractor locates the article body in an HTML page and normalizes it into
// content blocks.
type Extractor interface {
	// Extract never fails: malformed markup or a missing container yield
	// an Extraction whose Content is empty. The input is not modified.
	Extract(html string, selector string) *Extraction
}

// RootLocator finds main content in pages where neither the selector nor the
// discovery scan matched anything.
type RootLocator interface {
	// Locate returns the main content of rawHTML as an HTML fragment.
	Locate(rawHTML string) (string, error)

	// Name returns the locator's identifier (e.g., "trafilatura").
	Name() string
}
