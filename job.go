package seqscrape

import "strings"

// Job describes one scraping run.
type Job struct {
	// ExampleURL is any URL of the series; its numeric token is replaced
	// by the indexes 1..Count.
	ExampleURL string

	// Count is the number of pages to fetch. Must be positive.
	Count int

	// Selector locates the article body. Defaults to DefaultSelector.
	Selector string

	// SegmentScope limits URL templating to the last path segment.
	SegmentScope bool
}

// Validate returns an EINVALID error if the job cannot be run.
func (j *Job) Validate() error {
	if strings.TrimSpace(j.ExampleURL) == "" {
		return Errorf(EINVALID, "example URL required")
	}
	if j.Count <= 0 {
		return Errorf(EINVALID, "range must be a positive number")
	}
	return nil
}

// Pattern derives the URL pattern for the job.
func (j *Job) Pattern() (*Pattern, error) {
	if j.SegmentScope {
		return DerivePattern(j.ExampleURL, WithSegmentScope())
	}
	return DerivePattern(j.ExampleURL)
}

// Progress reports the outcome of one index of a run.
type Progress struct {
	Index int
	Total int
	URL   string

	// Article is set when the page produced content.
	Article *Article

	// Err is set when the page was skipped: EUNAVAILABLE for transport
	// failures, ENOTFOUND when no content could be extracted.
	Err error
}

// ProgressFunc is called after every index is processed.
type ProgressFunc func(Progress)
