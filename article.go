package seqscrape

import (
	"context"
	"time"
)

// Article is the formatted text extracted from one page of a series.
type Article struct {
	ID          string    `json:"id"`
	RunID       string    `json:"runId"`
	Index       int       `json:"index"`
	SourceURL   string    `json:"sourceUrl"`
	Selector    string    `json:"selector"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.Index <= 0 {
		return Errorf(EINVALID, "article index must be positive")
	}
	if a.SourceURL == "" {
		return Errorf(EINVALID, "article source URL required")
	}
	return nil
}

// ArticleStore persists the articles of one run with atomic semantics.
// Save stages an article; Commit makes the run permanent; Abort discards
// staged articles.
type ArticleStore interface {
	Save(ctx context.Context, article *Article) error
	Commit() error
	Abort() error
}

// ArticleService represents a service for archiving scraped articles.
type ArticleService interface {
	// CreateArticle archives an article. ID, ContentHash and FetchedAt
	// are assigned when empty.
	CreateArticle(ctx context.Context, article *Article) error

	// FindArticles retrieves articles matching the filter.
	FindArticles(ctx context.Context, filter ArticleFilter) ([]*Article, error)

	// DeleteArticlesByRun removes all articles archived by a run.
	// Returns ENOTFOUND if the run has no articles.
	DeleteArticlesByRun(ctx context.Context, runID string) error
}

// ArticleFilter represents a filter for FindArticles.
type ArticleFilter struct {
	RunID     *string `json:"runId"`
	SourceURL *string `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
