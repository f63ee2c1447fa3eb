package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/seqscrape"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ seqscrape.ArticleService = (*ArticleService)(nil)

// ArticleService implements seqscrape.ArticleService using SQLite.
type ArticleService struct {
	db *DB
}

// NewArticleService creates a new ArticleService.
func NewArticleService(db *DB) *ArticleService {
	return &ArticleService{db: db}
}

// CreateArticle archives an article.
func (s *ArticleService) CreateArticle(ctx context.Context, article *seqscrape.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}
	if article.RunID == "" {
		return seqscrape.Errorf(seqscrape.EINVALID, "article run ID required")
	}

	if article.ID == "" {
		article.ID = uuid.New().String()
	}
	if article.FetchedAt.IsZero() {
		article.FetchedAt = time.Now().UTC()
	}
	article.ContentHash = hashContent(article.Content)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO articles (id, run_id, position, source_url, selector, content, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, article.ID, article.RunID, article.Index, article.SourceURL, article.Selector,
		article.Content, article.ContentHash, article.FetchedAt.UTC().Format(time.RFC3339))
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return seqscrape.Errorf(seqscrape.ECONFLICT, "article %s already exists", article.ID)
	}
	return err
}

// FindArticles retrieves articles matching the filter, newest run first
// and in index order within a run.
func (s *ArticleService) FindArticles(ctx context.Context, filter seqscrape.ArticleFilter) ([]*seqscrape.Article, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, run_id, position, source_url, selector, content, content_hash, fetched_at FROM articles WHERE 1=1")

	if filter.RunID != nil {
		query.WriteString(" AND run_id = ?")
		args = append(args, *filter.RunID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	query.WriteString(` ORDER BY (SELECT MIN(r.fetched_at) FROM articles r WHERE r.run_id = articles.run_id) DESC, run_id, position ASC`)
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*seqscrape.Article
	for rows.Next() {
		var a seqscrape.Article
		var fetchedAt string

		if err := rows.Scan(&a.ID, &a.RunID, &a.Index, &a.SourceURL, &a.Selector,
			&a.Content, &a.ContentHash, &fetchedAt); err != nil {
			return nil, err
		}

		if a.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at"); err != nil {
			return nil, err
		}

		articles = append(articles, &a)
	}

	return articles, rows.Err()
}

// DeleteArticlesByRun removes all articles archived by a run.
func (s *ArticleService) DeleteArticlesByRun(ctx context.Context, runID string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM articles WHERE run_id = ?", runID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return seqscrape.Errorf(seqscrape.ENOTFOUND, "run %s not found", runID)
	}

	return nil
}
