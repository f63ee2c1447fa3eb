package mock

import (
	"context"

	"github.com/fwojciec/seqscrape"
)

// Compile-time interface verification.
var (
	_ seqscrape.ArticleStore   = (*ArticleStore)(nil)
	_ seqscrape.ArticleService = (*ArticleService)(nil)
)

// ArticleStore is a mock implementation of seqscrape.ArticleStore.
type ArticleStore struct {
	SaveFn   func(ctx context.Context, article *seqscrape.Article) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *ArticleStore) Save(ctx context.Context, article *seqscrape.Article) error {
	return s.SaveFn(ctx, article)
}

func (s *ArticleStore) Commit() error {
	return s.CommitFn()
}

func (s *ArticleStore) Abort() error {
	return s.AbortFn()
}

// ArticleService is a mock implementation of seqscrape.ArticleService.
type ArticleService struct {
	CreateArticleFn       func(ctx context.Context, article *seqscrape.Article) error
	FindArticlesFn        func(ctx context.Context, filter seqscrape.ArticleFilter) ([]*seqscrape.Article, error)
	DeleteArticlesByRunFn func(ctx context.Context, runID string) error
}

func (s *ArticleService) CreateArticle(ctx context.Context, article *seqscrape.Article) error {
	return s.CreateArticleFn(ctx, article)
}

func (s *ArticleService) FindArticles(ctx context.Context, filter seqscrape.ArticleFilter) ([]*seqscrape.Article, error) {
	return s.FindArticlesFn(ctx, filter)
}

func (s *ArticleService) DeleteArticlesByRun(ctx context.Context, runID string) error {
	return s.DeleteArticlesByRunFn(ctx, runID)
}
