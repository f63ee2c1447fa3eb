// Package fs provides file-based storage for scraped articles.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/fwojciec/seqscrape"
)

// DefaultOutputPath is the file written when no output path is given.
const DefaultOutputPath = "scraped_articles_formatted.txt"

// Ensure FileStore implements seqscrape.ArticleStore at compile time.
var _ seqscrape.ArticleStore = (*FileStore)(nil)

// FileStore implements seqscrape.ArticleStore by writing all articles of a
// run into a single text file. Articles are held in memory until Commit,
// which writes path.tmp and renames it over path.
type FileStore struct {
	path string

	mu       sync.Mutex
	articles []*seqscrape.Article
}

// NewFileStore creates a new FileStore writing to path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the output file path.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) tempPath() string {
	return s.path + ".tmp"
}

// Save stages an article for the next Commit.
func (s *FileStore) Save(ctx context.Context, article *seqscrape.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.articles = append(s.articles, article)
	return nil
}

// Commit writes the staged articles in ascending index order, replacing any
// existing file. Returns ENOTFOUND when nothing was saved; no file is
// written in that case.
func (s *FileStore) Commit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.articles) == 0 {
		return seqscrape.Errorf(seqscrape.ENOTFOUND, "no articles to write")
	}

	articles := slices.Clone(s.articles)
	slices.SortStableFunc(articles, func(a, b *seqscrape.Article) int {
		return a.Index - b.Index
	})

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	content := seqscrape.FormatArticles(articles)
	if err := os.WriteFile(s.tempPath(), []byte(content), 0644); err != nil {
		return err
	}

	if err := os.Rename(s.tempPath(), s.path); err != nil {
		_ = os.Remove(s.tempPath())
		return err
	}

	s.articles = nil
	return nil
}

// Abort discards staged articles and any leftover temporary file.
func (s *FileStore) Abort() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.articles = nil
	if err := os.Remove(s.tempPath()); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
