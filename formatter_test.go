package seqscrape_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/seqscrape"
	"github.com/stretchr/testify/assert"
)

func TestFormatArticles(t *testing.T) {
	t.Parallel()

	t.Run("returns empty string for no articles", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, seqscrape.FormatArticles(nil))
	})

	t.Run("formats single article as delimited section", func(t *testing.T) {
		t.Parallel()

		articles := []*seqscrape.Article{
			{Index: 1, Content: "# Title\n\nBody."},
		}

		got := seqscrape.FormatArticles(articles)

		rule := strings.Repeat("=", 50)
		assert.Equal(t, rule+"\nARTICLE 1\n"+rule+"\n\n# Title\n\nBody.\n\n", got)
	})

	t.Run("keeps the given order and original indexes", func(t *testing.T) {
		t.Parallel()

		articles := []*seqscrape.Article{
			{Index: 1, Content: "one"},
			{Index: 3, Content: "three"},
		}

		got := seqscrape.FormatArticles(articles)

		assert.Equal(t, 2, strings.Count(got, "\nARTICLE "))
		assert.Less(t, strings.Index(got, "ARTICLE 1"), strings.Index(got, "ARTICLE 3"))
		assert.NotContains(t, got, "ARTICLE 2")
		assert.True(t, strings.HasSuffix(got, "three\n\n"))
	})
}

func TestArticle_Validate(t *testing.T) {
	t.Parallel()

	t.Run("requires positive index", func(t *testing.T) {
		t.Parallel()

		a := &seqscrape.Article{SourceURL: "https://example.com/1"}
		assert.Equal(t, seqscrape.EINVALID, seqscrape.ErrorCode(a.Validate()))
	})

	t.Run("requires source URL", func(t *testing.T) {
		t.Parallel()

		a := &seqscrape.Article{Index: 1}
		assert.Equal(t, seqscrape.EINVALID, seqscrape.ErrorCode(a.Validate()))
	})

	t.Run("accepts complete article", func(t *testing.T) {
		t.Parallel()

		a := &seqscrape.Article{Index: 1, SourceURL: "https://example.com/1"}
		assert.NoError(t, a.Validate())
	})
}
