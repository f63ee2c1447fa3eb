package goquery_test

import (
	"strings"
	"testing"

	gq "github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/seqscrape"
	"github.com/fwojciec/seqscrape/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	nethtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func TestExtractSelection(t *testing.T) {
	t.Parallel()

	t.Run("returns blocks and outer HTML of the container", func(t *testing.T) {
		t.Parallel()

		doc, err := gq.NewDocumentFromReader(strings.NewReader(`<div id="c"><h2>T</h2><p>Body</p></div>`))
		require.NoError(t, err)

		result, err := goquery.ExtractSelection(doc.Find("#c"))

		require.NoError(t, err)
		assert.Equal(t, `<div id="c"><h2>T</h2><p>Body</p></div>`, result.RootHTML)
		assert.Equal(t, "## T\n\nBody", result.Content())
		assert.False(t, result.PlainText)
	})

	t.Run("fails when the container cannot be rendered", func(t *testing.T) {
		t.Parallel()

		// A void element with children has no HTML serialization.
		br := &nethtml.Node{Type: nethtml.ElementNode, Data: "br", DataAtom: atom.Br}
		br.AppendChild(&nethtml.Node{Type: nethtml.TextNode, Data: "text"})
		doc := gq.NewDocumentFromNode(br)

		result, err := goquery.ExtractSelection(doc.Selection)

		require.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, seqscrape.EINTERNAL, seqscrape.ErrorCode(err))
	})
}
