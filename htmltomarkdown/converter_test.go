package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/seqscrape"
	"github.com/fwojciec/seqscrape/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts article root", func(t *testing.T) {
		t.Parallel()

		html := `<div id="articlebody"><h2>Chapter 3</h2><p>It began <em>quietly</em>.</p></div>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Equal(t, "## Chapter 3\n\nIt began *quietly*.", md)
	})

	t.Run("converts lists", func(t *testing.T) {
		t.Parallel()

		html := `<ul><li>Alpha</li><li>Beta</li></ul><ol><li>One</li><li>Two</li></ol>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "- Alpha")
		assert.Contains(t, md, "- Beta")
		assert.Contains(t, md, "1. One")
		assert.Contains(t, md, "2. Two")
	})

	t.Run("converts blockquotes", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<blockquote><p>Said softly</p></blockquote>`)

		require.NoError(t, err)
		assert.Contains(t, md, "> Said softly")
	})

	t.Run("keeps links", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<p>See <a href="https://example.com/2.html">next</a>.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "[next](https://example.com/2.html)")
	})

	t.Run("drops scripts", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<p>Text</p><script>var x = 1;</script>`)

		require.NoError(t, err)
		assert.NotContains(t, md, "var x")
	})

	t.Run("rejects blank input", func(t *testing.T) {
		t.Parallel()

		_, err := htmltomarkdown.NewConverter().Convert("  \n ")

		require.Error(t, err)
		assert.Equal(t, seqscrape.EINVALID, seqscrape.ErrorCode(err))
	})

	t.Run("reports markup without text", func(t *testing.T) {
		t.Parallel()

		_, err := htmltomarkdown.NewConverter().Convert(`<div><span> </span></div>`)

		require.Error(t, err)
		assert.Equal(t, seqscrape.ENOTFOUND, seqscrape.ErrorCode(err))
	})
}
