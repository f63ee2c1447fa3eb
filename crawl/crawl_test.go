package crawl_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/seqscrape"
	"github.com/fwojciec/seqscrape/crawl"
	"github.com/fwojciec/seqscrape/goquery"
	seqhttp "github.com/fwojciec/seqscrape/http"
	"github.com/fwojciec/seqscrape/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func page(body string) string {
	return `<html><body><div id="articlebody">` + body + `</div></body></html>`
}

func staticFetcher(pages map[string]string) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			html, ok := pages[url]
			if !ok {
				return "", seqscrape.Errorf(seqscrape.EUNAVAILABLE, "HTTP 404 for %s", url)
			}
			return html, nil
		},
		CloseFn: func() error { return nil },
	}
}

func TestCrawler_Crawl(t *testing.T) {
	t.Parallel()

	t.Run("collects articles in index order", func(t *testing.T) {
		t.Parallel()

		fetcher := staticFetcher(map[string]string{
			"https://example.com/a/1.html": page("<p>One</p>"),
			"https://example.com/a/2.html": page("<p>Two</p>"),
		})
		c := &crawl.Crawler{Fetcher: fetcher, Extractor: goquery.NewExtractor()}

		articles, err := c.Crawl(context.Background(), seqscrape.Job{
			ExampleURL: "https://example.com/a/7.html",
			Count:      2,
		}, nil)

		require.NoError(t, err)
		require.Len(t, articles, 2)
		assert.Equal(t, 1, articles[0].Index)
		assert.Equal(t, "https://example.com/a/1.html", articles[0].SourceURL)
		assert.Equal(t, "One", articles[0].Content)
		assert.Equal(t, "#articlebody", articles[0].Selector)
		assert.False(t, articles[0].FetchedAt.IsZero())
		assert.Equal(t, 2, articles[1].Index)
		assert.Equal(t, "Two", articles[1].Content)
	})

	t.Run("skips pages that fail to download", func(t *testing.T) {
		t.Parallel()

		fetcher := staticFetcher(map[string]string{
			"https://example.com/a/1.html": page("<p>One</p>"),
			"https://example.com/a/3.html": page("<p>Three</p>"),
		})
		c := &crawl.Crawler{Fetcher: fetcher, Extractor: goquery.NewExtractor()}

		var events []seqscrape.Progress
		articles, err := c.Crawl(context.Background(), seqscrape.Job{
			ExampleURL: "https://example.com/a/1.html",
			Count:      3,
		}, func(p seqscrape.Progress) {
			events = append(events, p)
		})

		require.NoError(t, err)
		require.Len(t, articles, 2)
		assert.Equal(t, 1, articles[0].Index)
		assert.Equal(t, 3, articles[1].Index)

		require.Len(t, events, 3)
		assert.NoError(t, events[0].Err)
		assert.Equal(t, seqscrape.EUNAVAILABLE, seqscrape.ErrorCode(events[1].Err))
		assert.Nil(t, events[1].Article)
		assert.Equal(t, 3, events[2].Index)
		assert.Equal(t, 3, events[2].Total)
	})

	t.Run("skips pages without extractable content", func(t *testing.T) {
		t.Parallel()

		fetcher := staticFetcher(map[string]string{
			"https://example.com/a/1.html": `<div id="nav"><p>Menu</p></div>`,
		})
		c := &crawl.Crawler{Fetcher: fetcher, Extractor: goquery.NewExtractor()}

		var events []seqscrape.Progress
		articles, err := c.Crawl(context.Background(), seqscrape.Job{
			ExampleURL: "https://example.com/a/1.html",
			Count:      1,
		}, func(p seqscrape.Progress) {
			events = append(events, p)
		})

		require.NoError(t, err)
		assert.Empty(t, articles)
		require.Len(t, events, 1)
		assert.Equal(t, seqscrape.ENOTFOUND, seqscrape.ErrorCode(events[0].Err))
	})

	t.Run("passes the job selector to the extractor", func(t *testing.T) {
		t.Parallel()

		var selectors []string
		extractor := &mock.Extractor{
			ExtractFn: func(_ string, selector string) *seqscrape.Extraction {
				selectors = append(selectors, selector)
				return &seqscrape.Extraction{}
			},
		}
		fetcher := staticFetcher(map[string]string{"https://example.com/1": "<p>x</p>"})
		c := &crawl.Crawler{Fetcher: fetcher, Extractor: extractor}

		_, err := c.Crawl(context.Background(), seqscrape.Job{
			ExampleURL: "https://example.com/1",
			Count:      1,
			Selector:   ".story",
		}, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{".story"}, selectors)
	})

	t.Run("uses default selector when job has none", func(t *testing.T) {
		t.Parallel()

		var got string
		extractor := &mock.Extractor{
			ExtractFn: func(_ string, selector string) *seqscrape.Extraction {
				got = selector
				return &seqscrape.Extraction{}
			},
		}
		fetcher := staticFetcher(map[string]string{"https://example.com/1": "<p>x</p>"})
		c := &crawl.Crawler{Fetcher: fetcher, Extractor: extractor}

		_, err := c.Crawl(context.Background(), seqscrape.Job{ExampleURL: "https://example.com/1", Count: 1}, nil)

		require.NoError(t, err)
		assert.Equal(t, seqscrape.DefaultSelector, got)
	})

	t.Run("rejects invalid count before fetching", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) {
				t.Fatal("fetch should not be called")
				return "", nil
			},
		}
		c := &crawl.Crawler{Fetcher: fetcher, Extractor: goquery.NewExtractor()}

		_, err := c.Crawl(context.Background(), seqscrape.Job{ExampleURL: "https://example.com/1", Count: 0}, nil)

		require.Error(t, err)
		assert.Equal(t, seqscrape.EINVALID, seqscrape.ErrorCode(err))
	})

	t.Run("rejects URL without numeric token before fetching", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) {
				t.Fatal("fetch should not be called")
				return "", nil
			},
		}
		c := &crawl.Crawler{Fetcher: fetcher, Extractor: goquery.NewExtractor()}

		_, err := c.Crawl(context.Background(), seqscrape.Job{
			ExampleURL: "http://example.com/article/index.html",
			Count:      3,
		}, nil)

		require.Error(t, err)
		assert.Equal(t, seqscrape.EINVALID, seqscrape.ErrorCode(err))
	})

	t.Run("pauses between requests but not after the last", func(t *testing.T) {
		t.Parallel()

		var stamps []time.Time
		fetcher := &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) {
				stamps = append(stamps, time.Now())
				return page("<p>x</p>"), nil
			},
		}
		c := &crawl.Crawler{Fetcher: fetcher, Extractor: goquery.NewExtractor(), Delay: 60 * time.Millisecond}

		start := time.Now()
		_, err := c.Crawl(context.Background(), seqscrape.Job{ExampleURL: "https://example.com/1", Count: 3}, nil)
		elapsed := time.Since(start)

		require.NoError(t, err)
		require.Len(t, stamps, 3)
		assert.GreaterOrEqual(t, stamps[1].Sub(stamps[0]), 50*time.Millisecond)
		assert.GreaterOrEqual(t, stamps[2].Sub(stamps[1]), 50*time.Millisecond)
		assert.Less(t, elapsed, 250*time.Millisecond, "no pause after the last request")
	})

	t.Run("stops when context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		calls := 0
		fetcher := &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) {
				calls++
				if calls == 2 {
					cancel()
				}
				return page("<p>x</p>"), nil
			},
		}
		c := &crawl.Crawler{Fetcher: fetcher, Extractor: goquery.NewExtractor()}

		articles, err := c.Crawl(ctx, seqscrape.Job{ExampleURL: "https://example.com/1", Count: 10}, nil)

		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 2, calls)
		assert.Len(t, articles, 1)
	})

	t.Run("waits on the rate limiter with the page host", func(t *testing.T) {
		t.Parallel()

		var domains []string
		limiter := &mock.DomainLimiter{
			WaitFn: func(_ context.Context, domain string) error {
				domains = append(domains, domain)
				return nil
			},
		}
		fetcher := staticFetcher(map[string]string{
			"https://news.example.com/p/1": page("<p>a</p>"),
			"https://news.example.com/p/2": page("<p>b</p>"),
		})
		c := &crawl.Crawler{Fetcher: fetcher, Extractor: goquery.NewExtractor(), RateLimiter: limiter}

		_, err := c.Crawl(context.Background(), seqscrape.Job{ExampleURL: "https://news.example.com/p/5", Count: 2}, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{"news.example.com", "news.example.com"}, domains)
	})

	t.Run("renders root HTML with converter when configured", func(t *testing.T) {
		t.Parallel()

		var converted string
		converter := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				converted = html
				return "**markdown**\n", nil
			},
		}
		fetcher := staticFetcher(map[string]string{"https://example.com/1": page("<p><b>x</b></p>")})
		c := &crawl.Crawler{Fetcher: fetcher, Extractor: goquery.NewExtractor(), Converter: converter}

		articles, err := c.Crawl(context.Background(), seqscrape.Job{ExampleURL: "https://example.com/1", Count: 1}, nil)

		require.NoError(t, err)
		require.Len(t, articles, 1)
		assert.Equal(t, "**markdown**", articles[0].Content)
		assert.Contains(t, converted, `id="articlebody"`)
	})

	t.Run("reports converter failure and continues", func(t *testing.T) {
		t.Parallel()

		converter := &mock.Converter{
			ConvertFn: func(string) (string, error) {
				return "", errors.New("bad html")
			},
		}
		fetcher := staticFetcher(map[string]string{
			"https://example.com/1": page("<p>a</p>"),
			"https://example.com/2": page("<p>b</p>"),
		})
		c := &crawl.Crawler{Fetcher: fetcher, Extractor: goquery.NewExtractor(), Converter: converter}

		var errs []error
		articles, err := c.Crawl(context.Background(), seqscrape.Job{ExampleURL: "https://example.com/1", Count: 2}, func(p seqscrape.Progress) {
			errs = append(errs, p.Err)
		})

		require.NoError(t, err)
		assert.Empty(t, articles)
		require.Len(t, errs, 2)
		assert.ErrorContains(t, errs[0], "bad html")
	})
}

// Story: end-to-end run against a live server
//
// Pages 1 and 3 of a three-page series have content and page 2 is missing.
// The formatted output holds exactly two sections.

func TestCrawler_Crawl_EndToEnd(t *testing.T) {
	t.Parallel()

	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		switch r.URL.Path {
		case "/article/1.html":
			fmt.Fprint(w, page("<h2>Part one</h2><p>First body.</p>"))
		case "/article/3.html":
			fmt.Fprint(w, `<html><body><div id="content"><p>Third body.</p></div></body></html>`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	c := crawl.NewCrawler(seqhttp.NewFetcher(), goquery.NewExtractor())
	c.Delay = 0

	articles, err := c.Crawl(context.Background(), seqscrape.Job{
		ExampleURL: server.URL + "/article/42.html",
		Count:      3,
		// The test server's port may contain the digits of the token.
		SegmentScope: true,
	}, nil)
	require.NoError(t, err)

	output := seqscrape.FormatArticles(articles)

	assert.Equal(t, int32(3), requests.Load())
	assert.Equal(t, 2, strings.Count(output, strings.Repeat("=", 50)+"\nARTICLE "))
	assert.Contains(t, output, "ARTICLE 1\n")
	assert.Contains(t, output, "ARTICLE 3\n")
	assert.NotContains(t, output, "ARTICLE 2")
	assert.Contains(t, output, "## Part one\n\nFirst body.")
	assert.Contains(t, output, "Third body.")
}
