// Package crawl drives a scraping run: it walks the URL sequence of a job,
// fetches and extracts each page in order and collects the articles.
package crawl

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/seqscrape"
)

// DefaultDelay is the pause between two consecutive requests.
const DefaultDelay = 500 * time.Millisecond

// Crawler fetches the pages of a job one at a time, in index order.
type Crawler struct {
	Fetcher   seqscrape.Fetcher
	Extractor seqscrape.Extractor

	// Converter, if set, renders the extracted root as Markdown instead
	// of the default simplified markup.
	Converter seqscrape.Converter

	// RateLimiter, if set, is consulted before every request.
	RateLimiter seqscrape.DomainLimiter

	// Delay is the pause between requests. No pause follows the last
	// request. Zero or negative values disable the pause.
	Delay time.Duration
}

// NewCrawler creates a Crawler with the default delay.
func NewCrawler(fetcher seqscrape.Fetcher, extractor seqscrape.Extractor) *Crawler {
	return &Crawler{
		Fetcher:   fetcher,
		Extractor: extractor,
		Delay:     DefaultDelay,
	}
}

// Crawl runs the job and returns the articles that produced content, in
// index order.
//
// Invalid jobs return an EINVALID error before any request is made. Pages
// that fail to download or yield no content are reported through progress
// and skipped. Crawl only returns early when ctx is canceled, together with
// the articles collected so far.
func (c *Crawler) Crawl(ctx context.Context, job seqscrape.Job, progress seqscrape.ProgressFunc) ([]*seqscrape.Article, error) {
	if err := job.Validate(); err != nil {
		return nil, err
	}
	pattern, err := job.Pattern()
	if err != nil {
		return nil, err
	}

	selector := job.Selector
	if selector == "" {
		selector = seqscrape.DefaultSelector
	}

	var articles []*seqscrape.Article
	for i, pageURL := range pattern.URLs(job.Count) {
		if err := ctx.Err(); err != nil {
			return articles, err
		}

		article, pageErr := c.crawlPage(ctx, i, pageURL, selector)
		if err := ctx.Err(); err != nil {
			return articles, err
		}
		if article != nil {
			articles = append(articles, article)
		}

		if progress != nil {
			progress(seqscrape.Progress{
				Index:   i,
				Total:   job.Count,
				URL:     pageURL,
				Article: article,
				Err:     pageErr,
			})
		}

		if i < job.Count {
			if err := c.pause(ctx); err != nil {
				return articles, err
			}
		}
	}

	return articles, nil
}

// crawlPage fetches and extracts a single page.
func (c *Crawler) crawlPage(ctx context.Context, index int, pageURL, selector string) (*seqscrape.Article, error) {
	if c.RateLimiter != nil {
		if u, err := url.Parse(pageURL); err == nil {
			if err := c.RateLimiter.Wait(ctx, u.Host); err != nil {
				return nil, err
			}
		}
	}

	html, err := c.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	extraction := c.Extractor.Extract(html, selector)
	content, err := c.render(extraction)
	if err != nil {
		return nil, fmt.Errorf("convert %s: %w", pageURL, err)
	}
	if content == "" {
		return nil, seqscrape.Errorf(seqscrape.ENOTFOUND, "no content extracted from %s", pageURL)
	}

	return &seqscrape.Article{
		Index:     index,
		SourceURL: pageURL,
		Selector:  extraction.Selector,
		Content:   content,
		FetchedAt: time.Now().UTC(),
	}, nil
}

func (c *Crawler) render(extraction *seqscrape.Extraction) (string, error) {
	if c.Converter == nil || !extraction.Found() {
		return extraction.Content(), nil
	}
	md, err := c.Converter.Convert(extraction.RootHTML)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(md), nil
}

// pause waits for the configured delay or until ctx is done.
func (c *Crawler) pause(ctx context.Context) error {
	if c.Delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(c.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
