package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"unicode/utf8"

	"github.com/fwojciec/seqscrape"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	job, err := c.job(deps)
	if err != nil {
		return err
	}

	pattern, err := job.Pattern()
	if err != nil {
		fmt.Fprintln(deps.Stdout, "Couldn't find a number in the URL to increment")
		return err
	}

	fmt.Fprintf(deps.Stdout, "Starting to scrape %d articles from %s...\n", job.Count, pattern.Template())
	fmt.Fprintf(deps.Stdout, "Using selector: %s\n", job.Selector)

	progress := func(p seqscrape.Progress) {
		fmt.Fprintf(deps.Stdout, "\nScraping article %d/%d: %s\n", p.Index, p.Total, p.URL)
		if p.Article != nil {
			fmt.Fprintf(deps.Stdout, "Article %d saved successfully (%d characters)\n",
				p.Index, utf8.RuneCountInString(p.Article.Content))
			return
		}
		fmt.Fprintf(deps.Stdout, "Couldn't extract content from article %d\n", p.Index)
	}

	articles, err := deps.Crawler.Crawl(deps.Ctx, job, progress)
	if err != nil {
		_ = deps.Store.Abort()
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(deps.Stderr, "\nInterrupted, nothing written.")
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", seqscrape.ErrorMessage(err))
		}
		return err
	}

	if len(articles) == 0 {
		_ = deps.Store.Abort()
		fmt.Fprintln(deps.Stdout, "\nNo articles were successfully scraped.")
		return nil
	}

	if err := c.save(deps, articles); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", seqscrape.ErrorMessage(err))
		return err
	}

	path, err := filepath.Abs(c.Output)
	if err != nil {
		path = c.Output
	}
	fmt.Fprintf(deps.Stdout, "\nFinished! Saved %d articles to %s\n", len(articles), path)

	if deps.Articles != nil {
		return c.archive(deps, articles)
	}
	return nil
}

// job builds the job from arguments, prompting for what is missing.
func (c *ScrapeCmd) job(deps *Dependencies) (seqscrape.Job, error) {
	p := newPrompter(deps.Stdin, deps.Stdout)
	interactive := c.URL == "" || c.Count == ""

	var err error
	if c.URL == "" {
		if c.URL, err = p.ask(urlPrompt); err != nil {
			return seqscrape.Job{}, err
		}
	}
	if c.Count == "" {
		if c.Count, err = p.ask(countPrompt); err != nil {
			return seqscrape.Job{}, err
		}
	}

	if c.Selector == "" && interactive {
		if c.Selector, err = p.askDefault(selectorPrompt, seqscrape.DefaultSelector); err != nil {
			return seqscrape.Job{}, err
		}
	}
	if c.Selector == "" {
		c.Selector = seqscrape.DefaultSelector
	}

	// All answers are collected before the range is checked.
	count, err := parseCount(c.Count)
	if err != nil {
		fmt.Fprintln(deps.Stdout, seqscrape.ErrorMessage(err))
		return seqscrape.Job{}, err
	}

	job := seqscrape.Job{
		ExampleURL:   normalizeURL(c.URL),
		Count:        count,
		Selector:     c.Selector,
		SegmentScope: c.SegmentOnly != nil && *c.SegmentOnly,
	}
	if err := job.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", seqscrape.ErrorMessage(err))
		return seqscrape.Job{}, err
	}
	return job, nil
}

// save writes all articles to the output store in one commit.
func (c *ScrapeCmd) save(deps *Dependencies, articles []*seqscrape.Article) error {
	for _, a := range articles {
		if err := deps.Store.Save(deps.Ctx, a); err != nil {
			_ = deps.Store.Abort()
			return err
		}
	}
	return deps.Store.Commit()
}

// archive records the run in the article archive.
func (c *ScrapeCmd) archive(deps *Dependencies, articles []*seqscrape.Article) error {
	runID := deps.NewRunID()
	for _, a := range articles {
		a.RunID = runID
		if err := deps.Articles.CreateArticle(deps.Ctx, a); err != nil {
			fmt.Fprintf(deps.Stderr, "error archiving article %d: %s\n", a.Index, seqscrape.ErrorMessage(err))
			return err
		}
	}
	fmt.Fprintf(deps.Stdout, "Archived run %s\n", runID)
	return nil
}
