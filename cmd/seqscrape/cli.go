package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/seqscrape"
	"github.com/fwojciec/seqscrape/config"
	"github.com/fwojciec/seqscrape/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Crawler  *crawl.Crawler
	Store    seqscrape.ArticleStore
	Articles seqscrape.ArticleService

	// NewRunID generates the identifier of an archived run.
	NewRunID func() string
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `type:"path" env:"SEQSCRAPE_CONFIG" help:"Config file (default: ~/.seqscrape/config.yaml)"`
	DB      string `type:"path" env:"SEQSCRAPE_DB" help:"SQLite archive of scraped articles"`
	Verbose bool   `short:"v" help:"Log debug diagnostics"`
	Quiet   bool   `short:"q" help:"Only log errors"`

	Scrape ScrapeCmd `cmd:"" default:"withargs" help:"Scrape a numbered series of pages into one file"`
	List   ListCmd   `cmd:"" help:"List archived articles"`
	Delete DeleteCmd `cmd:"" help:"Delete an archived run"`
}

// ScrapeCmd is the "scrape" subcommand. Missing arguments are prompted for.
type ScrapeCmd struct {
	URL   string `arg:"" optional:"" help:"URL of any page in the series (e.g., example.com/1.html)"`
	Count string `arg:"" optional:"" help:"Number of pages to fetch"`

	Selector    string         `short:"s" env:"SEQSCRAPE_SELECTOR" help:"CSS selector for article content (default: #articlebody)"`
	Output      string         `short:"o" type:"path" env:"SEQSCRAPE_OUTPUT" help:"Output file (default: scraped_articles_formatted.txt)"`
	Delay       *time.Duration `env:"SEQSCRAPE_DELAY" help:"Pause between requests (default: 500ms)"`
	Timeout     *time.Duration `env:"SEQSCRAPE_TIMEOUT" help:"Per-request timeout, 0 disables (default: 30s)"`
	UserAgent   string         `env:"SEQSCRAPE_USER_AGENT" help:"User-Agent header"`
	Rate        *float64       `env:"SEQSCRAPE_RATE" help:"Max requests per second per host, 0 disables"`
	SegmentOnly *bool          `negatable:"" help:"Only replace the number in the last path segment"`
	Locator     string         `env:"SEQSCRAPE_LOCATOR" help:"Fallback content locator: none, trafilatura or readability"`
	Format      string         `short:"f" env:"SEQSCRAPE_FORMAT" help:"Output format: text or markdown"`
}

// overrides returns the settings given on the command line.
func (c *ScrapeCmd) overrides() config.Config {
	return config.Config{
		Selector:    c.Selector,
		Output:      c.Output,
		UserAgent:   c.UserAgent,
		Delay:       c.Delay,
		Timeout:     c.Timeout,
		Rate:        c.Rate,
		Format:      c.Format,
		Locator:     c.Locator,
		SegmentOnly: c.SegmentOnly,
	}
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	RunID string `name:"run" help:"Only show articles of this run"`
	Full  bool   `help:"Show full article content"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	RunID string `arg:"" name:"run" help:"Run ID"`
	Force bool   `help:"Confirm deletion"`
}
