package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/fwojciec/seqscrape"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := seqscrape.ArticleFilter{}
	if c.RunID != "" {
		filter.RunID = &c.RunID
	}

	articles, err := deps.Articles.FindArticles(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", seqscrape.ErrorMessage(err))
		return err
	}

	if len(articles) == 0 {
		fmt.Fprintln(deps.Stdout, "No archived articles found. Use 'seqscrape scrape --db PATH' to archive a run.")
		return nil
	}

	if c.Full {
		fmt.Fprint(deps.Stdout, seqscrape.FormatArticles(articles))
		return nil
	}

	var runID string
	for _, a := range articles {
		if a.RunID != runID {
			runID = a.RunID
			fmt.Fprintf(deps.Stdout, "Run %s  %s\n", runID, a.FetchedAt.Format("2006-01-02 15:04:05"))
		}
		fmt.Fprintf(deps.Stdout, "  %4d  %s  (%d characters)\n",
			a.Index, a.SourceURL, utf8.RuneCountInString(a.Content))
	}
	return nil
}
