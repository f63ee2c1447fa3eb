package main

import (
	"fmt"

	"github.com/fwojciec/seqscrape"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return seqscrape.Errorf(seqscrape.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Articles.DeleteArticlesByRun(deps.Ctx, c.RunID); err != nil {
		if seqscrape.ErrorCode(err) == seqscrape.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: run %q not found. Use 'seqscrape list' to see archived runs.\n", c.RunID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", seqscrape.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted run %q\n", c.RunID)
	return nil
}
