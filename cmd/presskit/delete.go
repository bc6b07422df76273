package main

import (
	"fmt"

	"github.com/awalczak/presskit"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return presskit.Errorf(presskit.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Articles.DeleteArticle(deps.Ctx, c.ID); err != nil {
		if presskit.ErrorCode(err) == presskit.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: article %q not found. Use 'presskit list' to see stored articles.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", presskit.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted article %q\n", c.ID)
	return nil
}
