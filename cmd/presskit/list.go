package main

import (
	"fmt"

	"github.com/awalczak/presskit"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := presskit.ArticleFilter{
		Limit:  c.Limit,
		Offset: c.Offset,
	}
	if c.Status != "" {
		status := presskit.Status(c.Status)
		if status != presskit.StatusDone && status != presskit.StatusError {
			fmt.Fprintf(deps.Stderr, "error: status must be %q or %q\n", presskit.StatusDone, presskit.StatusError)
			return presskit.Errorf(presskit.EINVALID, "invalid status %q", c.Status)
		}
		filter.Status = &status
	}
	if c.URL != "" {
		filter.SourceURL = &c.URL
	}

	articles, err := deps.Articles.FindArticles(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", presskit.ErrorMessage(err))
		return err
	}

	if len(articles) == 0 {
		fmt.Fprintln(deps.Stdout, "No articles found. Use 'presskit extract --save' to store one.")
		return nil
	}

	for _, a := range articles {
		title := a.Title
		if title == "" {
			title = "(no title)"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %-5s  %s  %s\n",
			a.ID, a.ExtractedAt.Format("2006-01-02"), a.Status, title, a.SourceURL)
	}

	return nil
}
