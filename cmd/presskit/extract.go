package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/awalczak/presskit"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	html, err := c.loadHTML(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", presskit.ErrorMessage(err))
		return err
	}

	article, err := deps.Extractor.Extract(html, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", presskit.ErrorMessage(err))
		return err
	}

	if c.Save {
		if err := deps.Articles.CreateArticle(deps.Ctx, article); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", presskit.ErrorMessage(err))
			return err
		}
	}

	out, err := json.MarshalIndent(article, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(out))

	return nil
}

// loadHTML reads the page from the local file when --file is given, and
// fetches the URL otherwise.
func (c *ExtractCmd) loadHTML(deps *Dependencies) (string, error) {
	if c.File != "" {
		b, err := os.ReadFile(c.File)
		if err != nil {
			return "", presskit.Errorf(presskit.EINVALID, "read HTML file %q: %v", c.File, err)
		}
		return string(b), nil
	}

	return deps.Fetcher.Fetch(deps.Ctx, c.URL)
}
