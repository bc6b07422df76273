package main

import (
	"context"
	"io"

	"github.com/awalczak/presskit"
	"github.com/awalczak/presskit/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Articles  presskit.ArticleService
	Extractor presskit.ArticleExtractor
	Fetcher   presskit.Fetcher
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Extract ExtractCmd `cmd:"" help:"Extract an article from a URL or local HTML file"`
	List    ListCmd    `cmd:"" help:"List stored articles"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a stored article"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL      string `arg:"" help:"Article URL"`
	File     string `short:"f" help:"Read HTML from a local file instead of fetching the URL"`
	Config   string `short:"c" help:"Path to a YAML config file"`
	Save     bool   `short:"s" help:"Store the extracted article in the database"`
	Markdown bool   `help:"Include a Markdown rendition of the content"`
	HTML     bool   `name:"html" help:"Include the cleaned HTML of the content block"`
	Verbose  bool   `short:"v" help:"Log extraction details to stderr"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Status string `help:"Filter by status (Done or Error)"`
	URL    string `help:"Filter by source URL"`
	Limit  int    `default:"20" help:"Maximum number of articles to show"`
	Offset int    `help:"Number of articles to skip"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Article ID"`
	Force bool   `help:"Confirm deletion"`
}
