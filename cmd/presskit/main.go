package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/awalczak/presskit"
	"github.com/awalczak/presskit/dateparse"
	"github.com/awalczak/presskit/goquery"
	"github.com/awalczak/presskit/htmltomarkdown"
	presskithttp "github.com/awalczak/presskit/http"
	"github.com/awalczak/presskit/readability"
	presskitslog "github.com/awalczak/presskit/slog"
	"github.com/awalczak/presskit/sqlite"
	"github.com/awalczak/presskit/trafilatura"
	"github.com/awalczak/presskit/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Service for end-to-end testing.
	ArticleService presskit.ArticleService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("presskit"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'presskit --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set PRESSKIT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.ArticleService = sqlite.NewArticleService(m.DB)
	deps.DB = m.DB
	deps.Articles = m.ArticleService

	// Wire command-specific dependencies
	if cmd == "extract" {
		extractor, err := buildExtractor(&cli.Extract, stderr)
		if err != nil {
			return err
		}
		deps.Extractor = extractor

		if cli.Extract.File == "" {
			fetcher := presskithttp.NewFetcher()
			defer fetcher.Close()
			deps.Fetcher = fetcher
		}
	}

	return kongCtx.Run(deps)
}

// buildExtractor assembles the extraction pipeline from the command's
// flags and the optional config file.
func buildExtractor(cmd *ExtractCmd, stderr io.Writer) (presskit.ArticleExtractor, error) {
	opts := presskit.DefaultOptions()
	if cmd.Config != "" {
		var err error
		opts, err = yaml.LoadConfig(cmd.Config)
		if err != nil {
			return nil, err
		}
	}
	opts.EmitHTML = opts.EmitHTML || cmd.HTML
	opts.EmitMarkdown = opts.EmitMarkdown || cmd.Markdown

	var extractor presskit.ArticleExtractor = goquery.NewExtractor(
		goquery.WithOptions(opts),
		goquery.WithDateParser(dateparse.NewParser()),
		goquery.WithFallbacks(readability.NewExtractor(), trafilatura.NewExtractor()),
		goquery.WithConverter(htmltomarkdown.NewConverter()),
	)

	if cmd.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		extractor = presskitslog.NewLoggingExtractor(extractor, logger)
	}

	return extractor, nil
}

func defaultDBPath() string {
	if path := os.Getenv("PRESSKIT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "presskit.db"
	}
	dir := filepath.Join(home, ".presskit")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "presskit.db")
}
