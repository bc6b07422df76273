package presskit

import (
	"context"
	"time"
)

// ArticleExtractor extracts a normalized Article from raw HTML.
// Implementations must treat the document as read-only and must not keep
// state between calls, so a single instance can be reused.
type ArticleExtractor interface {
	// Extract processes raw HTML fetched from sourceURL and returns one
	// Article. Missing or empty HTML or URL is EINVALID; an exhausted
	// fallback chain for a single field is never an error.
	Extract(html, sourceURL string) (*Article, error)
}

// ContentExtractor extracts main body text from raw HTML. Implementations
// wrap generic boilerplate-removal parsers and serve as fallbacks in the
// content chain when selector- and scorer-based extraction find nothing.
type ContentExtractor interface {
	// Name identifies the parser in Article.Parser.
	Name() string

	// ExtractContent returns the main content as plain text.
	ExtractContent(html string) (string, error)
}

// Converter converts an HTML fragment to Markdown.
type Converter interface {
	Convert(html string) (string, error)
}

// DateParser parses a date string whose layout is not known in advance.
// It is used to validate candidate publish dates before they resolve.
type DateParser interface {
	Parse(value string) (time.Time, error)
}

// Fetcher retrieves HTML content from a URL. The extraction core never
// fetches; this is the collaborator the CLI wires in when its input is a
// URL rather than a file.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
	Close() error
}
