// Package readability adapts go-readability as a generic content parser
// for the fallback chain.
package readability

import (
	"strings"

	"github.com/awalczak/presskit"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements presskit.ContentExtractor at compile time.
var _ presskit.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Name identifies this parser in extraction results.
func (e *Extractor) Name() string {
	return "readability"
}

// ExtractContent processes raw HTML and returns the main content as
// plain text.
func (e *Extractor) ExtractContent(rawHTML string) (string, error) {
	if rawHTML == "" {
		return "", presskit.Errorf(presskit.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(article.TextContent), nil
}
