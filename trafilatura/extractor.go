// Package trafilatura adapts go-trafilatura as a generic content parser
// for the fallback chain.
package trafilatura

import (
	"strings"

	"github.com/awalczak/presskit"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements presskit.ContentExtractor at compile time.
var _ presskit.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Name identifies this parser in extraction results.
func (e *Extractor) Name() string {
	return "trafilatura"
}

// ExtractContent processes raw HTML and returns the main content as
// plain text.
func (e *Extractor) ExtractContent(rawHTML string) (string, error) {
	if rawHTML == "" {
		return "", presskit.Errorf(presskit.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(result.ContentText), nil
}
