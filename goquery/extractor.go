// Package goquery implements the presskit extraction pipeline on top of
// the PuerkitoBio/goquery document tree. Each output field is resolved by
// an ordered list of source strategies; the first value that passes
// validation wins and no backtracking occurs once a field resolves.
package goquery

import (
	"net/url"
	"strings"
	"time"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/awalczak/presskit"
)

// Ensure Extractor implements presskit.ArticleExtractor at compile time.
var _ presskit.ArticleExtractor = (*Extractor)(nil)

// Extractor extracts structured article data from raw HTML. It holds no
// per-call state: the vocabularies and cleaner built at construction time
// are immutable, so a single instance can serve many extraction calls.
type Extractor struct {
	opts        presskit.Options
	cleaner     *presskit.Cleaner
	authorVocab *presskit.Vocabulary
	noiseVocab  *presskit.Vocabulary
	dates       presskit.DateParser
	fallbacks   []presskit.ContentExtractor
	converter   presskit.Converter
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithOptions replaces the default extraction options.
func WithOptions(opts presskit.Options) Option {
	return func(e *Extractor) {
		e.opts = opts
	}
}

// WithDateParser sets the parser used to validate candidate publish
// dates. Without one, only a fixed set of common layouts is accepted.
func WithDateParser(parser presskit.DateParser) Option {
	return func(e *Extractor) {
		e.dates = parser
	}
}

// WithFallbacks sets the generic content parsers tried, in order, when
// selector- and scorer-based content extraction find nothing.
func WithFallbacks(fallbacks ...presskit.ContentExtractor) Option {
	return func(e *Extractor) {
		e.fallbacks = fallbacks
	}
}

// WithConverter sets the HTML-to-Markdown converter used when the
// EmitMarkdown option is enabled.
func WithConverter(converter presskit.Converter) Option {
	return func(e *Extractor) {
		e.converter = converter
	}
}

// NewExtractor creates an Extractor with the given options.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		opts:    presskit.DefaultOptions(),
		cleaner: presskit.NewCleaner(),
	}
	for _, opt := range opts {
		opt(e)
	}

	authorTokens := e.opts.AuthorVocabulary
	if len(authorTokens) == 0 {
		authorTokens = presskit.DefaultAuthorVocabulary()
	}
	noiseTokens := e.opts.NoiseVocabulary
	if len(noiseTokens) == 0 {
		noiseTokens = presskit.DefaultNoiseVocabulary()
	}
	e.authorVocab = presskit.NewVocabulary(authorTokens)
	e.noiseVocab = presskit.NewVocabulary(noiseTokens)

	return e
}

// Extract processes raw HTML fetched from sourceURL and returns one
// normalized Article. Each field degrades independently: an exhausted
// fallback chain leaves its field at the zero value, and only a missing
// input or unparseable document is an error.
func (e *Extractor) Extract(html, sourceURL string) (*presskit.Article, error) {
	if strings.TrimSpace(html) == "" {
		return nil, presskit.Errorf(presskit.EINVALID, "empty HTML input")
	}
	if strings.TrimSpace(sourceURL) == "" {
		return nil, presskit.Errorf(presskit.EINVALID, "source URL required")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, presskit.Errorf(presskit.EINVALID, "failed to parse HTML: %v", err)
	}

	article := &presskit.Article{
		SourceURL: sourceURL,
		Language:  e.extractLanguage(doc),
		Images:    []string{},
	}

	article.Title = e.extractTitle(doc)
	article.Authors = e.extractAuthors(doc)
	article.PublishedAt = e.extractPublishedAt(doc, sourceURL)
	if e.opts.IncludeImages {
		article.Images = e.extractImages(doc)
	}

	content, contentHTML, parser := e.extractContent(doc, html, registrableDomain(sourceURL))
	article.Content = content
	article.Parser = parser
	if e.opts.EmitHTML {
		article.ContentHTML = contentHTML
	}
	if e.opts.EmitMarkdown && e.converter != nil && contentHTML != "" {
		if markdown, err := e.converter.Convert(contentHTML); err == nil {
			article.ContentMarkdown = strings.TrimSpace(markdown)
		}
	}

	if article.Content != "" {
		article.Status = presskit.StatusDone
	} else {
		article.Status = presskit.StatusError
	}
	article.ExtractedAt = time.Now().UTC()

	return article, nil
}

// extractLanguage trusts the declared locale only: html lang attribute,
// then the content-language meta, then og:locale. Defaults to "en".
func (e *Extractor) extractLanguage(doc *goquery.Document) string {
	candidates := []string{
		doc.Find("html").AttrOr("lang", ""),
		doc.Find(`meta[http-equiv="content-language"]`).AttrOr("content", ""),
		doc.Find(`meta[property="og:locale"]`).AttrOr("content", ""),
	}
	for _, candidate := range candidates {
		candidate = strings.TrimSpace(strings.ReplaceAll(candidate, "_", "-"))
		if candidate == "" {
			continue
		}
		if primary := strings.ToLower(strings.SplitN(candidate, "-", 2)[0]); primary != "" {
			return primary
		}
	}
	return "en"
}

// registrableDomain returns the lowercased host of sourceURL with any
// leading "www." stripped; it keys the per-site selector table.
func registrableDomain(sourceURL string) string {
	u, err := url.Parse(sourceURL)
	if err != nil || u.Hostname() == "" {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
}

// attributeTokens splits an element's class and id attributes into the
// individual tokens the trigram classifiers score.
func attributeTokens(sel *goquery.Selection) []string {
	raw := sel.AttrOr("class", "") + " " + sel.AttrOr("id", "")
	return strings.FieldsFunc(raw, func(r rune) bool {
		return r == '-' || r == '_' || unicode.IsSpace(r)
	})
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
