package presskit

// DefaultMinContentLength is the minimum raw text length (in bytes) a
// candidate content block must have to be considered at all.
const DefaultMinContentLength = 80

// Options configures an extraction pipeline. The zero value is not
// useful; start from DefaultOptions.
type Options struct {
	// MinContentLength discards content candidates whose raw text is
	// shorter than this many bytes.
	MinContentLength int `yaml:"minContentLength"`

	// IncludeImages controls whether the Images field is populated.
	IncludeImages bool `yaml:"includeImages"`

	// IncludeLinks keeps anchor text inside extracted content. When
	// false, link-heavy fragments are left to the noise filter.
	IncludeLinks bool `yaml:"includeLinks"`

	// EmitHTML populates Article.ContentHTML with the cleaned HTML of
	// the selected content block.
	EmitHTML bool `yaml:"emitHtml"`

	// EmitMarkdown populates Article.ContentMarkdown via a Converter.
	EmitMarkdown bool `yaml:"emitMarkdown"`

	// SiteSelectors maps a registrable domain to CSS selectors that
	// identify the canonical content container for that domain. Consumed
	// as the first and last resort of the content chain only.
	SiteSelectors map[string][]string `yaml:"siteSelectors"`

	// AuthorVocabulary and NoiseVocabulary override the built-in
	// classification token sets when non-empty.
	AuthorVocabulary []string `yaml:"authorVocabulary"`
	NoiseVocabulary  []string `yaml:"noiseVocabulary"`
}

// DefaultOptions returns the default extraction options.
func DefaultOptions() Options {
	return Options{
		MinContentLength: DefaultMinContentLength,
		IncludeImages:    true,
		IncludeLinks:     true,
	}
}

// DefaultAuthorVocabulary returns the reference tokens used to classify a
// class/id attribute value as a plausible author or byline marker.
func DefaultAuthorVocabulary() []string {
	return []string{
		"AUTHOR",
		"BYLINE",
		"WRITER",
		"REPORTER",
		"JOURNALIST",
		"CONTRIBUTOR",
		"CREDIT",
	}
}

// DefaultNoiseVocabulary returns the reference tokens used to classify a
// class/id attribute value as a non-content (noise) marker.
func DefaultNoiseVocabulary() []string {
	return []string{
		"COMMENT",
		"FOOTER",
		"HEADER",
		"SIDEBAR",
		"NAVIGATION",
		"RELATED",
		"PROMO",
		"ADVERTISEMENT",
	}
}
