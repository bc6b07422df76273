package presskit

import (
	"regexp"
	"strings"
	"unicode"
)

// MinLineLength is the minimum length a line of extracted text must have
// to survive line-level filtering.
const MinLineLength = 20

// Cleaner strips residual markup, script fragments, and boilerplate
// phrases from extracted text. It is immutable after construction, safe
// to share across concurrent extraction calls, and Clean is idempotent:
// cleaning already-clean text returns it unchanged.
type Cleaner struct {
	cssRules      *regexp.Regexp
	cssInline     *regexp.Regexp
	jsFunctions   *regexp.Regexp
	jsAssignments *regexp.Regexp
	jsCalls       *regexp.Regexp
	jsBlockNotes  *regexp.Regexp
	jsLineNotes   *regexp.Regexp
	boilerplate   []*regexp.Regexp

	selectorShape *regexp.Regexp
	propertyShape *regexp.Regexp
	scriptShape   *regexp.Regexp
}

// NewCleaner compiles the cleaning pattern library.
func NewCleaner() *Cleaner {
	return &Cleaner{
		// CSS rule blocks (selector plus braces) and inline declarations.
		// Selector length is capped to keep backtracking bounded.
		cssRules:  regexp.MustCompile(`[^{}\n]{0,120}\{[^{}]*\}`),
		cssInline: regexp.MustCompile(`(?i)\b[a-z-]+\s*:\s*[^;{}\n]{1,120};`),

		// Script-like fragments: function literals, property assignments,
		// call statements, and both JS comment styles.
		jsFunctions:   regexp.MustCompile(`\bfunction\s*[\w$]*\s*\([^)]*\)\s*\{[^{}]*\}`),
		jsAssignments: regexp.MustCompile(`(?m)\b[\w$]+(?:\.[\w$]+)+\s*=\s*[^;\n]{1,200};?`),
		jsCalls:       regexp.MustCompile(`(?m)\b[\w$]+(?:\.[\w$]+)*\([^()\n]*\)\s*;`),
		jsBlockNotes:  regexp.MustCompile(`(?s)/\*.*?\*/`),
		jsLineNotes:   regexp.MustCompile(`(?m)^\s*//.*$`),

		// Known boilerplate phrases, matched case-insensitively. Patterns
		// ending in .*$ consume the rest of the line.
		boilerplate: []*regexp.Regexp{
			regexp.MustCompile(`(?im)(share (this )?(article|story|post)|share on (facebook|twitter|x|linkedin|whatsapp)|follow us on \w+).*$`),
			regexp.MustCompile(`(?im)^(related (articles?|stories|posts)|you may also like|recommended for you|read more:).*$`),
			regexp.MustCompile(`(?im)^\s*(next page|previous page|page \d+ of \d+|load more( comments)?)\s*$`),
			regexp.MustCompile(`(?im)(sign up for (our )?(free )?newsletter|subscribe to (our )?newsletter|get the latest \w[\w ]{0,40} in your inbox).*$`),
		},

		selectorShape: regexp.MustCompile(`^[.#][\w-]+(\s*[,>]\s*[.#]?[\w-]+)*\s*\{?$`),
		propertyShape: regexp.MustCompile(`^[a-z-]+\s*:\s*[^:]+;$`),
		scriptShape:   regexp.MustCompile(`\bfunction\s*\(|\(\)\s*;|[{};]$`),
	}
}

// Clean applies the full pass list in order: structural noise (CSS, then
// script fragments) before phrase filtering, so phrase patterns cannot
// match inside code fragments; line-level filtering catches what the
// earlier passes missed; whitespace normalization runs last. A pass that
// fails internally is skipped and the pipeline continues with the text it
// received.
func (c *Cleaner) Clean(text string) string {
	out := text
	out = runPass(out, c.stripCSS)
	out = runPass(out, c.stripScripts)
	out = runPass(out, c.stripBoilerplate)
	out = runPass(out, c.filterLines)
	out = runPass(out, normalizeWhitespace)
	return out
}

// runPass executes one cleaning pass, returning the input unchanged if
// the pass panics.
func runPass(text string, pass func(string) string) (out string) {
	out = text
	defer func() {
		_ = recover()
	}()
	return pass(text)
}

func (c *Cleaner) stripCSS(text string) string {
	text = c.cssRules.ReplaceAllString(text, " ")
	text = c.cssInline.ReplaceAllString(text, " ")
	return text
}

func (c *Cleaner) stripScripts(text string) string {
	text = c.jsBlockNotes.ReplaceAllString(text, " ")
	text = c.jsLineNotes.ReplaceAllString(text, " ")
	text = c.jsFunctions.ReplaceAllString(text, " ")
	text = c.jsAssignments.ReplaceAllString(text, " ")
	text = c.jsCalls.ReplaceAllString(text, " ")
	return text
}

func (c *Cleaner) stripBoilerplate(text string) string {
	for _, re := range c.boilerplate {
		text = re.ReplaceAllString(text, "")
	}
	return text
}

// filterLines drops lines that carry no article signal: too short, purely
// numeric or symbolic, or shaped like leftover CSS/JS. Each line is
// whitespace-collapsed before measuring so the later normalization pass
// cannot change the outcome of the length check.
func (c *Cleaner) filterLines(text string) string {
	var kept []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if len(line) < MinLineLength {
			continue
		}
		if !hasLetter(line) {
			continue
		}
		if c.selectorShape.MatchString(line) || c.propertyShape.MatchString(line) {
			continue
		}
		if c.scriptShape.MatchString(line) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

func normalizeWhitespace(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
