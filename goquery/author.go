package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// authorSimilarity is the trigram similarity (percent, inclusive) at
// which a class/id token counts as a plausible author marker. It is
// deliberately lower than noiseSimilarity: a weak byline hint is worth
// inspecting, a weak noise hint is not worth acting on.
const authorSimilarity = 60

const maxAuthorNameLength = 100

// bylineSelectors are the class and rel conventions publishers use for
// visible author credits.
const bylineSelectors = `.author, .byline, .by-line, .writer, .article-author, .post-author, [itemprop="author"]`

var authorStopWords = map[string]bool{
	"by": true, "and": true, "with": true, "the": true,
	"a": true, "an": true, "of": true, "for": true,
	"in": true, "on": true, "at": true, "from": true,
}

// authorNoiseWords are tokens that show up next to bylines but never
// inside a name: month names and timestamp words.
var authorNoiseWords = map[string]bool{
	"january": true, "february": true, "march": true, "april": true,
	"may": true, "june": true, "july": true, "august": true,
	"september": true, "october": true, "november": true, "december": true,
	"jan": true, "feb": true, "mar": true, "apr": true, "jun": true,
	"jul": true, "aug": true, "sep": true, "sept": true, "oct": true,
	"nov": true, "dec": true,
	"published": true, "hours": true, "ago": true,
}

func (e *Extractor) extractAuthors(doc *goquery.Document) []string {
	strategies := []func(*goquery.Document) []string{
		authorsFromMeta,
		authorsFromStructuredData,
		authorsFromSelection(`[rel="author"]`),
		authorsFromSelection(bylineSelectors),
		e.authorsFromAttributes,
	}

	for _, strategy := range strategies {
		if authors := strategy(doc); len(authors) > 0 {
			return authors
		}
	}
	return nil
}

func authorsFromMeta(doc *goquery.Document) []string {
	for _, selector := range []string{`meta[name="author"]`, `meta[property="article:author"]`} {
		content := strings.TrimSpace(doc.Find(selector).First().AttrOr("content", ""))
		// article:author is frequently a profile URL rather than a name.
		if content == "" || strings.HasPrefix(strings.ToLower(content), "http") {
			continue
		}
		if authors := splitAuthors(content); len(authors) > 0 {
			return authors
		}
	}
	return nil
}

func authorsFromStructuredData(doc *goquery.Document) []string {
	for _, sd := range structuredArticles(doc) {
		var authors []string
		for _, name := range structuredStrings(sd.Author, "name") {
			if strings.HasPrefix(strings.ToLower(name), "http") {
				continue
			}
			authors = append(authors, splitAuthors(name)...)
		}
		if len(authors) > 0 {
			return authors
		}
	}
	return nil
}

func authorsFromSelection(selector string) func(*goquery.Document) []string {
	return func(doc *goquery.Document) []string {
		var authors []string
		doc.Find(selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			if found := splitAuthors(sel.Text()); len(found) > 0 {
				authors = found
				return false
			}
			return true
		})
		return authors
	}
}

// authorsFromAttributes is the last resort: fuzzy-classify every class/id
// token against the author vocabulary and, on a hit, validate the owning
// element's text as a byline.
func (e *Extractor) authorsFromAttributes(doc *goquery.Document) []string {
	var authors []string
	doc.Find("[class], [id]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		for _, token := range attributeTokens(sel) {
			if !e.plausibleAuthorToken(token) {
				continue
			}
			if names := authorNamesFromText(sel.Text()); len(names) > 0 {
				authors = names
				return false
			}
		}
		return true
	})
	return authors
}

func (e *Extractor) plausibleAuthorToken(token string) bool {
	for _, match := range e.authorVocab.Score(token) {
		if match.Similarity >= authorSimilarity {
			return true
		}
	}
	return false
}

// authorNamesFromText validates a candidate byline by tokenizing it and
// discarding stop-words, punctuation-only tokens, month names, and
// timestamp words. Text that leaves nothing, or far too much, behind is
// not a byline.
func authorNamesFromText(text string) []string {
	var words []string
	for _, token := range strings.Fields(text) {
		token = strings.Trim(token, ".,:;|()[]{}\"'")
		if token == "" || !containsLetter(token) {
			continue
		}
		lower := strings.ToLower(token)
		if authorStopWords[lower] || authorNoiseWords[lower] {
			continue
		}
		words = append(words, token)
	}
	if len(words) == 0 || len(words) > 8 {
		return nil
	}
	return splitAuthors(strings.Join(words, " "))
}

// splitAuthors normalizes one credit string into individual names,
// handling "By Jane Doe and John Roe" and comma-separated lists.
func splitAuthors(text string) []string {
	text = strings.TrimSpace(text)
	lower := strings.ToLower(text)
	if strings.HasPrefix(lower, "by ") {
		text = strings.TrimSpace(text[3:])
	}

	text = strings.ReplaceAll(text, " and ", ",")
	text = strings.ReplaceAll(text, " & ", ",")

	var authors []string
	for _, part := range strings.Split(text, ",") {
		name := strings.TrimSpace(part)
		if name == "" || !containsLetter(name) || len(name) > maxAuthorNameLength {
			continue
		}
		authors = append(authors, name)
	}
	return authors
}
