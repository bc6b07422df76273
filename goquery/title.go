package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Title length bounds, exclusive, applied after trimming.
const (
	minTitleLength = 3
	maxTitleLength = 300
)

// First-level heading length bounds for the "meaningful heading"
// strategy, inclusive.
const (
	minHeadingLength = 10
	maxHeadingLength = 200
)

// defaultTitle is returned when the whole chain exhausts without a valid
// candidate. A blocklisted candidate never falls through to it.
const defaultTitle = "Untitled"

// titleBlocklist substrings mark error and interstitial pages. A match
// rejects the candidate outright and terminates the chain: an error-page
// title must never resolve, not even to the fallback literal.
var titleBlocklist = []string{
	"page not found",
	"attention required!",
	"access denied",
	"just a moment",
	"error 404",
}

// titleSeparators split a document title from the site name appended
// after it.
var titleSeparators = []string{" | ", " - ", " – ", " — ", " » ", " :: "}

func (e *Extractor) extractTitle(doc *goquery.Document) string {
	strategies := []func(*goquery.Document) string{
		metaContent(`meta[property="og:title"]`),
		metaContent(`meta[name="twitter:title"]`),
		titleFromStructuredData,
		textOfFirst(`article h1, article header h1, [itemprop="headline"]`),
		firstMeaningfulHeading,
		documentTitle,
		textOfFirst(".title, .article-title, .post-title, .entry-title, .headline"),
		textOfFirst("h1, h2, h3, h4, h5, h6"),
	}

	for _, strategy := range strategies {
		candidate := strings.TrimSpace(strategy(doc))
		if candidate == "" {
			continue
		}
		if blockedTitle(candidate) {
			return ""
		}
		if validTitle(candidate) {
			return candidate
		}
	}

	return defaultTitle
}

func validTitle(title string) bool {
	return len(title) > minTitleLength && len(title) < maxTitleLength
}

func blockedTitle(title string) bool {
	lower := strings.ToLower(title)
	for _, blocked := range titleBlocklist {
		if strings.Contains(lower, blocked) {
			return true
		}
	}
	return false
}

// metaContent returns a strategy reading the content attribute of the
// first element matching the selector.
func metaContent(selector string) func(*goquery.Document) string {
	return func(doc *goquery.Document) string {
		return doc.Find(selector).First().AttrOr("content", "")
	}
}

// textOfFirst returns a strategy reading the text of the first element
// matching the selector.
func textOfFirst(selector string) func(*goquery.Document) string {
	return func(doc *goquery.Document) string {
		return doc.Find(selector).First().Text()
	}
}

func titleFromStructuredData(doc *goquery.Document) string {
	for _, sd := range structuredArticles(doc) {
		for _, candidate := range []string{sd.Headline, sd.Name, sd.Title} {
			if strings.TrimSpace(candidate) != "" {
				return candidate
			}
		}
	}
	return ""
}

// firstMeaningfulHeading returns the first h1 whose text length falls
// inside the heading bounds, skipping decorative one-word headings and
// heading-shaped banners.
func firstMeaningfulHeading(doc *goquery.Document) string {
	var title string
	doc.Find("h1").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		if len(text) >= minHeadingLength && len(text) <= maxHeadingLength {
			title = text
			return false
		}
		return true
	})
	return title
}

// documentTitle returns the <title> text before the earliest separator,
// dropping the trailing site name.
func documentTitle(doc *goquery.Document) string {
	text := strings.TrimSpace(doc.Find("title").First().Text())
	if text == "" {
		return ""
	}
	cut := len(text)
	for _, sep := range titleSeparators {
		if idx := strings.Index(text, sep); idx >= 0 && idx < cut {
			cut = idx
		}
	}
	return strings.TrimSpace(text[:cut])
}
