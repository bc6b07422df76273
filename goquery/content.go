package goquery

import (
	"math"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Content scoring weights. The score of a candidate block is its cleaned
// text length, plus a bonus per paragraph descendant and per content
// keyword in its class/id, minus a penalty per noise keyword and a
// link-density penalty, floored at zero.
const (
	paragraphWeight  = 50
	keywordWeight    = 100
	noiseWeight      = 200
	linkDensityLimit = 0.3
	linkPenaltyScale = 100
)

// noiseSimilarity is the trigram similarity (percent, inclusive) at which
// a class/id token marks its whole subtree as noise and removes it from
// content candidacy.
const noiseSimilarity = 70

var (
	contentKeywords = []string{"content", "article", "post", "story", "text", "body"}
	noiseKeywords   = []string{"nav", "menu", "sidebar", "footer", "header", "ads", "comment"}
)

// candidateSelector enumerates the block-level containers considered as
// content blocks.
const candidateSelector = "article, main, section, div, td"

// extractContent resolves the article body. Chain: per-site selector
// override, scorer-selected block, generic parser fallbacks, the override
// retried without the length floor, and finally whatever cleaned body
// text remains. Returns the plain text, the HTML of the selected block
// when one exists, and the name of the strategy that resolved.
func (e *Extractor) extractContent(doc *goquery.Document, rawHTML, domain string) (text, contentHTML, parser string) {
	if text, html := e.contentFromSiteSelectors(doc, domain, e.opts.MinContentLength); text != "" {
		return text, html, "selectors"
	}

	if best := e.selectBest(doc); best != nil {
		if text := e.blockText(best); text != "" {
			html, _ := goquery.OuterHtml(best)
			return text, html, "scorer"
		}
	}

	for _, fallback := range e.fallbacks {
		content, err := fallback.ExtractContent(rawHTML)
		if err != nil {
			continue
		}
		if cleaned := e.cleaner.Clean(content); cleaned != "" {
			return cleaned, "", fallback.Name()
		}
	}

	// Retry the override accepting any non-empty text: a configured
	// selector beats guessing even when the block is short.
	if text, html := e.contentFromSiteSelectors(doc, domain, 1); text != "" {
		return text, html, "selectors"
	}

	if raw := e.cleaner.Clean(doc.Find("body").Text()); raw != "" {
		return raw, "", "raw"
	}

	return "", "", "none"
}

// contentFromSiteSelectors consults the per-site selector override table.
func (e *Extractor) contentFromSiteSelectors(doc *goquery.Document, domain string, minLength int) (string, string) {
	if domain == "" {
		return "", ""
	}
	for _, selector := range e.opts.SiteSelectors[domain] {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		text := e.blockText(sel)
		if text == "" || len(text) < minLength {
			continue
		}
		html, _ := goquery.OuterHtml(sel)
		return text, html
	}
	return "", ""
}

// selectBest scores every candidate container and returns the best one.
// Candidates below the minimum content length or classified as noise are
// discarded before scoring; ties keep the earlier block in document
// order. Returns nil when no candidate survives.
func (e *Extractor) selectBest(doc *goquery.Document) *goquery.Selection {
	var best *goquery.Selection
	bestScore := -1.0

	doc.Find(candidateSelector).Each(func(_ int, sel *goquery.Selection) {
		if len(strings.TrimSpace(sel.Text())) < e.opts.MinContentLength {
			return
		}
		if e.isNoise(sel) {
			return
		}
		if score := e.scoreCandidate(sel); score > bestScore {
			bestScore = score
			best = sel
		}
	})

	return best
}

// scoreCandidate computes the article-likelihood score of one block.
func (e *Extractor) scoreCandidate(sel *goquery.Selection) float64 {
	text := e.cleaner.Clean(sel.Text())

	score := float64(len(text))
	score += paragraphWeight * float64(sel.Find("p").Length())

	attrs := strings.ToLower(sel.AttrOr("class", "") + " " + sel.AttrOr("id", ""))
	for _, keyword := range contentKeywords {
		if strings.Contains(attrs, keyword) {
			score += keywordWeight
		}
	}
	for _, keyword := range noiseKeywords {
		if strings.Contains(attrs, keyword) {
			score -= noiseWeight
		}
	}

	links := sel.Find("a").Length()
	density := float64(links) / math.Max(float64(len(text))/100, 1)
	if density > linkDensityLimit {
		score -= linkPenaltyScale * density
	}

	if score < 0 {
		return 0
	}
	return score
}

// isNoise reports whether any class/id token of the block classifies
// strongly against the noise vocabulary. This is the negative use of the
// scorer pipeline: regions flagged here never become content candidates.
func (e *Extractor) isNoise(sel *goquery.Selection) bool {
	for _, token := range attributeTokens(sel) {
		for _, match := range e.noiseVocab.Score(token) {
			if match.Similarity >= noiseSimilarity {
				return true
			}
		}
	}
	return false
}

// blockText extracts cleaned plain text from a block. When links are
// excluded it works on a re-parsed copy so the caller's document tree is
// never mutated.
func (e *Extractor) blockText(sel *goquery.Selection) string {
	if e.opts.IncludeLinks {
		return e.cleaner.Clean(sel.Text())
	}

	html, err := goquery.OuterHtml(sel)
	if err != nil {
		return e.cleaner.Clean(sel.Text())
	}
	clone, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return e.cleaner.Clean(sel.Text())
	}
	clone.Find("a").Remove()
	return e.cleaner.Clean(clone.Text())
}
