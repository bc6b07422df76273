package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// badLeadImage voids the ENTIRE image list when it matches the first
// surviving URL, not just that entry: a leading logo or icon means the
// page exposed no real top image, so the rest of the list is site chrome
// too. The asymmetry is deliberate and load-bearing.
var badLeadImage = regexp.MustCompile(`(?i)logo|favicon|icon|pdf`)

// imageMetaSelectors carry the structured top-image declarations, in
// priority order.
var imageMetaSelectors = []string{
	`meta[property="og:image"]`,
	`meta[property="og:image:url"]`,
	`meta[name="twitter:image"]`,
}

func (e *Extractor) extractImages(doc *goquery.Document) []string {
	var candidates []string

	for _, selector := range imageMetaSelectors {
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			candidates = append(candidates, sel.AttrOr("content", ""))
		})
	}
	for _, sd := range structuredArticles(doc) {
		candidates = append(candidates, structuredStrings(sd.Image, "url")...)
	}
	doc.Find(`link[rel="image_src"]`).Each(func(_ int, sel *goquery.Selection) {
		candidates = append(candidates, sel.AttrOr("href", ""))
	})

	urls := make([]string, 0, len(candidates))
	seen := make(map[string]bool)
	for _, candidate := range candidates {
		candidate = strings.TrimSpace(candidate)
		lower := strings.ToLower(candidate)
		if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
			continue
		}
		if seen[candidate] {
			continue
		}
		seen[candidate] = true
		urls = append(urls, candidate)
	}

	if len(urls) > 0 && badLeadImage.MatchString(urls[0]) {
		return []string{}
	}
	return urls
}
