package goquery

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// structuredData holds the subset of schema.org Article fields the
// extraction chains consume. Loosely typed fields (@type, author, image)
// appear as strings, objects, or arrays in the wild.
type structuredData struct {
	Type          any    `json:"@type"`
	Headline      string `json:"headline"`
	Name          string `json:"name"`
	Title         string `json:"title"`
	Author        any    `json:"author"`
	DatePublished string `json:"datePublished"`
	Image         any    `json:"image"`
}

// structuredArticles returns every article-typed JSON-LD block in the
// document, in document order. Malformed blocks are skipped.
func structuredArticles(doc *goquery.Document) []structuredData {
	var articles []structuredData

	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, sel *goquery.Selection) {
		raw := strings.TrimSpace(sel.Text())
		if raw == "" {
			return
		}

		var single structuredData
		if err := json.Unmarshal([]byte(raw), &single); err == nil {
			if isArticleType(single.Type) {
				articles = append(articles, single)
			}
			return
		}

		var many []structuredData
		if err := json.Unmarshal([]byte(raw), &many); err == nil {
			for _, sd := range many {
				if isArticleType(sd.Type) {
					articles = append(articles, sd)
				}
			}
		}
	})

	return articles
}

// isArticleType reports whether a JSON-LD @type denotes an article.
// Handles both a single type string and an array of them.
func isArticleType(typeField any) bool {
	switch v := typeField.(type) {
	case string:
		lower := strings.ToLower(v)
		return strings.Contains(lower, "article") || strings.Contains(lower, "blogposting")
	case []any:
		for _, entry := range v {
			if s, ok := entry.(string); ok && isArticleType(s) {
				return true
			}
		}
	}
	return false
}

// structuredStrings flattens a loosely typed JSON-LD value into the
// strings it carries: a plain string, an object's "name" or "url", or an
// array of either.
func structuredStrings(value any, key string) []string {
	switch v := value.(type) {
	case string:
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return []string{trimmed}
		}
	case map[string]any:
		if s, ok := v[key].(string); ok && strings.TrimSpace(s) != "" {
			return []string{strings.TrimSpace(s)}
		}
	case []any:
		var out []string
		for _, entry := range v {
			out = append(out, structuredStrings(entry, key)...)
		}
		return out
	}
	return nil
}
