package goquery

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// publishedTimeSelectors carry the explicit machine-readable publish
// timestamp and are tried first.
var publishedTimeSelectors = []string{
	`meta[property="article:published_time"]`,
	`meta[name="article:published_time"]`,
	`meta[itemprop="datePublished"]`,
}

// siteDateSelectors is the fixed per-site scan list: looser meta
// conventions, time elements, and visible date classes.
var siteDateSelectors = []string{
	`meta[name="pubdate"]`,
	`meta[name="publishdate"]`,
	`meta[name="date"]`,
	`meta[name="dc.date.issued"]`,
	"time[datetime]",
	"time[pubdate]",
	".date", ".published", ".post-date", ".article-date", ".entry-date", ".timestamp",
}

// urlDatePatterns match a calendar date embedded in a URL path, in the
// group order year, month, day.
var urlDatePatterns = []struct {
	re    *regexp.Regexp
	order [3]int // submatch index of year, month, day
}{
	{regexp.MustCompile(`(?:^|[/_-])(\d{4})-(\d{2})-(\d{2})(?:[/._-]|$)`), [3]int{1, 2, 3}},
	{regexp.MustCompile(`(?:^|/)(\d{4})/(\d{2})/(\d{2})(?:/|$)`), [3]int{1, 2, 3}},
	{regexp.MustCompile(`(?:^|/)(\d{2})/(\d{2})/(\d{4})(?:/|$)`), [3]int{3, 1, 2}},
	{regexp.MustCompile(`(?:^|[/_-])((?:19|20)\d{2})(\d{2})(\d{2})(?:[/._-]|$)`), [3]int{1, 2, 3}},
}

// fallbackDateLayouts validate candidate dates when no DateParser is
// configured.
var fallbackDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"02 Jan 2006",
}

// extractPublishedAt resolves the publish date from metadata first, then
// the per-site selector scan, then the URL path. When both a metadata
// date and a URL-derived date exist, the URL date wins only if their
// calendar-day components differ; matching days keep the (more precise)
// metadata timestamp.
func (e *Extractor) extractPublishedAt(doc *goquery.Document, sourceURL string) string {
	resolved := e.dateFromMetadata(doc)
	if resolved == "" {
		resolved = e.dateFromSelectors(doc)
	}
	urlDate := dateFromURL(sourceURL)

	switch {
	case resolved == "":
		return urlDate
	case urlDate == "":
		return resolved
	case resolved[:10] != urlDate[:10]:
		return urlDate
	default:
		return resolved
	}
}

func (e *Extractor) dateFromMetadata(doc *goquery.Document) string {
	for _, sd := range structuredArticles(doc) {
		if formatted, ok := e.parseDate(sd.DatePublished); ok {
			return formatted
		}
	}
	for _, selector := range publishedTimeSelectors {
		if formatted, ok := e.parseDate(doc.Find(selector).First().AttrOr("content", "")); ok {
			return formatted
		}
	}
	return ""
}

func (e *Extractor) dateFromSelectors(doc *goquery.Document) string {
	for _, selector := range siteDateSelectors {
		var found string
		doc.Find(selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			candidates := []string{
				sel.AttrOr("content", ""),
				sel.AttrOr("datetime", ""),
				sel.Text(),
			}
			for _, candidate := range candidates {
				if formatted, ok := e.parseDate(candidate); ok {
					found = formatted
					return false
				}
			}
			return true
		})
		if found != "" {
			return found
		}
	}
	return ""
}

// parseDate validates a candidate date string and normalizes it to
// RFC 3339 in UTC. The configured DateParser decides validity when
// present; otherwise a fixed set of common layouts is accepted.
func (e *Extractor) parseDate(value string) (string, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}

	if e.dates != nil {
		t, err := e.dates.Parse(value)
		if err != nil {
			return "", false
		}
		return t.UTC().Format(time.RFC3339), true
	}

	for _, layout := range fallbackDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC().Format(time.RFC3339), true
		}
	}
	return "", false
}

// dateFromURL scans the URL path for an embedded calendar date and
// returns it as RFC 3339 at midnight UTC.
func dateFromURL(sourceURL string) string {
	path := sourceURL
	if u, err := url.Parse(sourceURL); err == nil && u.Path != "" {
		path = u.Path
	}

	for _, pattern := range urlDatePatterns {
		match := pattern.re.FindStringSubmatch(path)
		if match == nil {
			continue
		}
		year, _ := strconv.Atoi(match[pattern.order[0]])
		month, _ := strconv.Atoi(match[pattern.order[1]])
		day, _ := strconv.Atoi(match[pattern.order[2]])

		t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		// time.Date normalizes out-of-range components; a mismatch after
		// round-tripping means the matched digits were not a real date.
		if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
			continue
		}
		return t.Format(time.RFC3339)
	}
	return ""
}
