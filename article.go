package presskit

import (
	"context"
	"time"
)

// Status reports the overall outcome of one extraction call.
type Status string

// Status values. StatusDone is set exactly when Content is non-empty;
// every other field degrades independently.
const (
	StatusDone  Status = "Done"
	StatusError Status = "Error"
)

// Article holds the normalized result of one extraction call. Unresolved
// fields are represented by their zero value: an empty string or a nil
// slice stands for "no valid value found".
type Article struct {
	ID        string `json:"id,omitempty"`
	SourceURL string `json:"sourceUrl"`

	Title       string   `json:"title"`
	Authors     []string `json:"authors"`
	PublishedAt string   `json:"publishedAt"` // RFC 3339
	Images      []string `json:"images"`
	Content     string   `json:"content"`
	Language    string   `json:"language"`
	Status      Status   `json:"status"`

	// Parser names the strategy that resolved Content: "selectors",
	// "scorer", a generic parser name, "raw", or "none".
	Parser string `json:"parser"`

	// ContentHTML and ContentMarkdown are populated only when the
	// corresponding emit option is enabled.
	ContentHTML     string `json:"contentHtml,omitempty"`
	ContentMarkdown string `json:"contentMarkdown,omitempty"`

	ContentHash string    `json:"contentHash,omitempty"`
	ExtractedAt time.Time `json:"extractedAt"`
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.SourceURL == "" {
		return Errorf(EINVALID, "article source URL required")
	}
	if a.Status != StatusDone && a.Status != StatusError {
		return Errorf(EINVALID, "article status must be %q or %q", StatusDone, StatusError)
	}
	if (a.Status == StatusDone) != (a.Content != "") {
		return Errorf(EINVALID, "article status %q inconsistent with content", a.Status)
	}
	return nil
}

// ArticleService represents a service for managing stored articles.
type ArticleService interface {
	// CreateArticle persists a new article.
	CreateArticle(ctx context.Context, article *Article) error

	// FindArticleByURL retrieves the most recently stored article for a
	// source URL. Returns ENOTFOUND if no article exists.
	FindArticleByURL(ctx context.Context, sourceURL string) (*Article, error)

	// FindArticles retrieves articles matching the filter.
	FindArticles(ctx context.Context, filter ArticleFilter) ([]*Article, error)

	// DeleteArticle permanently removes an article.
	// Returns ENOTFOUND if the article does not exist.
	DeleteArticle(ctx context.Context, id string) error
}

// ArticleFilter represents a filter for FindArticles.
type ArticleFilter struct {
	ID        *string `json:"id"`
	SourceURL *string `json:"sourceUrl"`
	Status    *Status `json:"status"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
