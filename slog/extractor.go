// Package slog provides logging decorators for presskit services.
package slog

import (
	"log/slog"
	"time"

	"github.com/awalczak/presskit"
)

// Ensure LoggingExtractor implements presskit.ArticleExtractor.
var _ presskit.ArticleExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an ArticleExtractor with structured logging of
// extraction outcomes.
type LoggingExtractor struct {
	next   presskit.ArticleExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next presskit.ArticleExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(html, sourceURL string) (*presskit.Article, error) {
	begin := time.Now()

	article, err := e.next.Extract(html, sourceURL)
	if err != nil {
		e.logger.Error("article extraction failed",
			"url", sourceURL,
			"error", err,
			"duration", time.Since(begin),
		)
		return nil, err
	}

	e.logger.Info("article extracted",
		"url", sourceURL,
		"status", string(article.Status),
		"parser", article.Parser,
		"title", article.Title,
		"authors", len(article.Authors),
		"images", len(article.Images),
		"content_bytes", len(article.Content),
		"duration", time.Since(begin),
	)
	return article, nil
}
