package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"strings"
	"time"

	"github.com/awalczak/presskit"
	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ presskit.ArticleService = (*ArticleService)(nil)

// ArticleService implements presskit.ArticleService using SQLite.
type ArticleService struct {
	db *DB
}

// NewArticleService creates a new ArticleService.
func NewArticleService(db *DB) *ArticleService {
	return &ArticleService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

const articleColumns = `id, source_url, title, authors, published_at, images, content, language, status, parser, content_html, content_markdown, content_hash, extracted_at`

// CreateArticle persists a new article.
func (s *ArticleService) CreateArticle(ctx context.Context, article *presskit.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}

	article.ID = uuid.New().String()
	if article.ExtractedAt.IsZero() {
		article.ExtractedAt = time.Now().UTC()
	}
	article.ContentHash = hashContent(article.Content)

	authors, err := marshalStrings(article.Authors)
	if err != nil {
		return err
	}
	images, err := marshalStrings(article.Images)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO articles (`+articleColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, article.ID, article.SourceURL, article.Title, authors, article.PublishedAt, images,
		article.Content, article.Language, string(article.Status), article.Parser,
		article.ContentHTML, article.ContentMarkdown, article.ContentHash,
		article.ExtractedAt.Format(time.RFC3339))

	return err
}

// FindArticleByURL retrieves the most recently stored article for a
// source URL. Returns ENOTFOUND if no article exists.
func (s *ArticleService) FindArticleByURL(ctx context.Context, sourceURL string) (*presskit.Article, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+articleColumns+`
		FROM articles
		WHERE source_url = ?
		ORDER BY extracted_at DESC, id
		LIMIT 1
	`, sourceURL)

	article, err := scanArticle(row)
	if err == sql.ErrNoRows {
		return nil, presskit.Errorf(presskit.ENOTFOUND, "article not found")
	}
	if err != nil {
		return nil, err
	}
	return article, nil
}

// FindArticles retrieves articles matching the filter, newest first.
func (s *ArticleService) FindArticles(ctx context.Context, filter presskit.ArticleFilter) ([]*presskit.Article, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + articleColumns + " FROM articles WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}
	if filter.Status != nil {
		query.WriteString(" AND status = ?")
		args = append(args, string(*filter.Status))
	}

	query.WriteString(" ORDER BY extracted_at DESC, id")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*presskit.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}

	return articles, rows.Err()
}

// DeleteArticle permanently removes an article.
func (s *ArticleService) DeleteArticle(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM articles WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return presskit.Errorf(presskit.ENOTFOUND, "article not found")
	}

	return nil
}

// scanner covers *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanArticle(row scanner) (*presskit.Article, error) {
	var article presskit.Article
	var authors, images, status, extractedAt string

	err := row.Scan(&article.ID, &article.SourceURL, &article.Title, &authors,
		&article.PublishedAt, &images, &article.Content, &article.Language, &status,
		&article.Parser, &article.ContentHTML, &article.ContentMarkdown,
		&article.ContentHash, &extractedAt)
	if err != nil {
		return nil, err
	}

	article.Status = presskit.Status(status)

	if article.Authors, err = unmarshalStrings(authors, "authors"); err != nil {
		return nil, err
	}
	if article.Images, err = unmarshalStrings(images, "images"); err != nil {
		return nil, err
	}
	if article.ExtractedAt, err = parseRFC3339(extractedAt, "extracted_at"); err != nil {
		return nil, err
	}

	return &article, nil
}
