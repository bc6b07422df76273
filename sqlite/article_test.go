package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/awalczak/presskit"
	"github.com/awalczak/presskit/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testArticle(sourceURL string) *presskit.Article {
	return &presskit.Article{
		SourceURL:   sourceURL,
		Title:       "Transit Budget Approved",
		Authors:     []string{"Jane Doe"},
		PublishedAt: "2024-01-05T08:30:00Z",
		Images:      []string{"https://cdn.example.com/photos/council.jpg"},
		Content:     "The council voted late on Tuesday to approve the new transit budget.",
		Language:    "en",
		Status:      presskit.StatusDone,
		Parser:      "scorer",
	}
}

func TestArticleService_CreateArticle(t *testing.T) {
	t.Parallel()

	t.Run("creates article with generated ID, hash and timestamp", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArticleService(db)
		ctx := context.Background()

		article := testArticle("https://example.com/2024/01/05/transit-budget")

		err := svc.CreateArticle(ctx, article)
		require.NoError(t, err)

		assert.NotEmpty(t, article.ID, "ID should be generated")
		assert.NotEmpty(t, article.ContentHash, "ContentHash should be generated")
		assert.False(t, article.ExtractedAt.IsZero(), "ExtractedAt should be set")
	})

	t.Run("identical content hashes identically", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArticleService(db)
		ctx := context.Background()

		a := testArticle("https://example.com/a")
		b := testArticle("https://example.com/b")

		require.NoError(t, svc.CreateArticle(ctx, a))
		require.NoError(t, svc.CreateArticle(ctx, b))

		assert.Equal(t, a.ContentHash, b.ContentHash)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("returns error for invalid article", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArticleService(db)
		ctx := context.Background()

		err := svc.CreateArticle(ctx, &presskit.Article{})
		require.Error(t, err)
		assert.Equal(t, presskit.EINVALID, presskit.ErrorCode(err))
	})
}

func TestArticleService_FindArticleByURL(t *testing.T) {
	t.Parallel()

	t.Run("returns the most recent article for the URL", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArticleService(db)
		ctx := context.Background()

		older := testArticle("https://example.com/story")
		older.Content = "First extraction pass content for the story page."
		older.ExtractedAt = time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)
		require.NoError(t, svc.CreateArticle(ctx, older))

		newer := testArticle("https://example.com/story")
		newer.Content = "Second extraction pass content for the story page."
		newer.ExtractedAt = time.Date(2024, 1, 6, 10, 0, 0, 0, time.UTC)
		require.NoError(t, svc.CreateArticle(ctx, newer))

		got, err := svc.FindArticleByURL(ctx, "https://example.com/story")
		require.NoError(t, err)
		assert.Equal(t, newer.ID, got.ID)
		assert.Equal(t, "Second extraction pass content for the story page.", got.Content)
	})

	t.Run("round-trips every field", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArticleService(db)
		ctx := context.Background()

		article := testArticle("https://example.com/story")
		article.ContentHTML = "<p>html body</p>"
		article.ContentMarkdown = "markdown body"
		article.ExtractedAt = time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)
		require.NoError(t, svc.CreateArticle(ctx, article))

		got, err := svc.FindArticleByURL(ctx, "https://example.com/story")
		require.NoError(t, err)
		assert.Equal(t, article, got)
	})

	t.Run("empty authors and images round-trip as nil", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArticleService(db)
		ctx := context.Background()

		article := testArticle("https://example.com/story")
		article.Authors = nil
		article.Images = nil
		require.NoError(t, svc.CreateArticle(ctx, article))

		got, err := svc.FindArticleByURL(ctx, "https://example.com/story")
		require.NoError(t, err)
		assert.Nil(t, got.Authors)
		assert.Nil(t, got.Images)
	})

	t.Run("returns ENOTFOUND for unknown URL", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArticleService(db)

		_, err := svc.FindArticleByURL(context.Background(), "https://example.com/absent")
		require.Error(t, err)
		assert.Equal(t, presskit.ENOTFOUND, presskit.ErrorCode(err))
	})
}

func TestArticleService_FindArticles(t *testing.T) {
	t.Parallel()

	seed := func(t *testing.T, svc *sqlite.ArticleService) (done, failed *presskit.Article) {
		t.Helper()
		ctx := context.Background()

		done = testArticle("https://example.com/done")
		done.ExtractedAt = time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)
		require.NoError(t, svc.CreateArticle(ctx, done))

		failed = testArticle("https://example.com/failed")
		failed.Content = ""
		failed.Status = presskit.StatusError
		failed.Parser = "none"
		failed.ExtractedAt = time.Date(2024, 1, 6, 10, 0, 0, 0, time.UTC)
		require.NoError(t, svc.CreateArticle(ctx, failed))

		return done, failed
	}

	t.Run("returns all articles newest first", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArticleService(db)
		done, failed := seed(t, svc)

		articles, err := svc.FindArticles(context.Background(), presskit.ArticleFilter{})
		require.NoError(t, err)
		require.Len(t, articles, 2)
		assert.Equal(t, failed.ID, articles[0].ID)
		assert.Equal(t, done.ID, articles[1].ID)
	})

	t.Run("filters by status", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArticleService(db)
		done, _ := seed(t, svc)

		status := presskit.StatusDone
		articles, err := svc.FindArticles(context.Background(), presskit.ArticleFilter{Status: &status})
		require.NoError(t, err)
		require.Len(t, articles, 1)
		assert.Equal(t, done.ID, articles[0].ID)
	})

	t.Run("filters by ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArticleService(db)
		done, _ := seed(t, svc)

		articles, err := svc.FindArticles(context.Background(), presskit.ArticleFilter{ID: &done.ID})
		require.NoError(t, err)
		require.Len(t, articles, 1)
		assert.Equal(t, done.SourceURL, articles[0].SourceURL)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArticleService(db)
		done, _ := seed(t, svc)

		articles, err := svc.FindArticles(context.Background(), presskit.ArticleFilter{Limit: 1, Offset: 1})
		require.NoError(t, err)
		require.Len(t, articles, 1)
		assert.Equal(t, done.ID, articles[0].ID)
	})
}

func TestArticleService_DeleteArticle(t *testing.T) {
	t.Parallel()

	t.Run("deletes an existing article", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArticleService(db)
		ctx := context.Background()

		article := testArticle("https://example.com/story")
		require.NoError(t, svc.CreateArticle(ctx, article))

		require.NoError(t, svc.DeleteArticle(ctx, article.ID))

		_, err := svc.FindArticleByURL(ctx, "https://example.com/story")
		assert.Equal(t, presskit.ENOTFOUND, presskit.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for unknown ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArticleService(db)

		err := svc.DeleteArticle(context.Background(), "no-such-id")
		require.Error(t, err)
		assert.Equal(t, presskit.ENOTFOUND, presskit.ErrorCode(err))
	})
}
