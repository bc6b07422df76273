package goquery_test

import (
	"testing"

	pkgoquery "github.com/awalczak/presskit/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_PublishedAt(t *testing.T) {
	t.Parallel()

	ext := pkgoquery.NewExtractor()

	t.Run("structured metadata published time", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<meta property="article:published_time" content="2024-01-05T08:30:00Z">
</head><body></body></html>`

		article, err := ext.Extract(html, "https://example.com/news/story")

		require.NoError(t, err)
		assert.Equal(t, "2024-01-05T08:30:00Z", article.PublishedAt)
	})

	t.Run("json-ld datePublished", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<script type="application/ld+json">{"@type":"Article","datePublished":"2023-11-20T12:00:00Z"}</script>
</head><body></body></html>`

		article, err := ext.Extract(html, "https://example.com/news/story")

		require.NoError(t, err)
		assert.Equal(t, "2023-11-20T12:00:00Z", article.PublishedAt)
	})

	t.Run("time element from the selector scan", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><time datetime="2024-02-10">February 10, 2024</time></body></html>`

		article, err := ext.Extract(html, "https://example.com/news/story")

		require.NoError(t, err)
		assert.Equal(t, "2024-02-10T00:00:00Z", article.PublishedAt)
	})

	t.Run("url date used when metadata is absent", func(t *testing.T) {
		t.Parallel()

		article, err := ext.Extract(`<html><body></body></html>`, "https://example.com/2024/03/17/story.html")

		require.NoError(t, err)
		assert.Equal(t, "2024-03-17T00:00:00Z", article.PublishedAt)
	})

	t.Run("url date in month-day-year order", func(t *testing.T) {
		t.Parallel()

		article, err := ext.Extract(`<html><body></body></html>`, "https://example.com/news/03/17/2024/story")

		require.NoError(t, err)
		assert.Equal(t, "2024-03-17T00:00:00Z", article.PublishedAt)
	})

	t.Run("compact url date", func(t *testing.T) {
		t.Parallel()

		article, err := ext.Extract(`<html><body></body></html>`, "https://example.com/archive/20240317/story")

		require.NoError(t, err)
		assert.Equal(t, "2024-03-17T00:00:00Z", article.PublishedAt)
	})

	t.Run("url date overrides metadata on day mismatch", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<meta property="article:published_time" content="2024-01-05T00:00:00Z">
</head><body></body></html>`

		article, err := ext.Extract(html, "https://example.com/2024/01/06/story.html")

		require.NoError(t, err)
		assert.Equal(t, "2024-01-06T00:00:00Z", article.PublishedAt)
	})

	t.Run("metadata timestamp kept when days match", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<meta property="article:published_time" content="2024-01-05T08:30:00Z">
</head><body></body></html>`

		article, err := ext.Extract(html, "https://example.com/2024/01/05/story.html")

		require.NoError(t, err)
		assert.Equal(t, "2024-01-05T08:30:00Z", article.PublishedAt)
	})

	t.Run("impossible calendar dates are rejected", func(t *testing.T) {
		t.Parallel()

		article, err := ext.Extract(`<html><body></body></html>`, "https://example.com/2024-13-40/story")

		require.NoError(t, err)
		assert.Equal(t, "", article.PublishedAt)
	})

	t.Run("unparseable metadata date is skipped", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<meta property="article:published_time" content="soonish">
</head><body></body></html>`

		article, err := ext.Extract(html, "https://example.com/news/story")

		require.NoError(t, err)
		assert.Equal(t, "", article.PublishedAt)
	})
}
