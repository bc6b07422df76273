// Package mock provides hand-written mocks for the presskit service
// interfaces. Each mock delegates to function fields so tests can stub
// exactly the calls they care about.
package mock

import (
	"context"
	"time"

	"github.com/awalczak/presskit"
)

var _ presskit.ArticleExtractor = (*ArticleExtractor)(nil)

type ArticleExtractor struct {
	ExtractFn func(html, sourceURL string) (*presskit.Article, error)
}

func (m *ArticleExtractor) Extract(html, sourceURL string) (*presskit.Article, error) {
	return m.ExtractFn(html, sourceURL)
}

var _ presskit.ContentExtractor = (*ContentExtractor)(nil)

type ContentExtractor struct {
	NameFn           func() string
	ExtractContentFn func(html string) (string, error)
}

func (m *ContentExtractor) Name() string {
	return m.NameFn()
}

func (m *ContentExtractor) ExtractContent(html string) (string, error) {
	return m.ExtractContentFn(html)
}

var _ presskit.Converter = (*Converter)(nil)

type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (m *Converter) Convert(html string) (string, error) {
	return m.ConvertFn(html)
}

var _ presskit.DateParser = (*DateParser)(nil)

type DateParser struct {
	ParseFn func(value string) (time.Time, error)
}

func (m *DateParser) Parse(value string) (time.Time, error) {
	return m.ParseFn(value)
}

var _ presskit.Fetcher = (*Fetcher)(nil)

type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (m *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return m.FetchFn(ctx, url)
}

func (m *Fetcher) Close() error {
	if m.CloseFn == nil {
		return nil
	}
	return m.CloseFn()
}

var _ presskit.ArticleService = (*ArticleService)(nil)

type ArticleService struct {
	CreateArticleFn    func(ctx context.Context, article *presskit.Article) error
	FindArticleByURLFn func(ctx context.Context, sourceURL string) (*presskit.Article, error)
	FindArticlesFn     func(ctx context.Context, filter presskit.ArticleFilter) ([]*presskit.Article, error)
	DeleteArticleFn    func(ctx context.Context, id string) error
}

func (m *ArticleService) CreateArticle(ctx context.Context, article *presskit.Article) error {
	return m.CreateArticleFn(ctx, article)
}

func (m *ArticleService) FindArticleByURL(ctx context.Context, sourceURL string) (*presskit.Article, error) {
	return m.FindArticleByURLFn(ctx, sourceURL)
}

func (m *ArticleService) FindArticles(ctx context.Context, filter presskit.ArticleFilter) ([]*presskit.Article, error) {
	return m.FindArticlesFn(ctx, filter)
}

func (m *ArticleService) DeleteArticle(ctx context.Context, id string) error {
	return m.DeleteArticleFn(ctx, id)
}
