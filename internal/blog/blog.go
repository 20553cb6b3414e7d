// Package blog turns content API envelopes into articles and tagged fetch results.
package blog

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/daniilsolovey/persian-blog/internal/cms"
	"golang.org/x/text/unicode/norm"
)

const featuredLimit = 10

var ErrNotFound = errors.New("article not found")

type Manager struct {
	cms      cms.Fetcher
	pageSize int
	log      *slog.Logger
}

func NewManager(fetcher cms.Fetcher, pageSize int, log *slog.Logger) *Manager {
	if pageSize <= 0 {
		pageSize = cms.DefaultPageSize
	}

	return &Manager{
		cms:      fetcher,
		pageSize: pageSize,
		log:      log,
	}
}

func (m *Manager) PageSize() int { return m.pageSize }

// Articles returns one page of the newest articles.
func (m *Manager) Articles(ctx context.Context, page int) ListResult {
	return m.List(ctx, ListFilter{Page: page})
}

// CategoryArticles returns one page of articles tagged with the category slug.
func (m *Manager) CategoryArticles(ctx context.Context, slug string, page int) ListResult {
	return m.List(ctx, ListFilter{Page: page, CategorySlug: normalizeSlug(slug)})
}

// Featured returns featured articles for the home carousel.
func (m *Manager) Featured(ctx context.Context) ListResult {
	return m.List(ctx, ListFilter{Page: 1, PageSize: featuredLimit, Featured: true})
}

// List never returns an error: failures are reported as ListResult with Kind Failure.
func (m *Manager) List(ctx context.Context, f ListFilter) ListResult {
	list, err := m.cms.Posts(ctx, f.query(m.pageSize))
	if err != nil {
		return ListResult{Kind: Failure, Message: failureMessage(err), Err: err}
	}

	res := ListResult{
		Articles:   NewArticles(list.Posts),
		Pagination: NewPagination(list.Pagination),
	}
	if len(res.Articles) == 0 {
		res.Kind = Empty
	}

	return res
}

// ArticleBySlug returns the first article with the slug, or NotFound when none matches.
func (m *Manager) ArticleBySlug(ctx context.Context, slug string) LookupResult {
	slug = normalizeSlug(slug)
	if slug == "" {
		return LookupResult{Kind: NotFound, Err: ErrNotFound}
	}

	q := cms.Query{Page: 1, PageSize: 1, Populate: cms.PopulateAll}.Eq("slug", slug)
	list, err := m.cms.Posts(ctx, q)
	if err != nil {
		return LookupResult{Kind: LookupFailure, Message: failureMessage(err), Err: err}
	}

	if len(list.Posts) == 0 {
		m.log.DebugContext(ctx, "article not found", "slug", slug)
		return LookupResult{Kind: NotFound, Err: ErrNotFound}
	}

	article := NewArticle(&list.Posts[0])
	return LookupResult{Kind: Found, Article: &article}
}

func failureMessage(err error) string {
	var cmsErr *cms.Error
	if errors.As(err, &cmsErr) && cmsErr.Message != "" {
		return cmsErr.Message
	}
	return cms.GenericMessage
}

// normalizeSlug composes Persian slugs to NFC so visually equal slugs match.
func normalizeSlug(slug string) string {
	return norm.NFC.String(strings.TrimSpace(slug))
}
