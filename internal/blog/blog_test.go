package blog

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/daniilsolovey/persian-blog/internal/cms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubFetcher is a manual stub implementation of cms.Fetcher for testing
type stubFetcher struct {
	postsFunc func(ctx context.Context, q cms.Query) (*cms.PostList, error)
}

func (s *stubFetcher) Posts(ctx context.Context, q cms.Query) (*cms.PostList, error) {
	if s.postsFunc != nil {
		return s.postsFunc(ctx, q)
	}
	return &cms.PostList{Pagination: cms.Pagination{Page: 1}}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestManager_Articles(t *testing.T) {
	publishedAt := time.Date(2024, 1, 14, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		postsFunc func(ctx context.Context, q cms.Query) (*cms.PostList, error)
		wantKind  ResultKind
		wantLen   int
		wantMsg   string
	}{
		{
			name: "success",
			postsFunc: func(ctx context.Context, q cms.Query) (*cms.PostList, error) {
				return &cms.PostList{
					Posts: []cms.Post{
						{ID: 1, Title: "یک", Slug: "one", PublishedAt: publishedAt},
						{ID: 2, Title: "دو", Slug: "two", PublishedAt: publishedAt},
					},
					Pagination: cms.Pagination{Page: 1, PageSize: 6, PageCount: 1, Total: 2},
				}, nil
			},
			wantKind: Success,
			wantLen:  2,
		},
		{
			name: "empty is not failure",
			postsFunc: func(ctx context.Context, q cms.Query) (*cms.PostList, error) {
				return &cms.PostList{Pagination: cms.Pagination{Page: 1, PageSize: 6}}, nil
			},
			wantKind: Empty,
		},
		{
			name: "failure carries api message",
			postsFunc: func(ctx context.Context, q cms.Query) (*cms.PostList, error) {
				return nil, &cms.Error{StatusCode: 500, Message: "Internal Server Error", Err: cms.ErrUnexpectedStatusCode}
			},
			wantKind: Failure,
			wantMsg:  "Internal Server Error",
		},
		{
			name: "foreign error gets generic message",
			postsFunc: func(ctx context.Context, q cms.Query) (*cms.PostList, error) {
				return nil, errors.New("boom")
			},
			wantKind: Failure,
			wantMsg:  cms.GenericMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager := NewManager(&stubFetcher{postsFunc: tt.postsFunc}, 6, discardLogger())

			res := manager.Articles(context.Background(), 1)
			assert.Equal(t, tt.wantKind, res.Kind)
			assert.Len(t, res.Articles, tt.wantLen)
			assert.Equal(t, tt.wantMsg, res.Message)
			if tt.wantKind == Failure {
				assert.Error(t, res.Err)
			} else {
				assert.NoError(t, res.Err)
			}
		})
	}
}

func TestManager_Queries(t *testing.T) {
	var got cms.Query
	fetcher := &stubFetcher{postsFunc: func(ctx context.Context, q cms.Query) (*cms.PostList, error) {
		got = q
		return &cms.PostList{Pagination: cms.Pagination{Page: 1}}, nil
	}}
	manager := NewManager(fetcher, 6, discardLogger())
	ctx := context.Background()

	t.Run("Articles", func(t *testing.T) {
		manager.Articles(ctx, 3)
		v := got.Values()
		assert.Equal(t, "3", v.Get("pagination[page]"))
		assert.Equal(t, "6", v.Get("pagination[pageSize]"))
		assert.Equal(t, "*", v.Get("populate"))
		assert.Equal(t, "publishedAt:desc", v.Get("sort[0]"))
	})

	t.Run("CategoryArticles", func(t *testing.T) {
		manager.CategoryArticles(ctx, " macro ", 2)
		v := got.Values()
		assert.Equal(t, "macro", v.Get("filters[categories][slug][$eq]"))
		assert.Equal(t, "2", v.Get("pagination[page]"))
	})

	t.Run("Featured", func(t *testing.T) {
		manager.Featured(ctx)
		v := got.Values()
		assert.Equal(t, "true", v.Get("filters[is_featured][$eq]"))
		assert.Equal(t, strconv.Itoa(featuredLimit), v.Get("pagination[pageSize]"))
	})

	t.Run("ArticleBySlugNormalizesToNFC", func(t *testing.T) {
		// "آ" written as alef + combining madda composes to U+0622.
		manager.ArticleBySlug(ctx, "\u0627\u0653موزش")
		assert.Equal(t, "\u0622موزش", got.Values().Get("filters[slug][$eq]"))
	})
}

func TestManager_ArticleBySlug(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		fetcher := &stubFetcher{postsFunc: func(ctx context.Context, q cms.Query) (*cms.PostList, error) {
			return &cms.PostList{
				Posts: []cms.Post{
					{ID: 1, Slug: "first", SEO: &cms.SEO{MetaTitle: "m"}},
					{ID: 2, Slug: "first"},
				},
				Pagination: cms.Pagination{Page: 1, PageSize: 1, PageCount: 2, Total: 2},
			}, nil
		}}

		res := NewManager(fetcher, 6, discardLogger()).ArticleBySlug(ctx, "first")
		require.Equal(t, Found, res.Kind)
		require.NotNil(t, res.Article)
		assert.Equal(t, 1, res.Article.ID)
		require.NotNil(t, res.Article.SEO)
		assert.Equal(t, "m", res.Article.SEO.MetaTitle)
	})

	t.Run("NotFoundIsNotFailure", func(t *testing.T) {
		res := NewManager(&stubFetcher{}, 6, discardLogger()).ArticleBySlug(ctx, "missing")
		assert.Equal(t, NotFound, res.Kind)
		assert.Nil(t, res.Article)
		assert.ErrorIs(t, res.Err, ErrNotFound)
	})

	t.Run("EmptySlugSkipsFetch", func(t *testing.T) {
		called := false
		fetcher := &stubFetcher{postsFunc: func(ctx context.Context, q cms.Query) (*cms.PostList, error) {
			called = true
			return nil, nil
		}}

		res := NewManager(fetcher, 6, discardLogger()).ArticleBySlug(ctx, "  ")
		assert.Equal(t, NotFound, res.Kind)
		assert.False(t, called)
	})

	t.Run("Failure", func(t *testing.T) {
		fetcher := &stubFetcher{postsFunc: func(ctx context.Context, q cms.Query) (*cms.PostList, error) {
			return nil, &cms.Error{Message: cms.GenericMessage, Err: cms.ErrTransport}
		}}

		res := NewManager(fetcher, 6, discardLogger()).ArticleBySlug(ctx, "x")
		assert.Equal(t, LookupFailure, res.Kind)
		assert.Equal(t, cms.GenericMessage, res.Message)
		assert.ErrorIs(t, res.Err, cms.ErrTransport)
	})
}

func TestNewArticle(t *testing.T) {
	post := cms.Post{
		ID:    5,
		Title: "عنوان",
		CoverImage: &cms.Media{
			URL: "/uploads/a.jpg",
			Formats: map[string]cms.MediaFormat{
				"medium": {URL: "/uploads/medium_a.jpg"},
				"small":  {URL: ""},
			},
		},
		Categories: []cms.Category{{ID: 1, Name: "الف", Slug: "a"}, {ID: 2, Name: "ب", Slug: "b"}},
	}

	article := NewArticle(&post)
	assert.Nil(t, article.SEO)
	require.NotNil(t, article.Cover)
	assert.Equal(t, "/uploads/a.jpg", article.Cover.URL)
	assert.Equal(t, map[string]string{"medium": "/uploads/medium_a.jpg"}, article.Cover.Formats)
	assert.Equal(t, Categories{{ID: 1, Name: "الف", Slug: "a"}, {ID: 2, Name: "ب", Slug: "b"}}, article.Categories)

	c, ok := Articles{article}.CategoryBySlug("b")
	assert.True(t, ok)
	assert.Equal(t, "ب", c.Name)

	assert.Nil(t, NewCoverImage(&cms.Media{}))
	assert.Nil(t, NewCoverImage(nil))
}

// strapiStub serves a posts collection of total items with Strapi paging rules.
func strapiStub(t *testing.T, total int) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("pagination[page]"))
		size, _ := strconv.Atoi(r.URL.Query().Get("pagination[pageSize]"))
		pageCount := (total + size - 1) / size

		posts := []cms.Post{}
		for i := (page - 1) * size; i < page*size && i < total; i++ {
			posts = append(posts, cms.Post{
				ID:          i + 1,
				Title:       "مقاله " + strconv.Itoa(i+1),
				Slug:        "post-" + strconv.Itoa(i+1),
				PublishedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(-i) * time.Hour),
			})
		}

		resp := map[string]any{
			"data": posts,
			"meta": map[string]any{"pagination": cms.Pagination{Page: page, PageSize: size, PageCount: pageCount, Total: total}},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)

	return srv
}

func TestManager_Articles_EndToEnd(t *testing.T) {
	srv := strapiStub(t, 30)
	client := cms.New(srv.URL, discardLogger())
	manager := NewManager(client, 6, discardLogger())

	res := manager.Articles(context.Background(), 3)
	require.Equal(t, Success, res.Kind)
	assert.Len(t, res.Articles, 6)
	assert.Equal(t, 3, res.Pagination.Page)
	assert.Equal(t, 5, res.Pagination.PageCount)
	assert.Equal(t, 30, res.Pagination.Total)
	assert.Equal(t, "post-13", res.Articles[0].Slug)
}
