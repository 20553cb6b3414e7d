package rpc

import (
	"context"
	"net/http"
	"strings"

	"github.com/daniilsolovey/persian-blog/internal/blog"
	"github.com/daniilsolovey/persian-blog/internal/pager"
	"github.com/vmkteam/zenrpc/v2"
)

// ArticleService provides RPC methods over the CMS posts collection.
type ArticleService struct {
	zenrpc.Service
	manager *blog.Manager
}

func NewArticleService(manager *blog.Manager) *ArticleService {
	return &ArticleService{manager: manager}
}

// List retrieves one page of articles, optionally within a category.
// Returns summaries (without content) sorted by publishedAt DESC.
//
//zenrpc:filter page and category filter
//zenrpc:return list of article summaries with pagination
//zenrpc:404 page not found
//zenrpc:502 content API failure
func (s *ArticleService) List(ctx context.Context, filter ArticleFilter) (*ArticleList, error) {
	page := 1
	if filter.Page != nil {
		page = *filter.Page
	}
	if err := pager.Validate(page, 0); err != nil {
		return nil, zenrpc.NewStringError(http.StatusNotFound, "page not found")
	}

	var res blog.ListResult
	if filter.Category != nil && strings.TrimSpace(*filter.Category) != "" {
		res = s.manager.CategoryArticles(ctx, *filter.Category, page)
	} else {
		res = s.manager.Articles(ctx, page)
	}
	if res.Kind == blog.Failure {
		return nil, zenrpc.NewStringError(http.StatusBadGateway, res.Message)
	}
	if err := pager.Validate(page, res.Pagination.PageCount); err != nil {
		return nil, zenrpc.NewStringError(http.StatusNotFound, "page not found")
	}

	list := NewArticleList(res)
	return &list, nil
}

// Featured retrieves the newest featured articles.
//
//zenrpc:return list of featured article summaries
//zenrpc:502 content API failure
func (s *ArticleService) Featured(ctx context.Context) (*ArticleList, error) {
	res := s.manager.Featured(ctx)
	if res.Kind == blog.Failure {
		return nil, zenrpc.NewStringError(http.StatusBadGateway, res.Message)
	}

	list := NewArticleList(res)
	return &list, nil
}

// BySlug retrieves a single article with markdown content, SEO block and categories.
//
//zenrpc:req article slug
//zenrpc:return article with full content
//zenrpc:400 slug is required
//zenrpc:404 article not found
//zenrpc:502 content API failure
func (s *ArticleService) BySlug(ctx context.Context, req ArticleBySlugRequest) (*Article, error) {
	if strings.TrimSpace(req.Slug) == "" {
		return nil, zenrpc.NewStringError(http.StatusBadRequest, "slug is required")
	}

	res := s.manager.ArticleBySlug(ctx, req.Slug)
	switch res.Kind {
	case blog.LookupFailure:
		return nil, zenrpc.NewStringError(http.StatusBadGateway, res.Message)
	case blog.NotFound:
		return nil, zenrpc.NewStringError(http.StatusNotFound, "article not found")
	}

	article := NewArticle(*res.Article)
	return &article, nil
}
