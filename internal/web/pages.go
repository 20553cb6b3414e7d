package web

import (
	"fmt"
	"net/http"

	"github.com/daniilsolovey/persian-blog/internal/blog"
	"github.com/daniilsolovey/persian-blog/internal/pager"
	"github.com/daniilsolovey/persian-blog/internal/view"
	"github.com/labstack/echo/v4"
)

type homeContent struct {
	AboutTitle      string
	AboutText       string
	FeaturedHeading string
	Slides          []view.Slide
}

type pagerView struct {
	pager.Pager
	PrevLabel string
	NextLabel string
	Info      string
}

type listContent struct {
	Heading       string
	Intro         string
	State         *stateView
	Cards         []view.Card
	Pager         pagerView
	FeaturedLabel string
	ReadMoreLabel string
}

type articleContent struct {
	State     *stateView
	Detail    view.Detail
	MoreLabel string
}

// Home renders the about blurb and the featured carousel. A failed featured
// fetch only hides the carousel.
func (h *Handler) Home(c echo.Context) error {
	ctx := c.Request().Context()
	s := h.view.Strings()

	content := homeContent{
		AboutTitle:      s.AboutTitle,
		AboutText:       s.AboutText,
		FeaturedHeading: s.FeaturedHeading,
	}

	res := h.articles.Featured(ctx)
	switch view.Resolve(res) {
	case view.StateError:
		h.log.ErrorContext(ctx, "load featured articles", "error", res.Err)
	case view.StatePopulated:
		content.Slides = h.view.Slides(res.Articles)
	}

	return h.render(c, http.StatusOK, pageHome, h.view.SiteMeta(), content)
}

func (h *Handler) About(c echo.Context) error {
	s := h.view.Strings()
	return h.render(c, http.StatusOK, pageAbout, h.view.TitledMeta(s.AboutTitle), homeContent{
		AboutTitle: s.AboutTitle,
		AboutText:  s.AboutText,
	})
}

// Articles renders GET /articles?page=N.
func (h *Handler) Articles(c echo.Context) error {
	page, err := queryPage(c)
	if err != nil {
		return h.notFound(c)
	}

	s := h.view.Strings()
	res := h.articles.Articles(c.Request().Context(), page)

	return h.renderList(c, res, page, "/articles", listContent{
		Heading: s.ListTitle,
		Intro:   s.ListIntro,
	})
}

// Category renders GET /categories/:slug?page=N.
func (h *Handler) Category(c echo.Context) error {
	slug := pathParam(c, "slug")
	page, err := queryPage(c)
	if err != nil || slug == "" {
		return h.notFound(c)
	}

	s := h.view.Strings()
	res := h.articles.CategoryArticles(c.Request().Context(), slug, page)

	name := slug
	if cat, ok := res.Articles.CategoryBySlug(slug); ok && cat.Name != "" {
		name = cat.Name
	}

	return h.renderList(c, res, page, view.CategoryPath(slug), listContent{
		Heading: fmt.Sprintf(s.CategoryTitle, name),
	})
}

func (h *Handler) renderList(c echo.Context, res blog.ListResult, page int, basePath string, content listContent) error {
	s := h.view.Strings()
	locale := h.view.Locale()
	meta := h.view.ListingMeta(basePath)

	content.FeaturedLabel = s.Featured
	content.ReadMoreLabel = s.ReadMore

	switch view.Resolve(res) {
	case view.StateError:
		content.State = h.errorState(c, s.ListErrorTitle, res.Message)
		return h.render(c, http.StatusBadGateway, pageArticles, meta, content)
	case view.StateEmpty:
		if err := pager.Validate(page, res.Pagination.PageCount); err != nil {
			return h.notFound(c)
		}
		content.State = &stateView{Kind: view.StateEmpty, Title: s.EmptyTitle, Text: s.EmptyText}
		return h.render(c, http.StatusOK, pageArticles, meta, content)
	}

	p := res.Pagination
	if err := pager.Validate(page, p.PageCount); err != nil {
		return h.notFound(c)
	}

	content.Cards = h.view.Cards(res.Articles)
	content.Pager = pagerView{
		Pager:     pager.New(page, p.PageCount, p.Total, basePath),
		PrevLabel: s.Prev,
		NextLabel: s.Next,
		Info:      fmt.Sprintf(s.PageInfo, locale.Number(page), locale.Number(p.PageCount), locale.Number(p.Total)),
	}

	return h.render(c, http.StatusOK, pageArticles, meta, content)
}

// Article renders GET /articles/:slug. A missing slug keeps the article layout
// with an inline not-found card.
func (h *Handler) Article(c echo.Context) error {
	ctx := c.Request().Context()
	s := h.view.Strings()
	res := h.articles.ArticleBySlug(ctx, pathParam(c, "slug"))
	content := articleContent{MoreLabel: s.MoreArticles}
	meta := h.view.ArticleMeta(res.Article)

	switch view.ResolveLookup(res) {
	case view.StateError:
		content.State = h.errorState(c, s.ErrorTitle, res.Message)
		return h.render(c, http.StatusBadGateway, pageArticle, meta, content)
	case view.StateNotFound:
		content.State = &stateView{
			Kind:      view.StateNotFound,
			Title:     s.NotFoundTitle,
			Text:      s.ArticleNotFoundText,
			BackURL:   "/articles",
			BackLabel: s.BackToArticles,
		}
		return h.render(c, http.StatusNotFound, pageArticle, meta, content)
	}

	detail, err := h.view.Detail(*res.Article)
	if err != nil {
		h.log.ErrorContext(ctx, "render article", "slug", res.Article.Slug, "error", err)
		content.State = h.errorState(c, s.ErrorTitle, err.Error())
		return h.render(c, http.StatusInternalServerError, pageArticle, meta, content)
	}
	content.Detail = detail

	return h.render(c, http.StatusOK, pageArticle, meta, content)
}
