// Package web serves the blog pages and the JSON API over echo.
package web

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/daniilsolovey/persian-blog/internal/blog"
	"github.com/daniilsolovey/persian-blog/internal/pager"
	"github.com/daniilsolovey/persian-blog/internal/view"
	"github.com/labstack/echo/v4"
)

// ArticleSource is implemented by blog.Manager.
type ArticleSource interface {
	Articles(ctx context.Context, page int) blog.ListResult
	CategoryArticles(ctx context.Context, slug string, page int) blog.ListResult
	Featured(ctx context.Context) blog.ListResult
	ArticleBySlug(ctx context.Context, slug string) blog.LookupResult
}

var _ ArticleSource = (*blog.Manager)(nil)

type Handler struct {
	articles ArticleSource
	view     *view.Adapter
	log      *slog.Logger
}

func NewHandler(articles ArticleSource, adapter *view.Adapter, log *slog.Logger) *Handler {
	return &Handler{
		articles: articles,
		view:     adapter,
		log:      log,
	}
}

type navItem struct {
	Label  string
	URL    string
	Active bool
}

// page is the root value of every HTML template.
type page struct {
	Lang      string
	Dir       string
	SiteTitle string
	Meta      view.Meta
	Nav       []navItem
	Content   any
}

type stateView struct {
	Kind      view.State
	Title     string
	Text      string
	Retry     string
	RetryURL  string
	BackURL   string
	BackLabel string
}

func (h *Handler) render(c echo.Context, status int, name string, meta view.Meta, content any) error {
	locale := h.view.Locale()
	s := locale.Strings
	path := c.Request().URL.Path

	p := page{
		Lang:      locale.HTMLLang(),
		Dir:       locale.Dir(),
		SiteTitle: h.view.Config().SiteTitle,
		Meta:      meta,
		Nav: []navItem{
			{Label: s.NavHome, URL: "/", Active: path == "/"},
			{Label: s.NavArticles, URL: "/articles", Active: path == "/articles" || strings.HasPrefix(path, "/articles/")},
			{Label: s.NavAbout, URL: "/about", Active: path == "/about"},
		},
		Content: content,
	}

	return c.Render(status, name, p)
}

// notFound renders the dedicated not-found page used for out-of-range pages and unknown routes.
func (h *Handler) notFound(c echo.Context) error {
	s := h.view.Strings()
	return h.render(c, http.StatusNotFound, pageNotFound, h.view.TitledMeta(s.PageNotFoundTitle), stateView{
		Kind:      view.StateNotFound,
		Title:     s.PageNotFoundTitle,
		Text:      s.PageNotFoundText,
		BackURL:   "/articles",
		BackLabel: s.BackToArticles,
	})
}

func (h *Handler) errorState(c echo.Context, title, message string) *stateView {
	return &stateView{
		Kind:     view.StateError,
		Title:    title,
		Text:     message,
		Retry:    h.view.Strings().Retry,
		RetryURL: c.Request().URL.RequestURI(),
	}
}

func (h *Handler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, map[string]string{"error": message})
}

// queryPage binds ?page=N. A missing value means the first page.
func queryPage(c echo.Context) (int, error) {
	page := 1
	if err := echo.QueryParamsBinder(c).Int("page", &page).BindError(); err != nil {
		return 0, err
	}
	return page, pager.Validate(page, 0)
}

// pathParam returns a decoded route parameter. echo routes on RawPath when the
// request carried escapes that Path cannot round-trip, and then leaves params raw.
func pathParam(c echo.Context, name string) string {
	v := c.Param(name)
	if c.Request().URL.RawPath == "" {
		return v
	}
	if u, err := url.PathUnescape(v); err == nil {
		return u
	}
	return v
}
