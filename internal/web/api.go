package web

import (
	"net/http"

	"github.com/daniilsolovey/persian-blog/internal/blog"
	"github.com/daniilsolovey/persian-blog/internal/pager"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

// ListArticles handles GET /api/v1/articles
// @Summary List articles
// @Description Returns one page of articles sorted by publishedAt DESC, without content
// @Tags articles
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Success 200 {object} web.ArticleList
// @Failure 404,502 {object} map[string]string
// @Router /api/v1/articles [get]
func (h *Handler) ListArticles(c echo.Context) error {
	page, err := queryPage(c)
	if err != nil {
		return h.handleError(c, err, http.StatusNotFound, "page not found")
	}

	res := h.articles.Articles(c.Request().Context(), page)
	if res.Kind == blog.Failure {
		return h.handleError(c, res.Err, http.StatusBadGateway, res.Message)
	}
	if err := pager.Validate(page, res.Pagination.PageCount); err != nil {
		return h.handleError(c, err, http.StatusNotFound, "page not found")
	}

	return c.JSON(http.StatusOK, NewArticleList(res, h.view))
}

// FeaturedArticles handles GET /api/v1/articles/featured
// @Summary List featured articles
// @Description Returns articles flagged as featured, without content
// @Tags articles
// @Produce json
// @Success 200 {object} web.ArticleList
// @Failure 502 {object} map[string]string
// @Router /api/v1/articles/featured [get]
func (h *Handler) FeaturedArticles(c echo.Context) error {
	res := h.articles.Featured(c.Request().Context())
	if res.Kind == blog.Failure {
		return h.handleError(c, res.Err, http.StatusBadGateway, res.Message)
	}

	return c.JSON(http.StatusOK, NewArticleList(res, h.view))
}

// ArticleBySlug handles GET /api/v1/articles/:slug
// @Summary Get article by slug
// @Description Retrieves a single article with markdown content, SEO block and categories
// @Tags articles
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} web.Article
// @Failure 404,502 {object} map[string]string
// @Router /api/v1/articles/{slug} [get]
func (h *Handler) ArticleBySlug(c echo.Context) error {
	res := h.articles.ArticleBySlug(c.Request().Context(), pathParam(c, "slug"))

	switch res.Kind {
	case blog.LookupFailure:
		return h.handleError(c, res.Err, http.StatusBadGateway, res.Message)
	case blog.NotFound:
		return h.handleError(c, res.Err, http.StatusNotFound, "article not found")
	}

	return c.JSON(http.StatusOK, NewArticle(*res.Article, h.view))
}

func (h *Handler) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleSwagger(c echo.Context) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return h.handleError(c, err, http.StatusNotFound, "swagger document not registered")
	}

	return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, []byte(doc))
}
