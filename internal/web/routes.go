package web

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	// API paths
	apiV1Prefix = "/api/v1"

	articlesAPIPath      = apiV1Prefix + "/articles"
	featuredAPIPath      = apiV1Prefix + "/articles/featured"
	articleBySlugAPIPath = apiV1Prefix + "/articles/:slug"

	// Page paths
	homePath     = "/"
	articlesPath = "/articles"
	articlePath  = "/articles/:slug"
	categoryPath = "/categories/:slug"
	aboutPath    = "/about"

	healthPath      = "/health"
	swaggerPath     = "/swagger/doc.json"
	staticPath      = "/static"
	placeholderPath = "/placeholder.svg"
)

// RegisterRoutes builds the echo instance with every page and API route.
// Extra middleware runs inside Recover and before routing.
func (h *Handler) RegisterRoutes(renderer echo.Renderer, extra ...echo.MiddlewareFunc) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer
	e.HTTPErrorHandler = h.errorHandler(e)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.Secure())
	e.Use(middleware.Gzip())
	e.Use(h.loggingMiddleware)
	e.Use(extra...)

	h.registerPageRoutes(e)
	h.registerAPIRoutes(e)
	h.registerHealthCheck(e)
	h.registerStaticRoutes(e)

	return e
}

func (h *Handler) registerPageRoutes(e *echo.Echo) {
	e.GET(homePath, h.Home, noStore)
	e.GET(articlesPath, h.Articles, noStore)
	e.GET(articlePath, h.Article, noStore)
	e.GET(categoryPath, h.Category, noStore)
	e.GET(aboutPath, h.About, noStore)
}

func (h *Handler) registerAPIRoutes(e *echo.Echo) {
	e.GET(articlesAPIPath, h.ListArticles, noStore)
	e.GET(featuredAPIPath, h.FeaturedArticles, noStore)
	e.GET(articleBySlugAPIPath, h.ArticleBySlug, noStore)
	e.GET(swaggerPath, h.handleSwagger)
}

func (h *Handler) registerHealthCheck(e *echo.Echo) {
	e.GET(healthPath, h.handleHealth)
}

func (h *Handler) registerStaticRoutes(e *echo.Echo) {
	static := staticFiles()
	e.StaticFS(staticPath, static)
	e.FileFS(placeholderPath, "placeholder.svg", static)
}

// noStore disables client and proxy caching.
func noStore(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
		return next(c)
	}
}

func (h *Handler) loggingMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		req := c.Request()
		h.log.Info("HTTP request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", c.Response().Status,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", c.RealIP(),
			"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
		)

		return nil
	}
}

// errorHandler renders the not-found page for unknown HTML routes and defers to echo otherwise.
func (h *Handler) errorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) && he.Code == http.StatusNotFound && !strings.HasPrefix(c.Request().URL.Path, apiV1Prefix) {
			if rerr := h.notFound(c); rerr != nil {
				h.log.Error("render not found page", "error", rerr)
			}
			return
		}

		e.DefaultHTTPErrorHandler(err, c)
	}
}
