package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/daniilsolovey/persian-blog/config"
	"github.com/daniilsolovey/persian-blog/internal/blog"
	"github.com/daniilsolovey/persian-blog/internal/cms"
	"github.com/daniilsolovey/persian-blog/internal/rpc"
	"github.com/daniilsolovey/persian-blog/internal/view"
	"github.com/daniilsolovey/persian-blog/internal/web"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	rpcPath     = "/rpc/"
	metricsPath = "/metrics"
)

type App struct {
	Logger   *slog.Logger
	Echo     *echo.Echo
	Config   config.Config
	Registry *prometheus.Registry
}

// New wires the content client, the article manager and both transports into one echo instance.
func New(cfg config.Config, logger *slog.Logger) (*App, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	client := cms.New(cfg.Content.APIURL, logger,
		cms.WithCollection(cfg.Content.Collection),
		cms.WithMetrics(cms.NewMetrics(registry)),
	)
	manager := blog.NewManager(client, cfg.Content.PageSize, logger)

	loc, err := time.LoadLocation(cfg.Site.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("load time zone: %w", err)
	}
	locale, err := view.NewLocale(cfg.Site.Lang, loc)
	if err != nil {
		return nil, fmt.Errorf("parse site language: %w", err)
	}

	renderer, err := web.NewRenderer(locale)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	adapter := view.NewAdapter(view.Config{
		APIURL:          cfg.Content.APIURL,
		SiteURL:         cfg.Site.URL,
		SiteName:        cfg.Site.Name,
		SiteTitle:       cfg.Site.Title,
		SiteDescription: cfg.Site.Description,
		Placeholder:     cfg.Site.Placeholder,
		OGImage:         cfg.Site.OGImage,
		Locale:          locale,
	})

	var extra []echo.MiddlewareFunc
	if cfg.Sentry.DSN != "" {
		extra = append(extra, sentryecho.New(sentryecho.Options{Repanic: true}))
	}

	handler := web.NewHandler(manager, adapter, logger)
	e := handler.RegisterRoutes(renderer, extra...)
	e.Any(rpcPath, echo.WrapHandler(rpc.New(logger, manager)))
	e.GET(metricsPath, echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	e.Server.ReadTimeout = cfg.Server.ReadTimeout.Duration
	e.Server.WriteTimeout = cfg.Server.WriteTimeout.Duration

	return &App{
		Logger:   logger,
		Echo:     e,
		Config:   cfg,
		Registry: registry,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", a.Config.App.Host, a.Config.App.Port)
	a.Logger.InfoContext(ctx, "http server listening", "addr", addr, "contentAPI", a.Config.Content.APIURL)

	err := a.Echo.Start(addr)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
