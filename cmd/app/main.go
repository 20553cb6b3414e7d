package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/getsentry/sentry-go"
	"github.com/namsral/flag"

	"github.com/daniilsolovey/persian-blog/config"
	_ "github.com/daniilsolovey/persian-blog/docs"
	"github.com/daniilsolovey/persian-blog/internal/app"
)

var (
	flConfig  = flag.String("config", "config.toml", "path to TOML configuration file")
	flDebug   = flag.Bool("debug", false, "enable debug mode")
	flAPIURL  = flag.String("api-url", "", "content API base URL, overrides content.apiURL")
	flSiteURL = flag.String("site-url", "", "public site URL, overrides site.url")
	lg        *slog.Logger
)

// @title Persian Blog API
// @version 1.0
// @description JSON view of the blog articles served from the headless CMS
// @host localhost:3000
// @BasePath /

func main() {
	flag.Parse()

	lg = newLogger(*flDebug, "info")

	cfg, err := config.Load(*flConfig)
	if !errors.Is(err, config.ErrInvalidConfig) {
		exitOnError(err)
	}
	applyOverrides(&cfg)
	exitOnError(cfg.Validate())

	lg = newLogger(*flDebug, cfg.App.LogLevel)

	if cfg.Sentry.DSN != "" {
		exitOnError(sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.Sentry.DSN,
			Environment: cfg.Sentry.Environment,
		}))
		defer sentry.Flush(2 * time.Second)
	}

	service, err := app.New(cfg, lg)
	exitOnError(err)
	ctx := context.Background()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		err := service.Run(ctx)
		if err != nil {
			lg.Error("service run failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	lg.Info("service stopping")

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout.Duration)
	defer cancel()

	err = service.GracefulShutdown(shutdownCtx)
	if err != nil {
		lg.Error("service graceful shutdown failed", "error", err)
	}
}

// applyOverrides lets flags and their environment variables win over the config file.
func applyOverrides(cfg *config.Config) {
	if *flAPIURL != "" {
		cfg.Content.APIURL = *flAPIURL
	}
	if *flSiteURL != "" {
		cfg.Site.URL = *flSiteURL
	}
	cfg.SetDefaults()
}

func newLogger(debug bool, level string) *slog.Logger {
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		logLevel = slog.LevelInfo
	}
	if debug {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func exitOnError(err error) {
	if err != nil {
		lg.Error("app init failed", "error", err)
		os.Exit(1)
	}
}
