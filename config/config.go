package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

const (
	defaultPort            = 3000
	defaultCollection      = "posts"
	defaultPageSize        = 6
	defaultLang            = "fa-IR"
	defaultTimeZone        = "Asia/Tehran"
	defaultPlaceholder     = "/placeholder.svg"
	defaultShutdownTimeout = 5 * time.Second
)

var ErrInvalidConfig = errors.New("invalid config")

var validate = newValidator()

type Config struct {
	App struct {
		Host     string
		Port     int `validate:"min=0,max=65535"`
		LogLevel string
	}
	Server  Server
	Content Content
	Site    Site
	Sentry  Sentry
}

type Server struct {
	ReadTimeout     Duration
	WriteTimeout    Duration
	ShutdownTimeout Duration
}

// Content describes the headless content API.
type Content struct {
	APIURL     string `toml:"apiURL" validate:"required,url"`
	Collection string
	PageSize   int `validate:"min=0"`
}

type Site struct {
	URL         string `toml:"url"`
	Name        string
	Title       string
	Description string
	Lang        string
	TimeZone    string `validate:"timezone"`
	Placeholder string
	OGImage     string `toml:"ogImage"`
}

type Sentry struct {
	DSN         string `toml:"dsn"`
	Environment string
}

// Duration decodes TOML strings like "15s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", text, err)
	}

	d.Duration = v
	return nil
}

// Load decodes the TOML file at path, applies defaults and validates the result.
func Load(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}

	cfg.SetDefaults()
	return cfg, cfg.Validate()
}

func (c *Config) SetDefaults() {
	if c.App.Port == 0 {
		c.App.Port = defaultPort
	}
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.Server.ShutdownTimeout.Duration == 0 {
		c.Server.ShutdownTimeout.Duration = defaultShutdownTimeout
	}
	if c.Content.Collection == "" {
		c.Content.Collection = defaultCollection
	}
	if c.Content.PageSize == 0 {
		c.Content.PageSize = defaultPageSize
	}
	if c.Site.Lang == "" {
		c.Site.Lang = defaultLang
	}
	if c.Site.TimeZone == "" {
		c.Site.TimeZone = defaultTimeZone
	}
	if c.Site.Placeholder == "" {
		c.Site.Placeholder = defaultPlaceholder
	}

	c.Content.APIURL = strings.TrimRight(c.Content.APIURL, "/")
	c.Site.URL = strings.TrimRight(c.Site.URL, "/")
}

// Validate checks the struct tags; field names in errors follow the TOML keys.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}
