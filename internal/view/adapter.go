// Package view turns articles into template-ready view models and picks the page state.
package view

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/daniilsolovey/persian-blog/internal/blog"
)

const (
	maxCardBadges = 2
	mediumFormat  = "medium"
)

// Config is passed to NewAdapter; tests substitute their own values.
type Config struct {
	APIURL          string
	SiteURL         string
	SiteName        string
	SiteTitle       string
	SiteDescription string
	Placeholder     string
	OGImage         string
	Locale          Locale
}

type Adapter struct {
	cfg Config
	md  *Markdown
}

func NewAdapter(cfg Config) *Adapter {
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")
	cfg.SiteURL = strings.TrimRight(cfg.SiteURL, "/")
	if cfg.Locale.Location == nil {
		cfg.Locale.Location = time.UTC
	}

	return &Adapter{cfg: cfg, md: NewMarkdown()}
}

func (a *Adapter) Config() Config   { return a.cfg }
func (a *Adapter) Locale() Locale   { return a.cfg.Locale }
func (a *Adapter) Strings() Strings { return a.cfg.Locale.Strings }

// CoverPath picks the medium variant, then the primary image. Empty means no cover.
func CoverPath(c *blog.CoverImage) string {
	if c == nil {
		return ""
	}
	if u := c.Formats[mediumFormat]; u != "" {
		return u
	}
	return c.URL
}

// AssetURL prefixes relative upload paths with the content API origin.
func (a *Adapter) AssetURL(path string) string {
	if path == "" {
		return ""
	}
	if u, err := url.Parse(path); err == nil && u.IsAbs() {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return a.cfg.APIURL + path
}

func (a *Adapter) CoverURL(c *blog.CoverImage) string {
	return a.AssetURL(CoverPath(c))
}

// SiteURL joins path onto the public site origin.
func (a *Adapter) SiteURL(path string) string {
	if path == "" {
		return a.cfg.SiteURL
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return a.cfg.SiteURL + path
}

func ArticlePath(slug string) string {
	return "/articles/" + url.PathEscape(slug)
}

func CategoryPath(slug string) string {
	return "/categories/" + url.PathEscape(slug)
}

func badges(cc blog.Categories) []Badge {
	if len(cc) == 0 {
		return nil
	}

	out := make([]Badge, len(cc))
	for i, c := range cc {
		out[i] = Badge{Name: c.Name, Slug: c.Slug, URL: CategoryPath(c.Slug)}
	}
	return out
}

// CardBadges splits categories into the visible badges and the hidden count.
func CardBadges(cc blog.Categories) ([]Badge, int) {
	all := badges(cc)
	if len(all) <= maxCardBadges {
		return all, 0
	}
	return all[:maxCardBadges], len(all) - maxCardBadges
}

func (a *Adapter) Card(article blog.Article) Card {
	shown, overflow := CardBadges(article.Categories)

	card := Card{
		Title:    article.Title,
		URL:      ArticlePath(article.Slug),
		Excerpt:  article.Excerpt,
		Date:     a.cfg.Locale.FormatDate(article.PublishedAt),
		DateTime: dateTime(article.PublishedAt),
		CoverURL: a.CoverURL(article.Cover),
		Featured: article.IsFeatured,
		Badges:   shown,
	}
	if article.Cover != nil {
		card.CoverAlt = coverAlt(article.Cover, article.Title)
	}
	if overflow > 0 {
		card.Overflow = "+" + a.cfg.Locale.Number(overflow)
	}

	return card
}

func (a *Adapter) Cards(articles blog.Articles) []Card {
	out := make([]Card, len(articles))
	for i := range articles {
		out[i] = a.Card(articles[i])
	}
	return out
}

// Slide substitutes the configured placeholder when the article has no cover.
func (a *Adapter) Slide(article blog.Article) Slide {
	cover := a.CoverURL(article.Cover)
	if cover == "" {
		cover = a.cfg.Placeholder
	}

	return Slide{
		Title:    article.Title,
		URL:      ArticlePath(article.Slug),
		Excerpt:  article.Excerpt,
		CoverURL: cover,
		Badges:   badges(article.Categories),
	}
}

func (a *Adapter) Slides(articles blog.Articles) []Slide {
	out := make([]Slide, len(articles))
	for i := range articles {
		out[i] = a.Slide(articles[i])
	}
	return out
}

// Detail renders the full article, all categories included.
func (a *Adapter) Detail(article blog.Article) (Detail, error) {
	body, err := a.md.Render(article.Content)
	if err != nil {
		return Detail{}, err
	}

	minutes := ReadingTime(article.Content)
	d := Detail{
		Title:       article.Title,
		Excerpt:     article.Excerpt,
		Date:        a.cfg.Locale.FormatDate(article.PublishedAt),
		DateTime:    dateTime(article.PublishedAt),
		CoverURL:    a.CoverURL(article.Cover),
		Minutes:     minutes,
		ReadingTime: fmt.Sprintf(a.cfg.Locale.Strings.ReadingTime, a.cfg.Locale.Number(minutes)),
		Body:        body,
		Badges:      badges(article.Categories),
	}
	if article.Cover != nil {
		d.CoverAlt = coverAlt(article.Cover, article.Title)
	}

	return d, nil
}

func coverAlt(c *blog.CoverImage, fallback string) string {
	if c.Alt != "" {
		return c.Alt
	}
	return fallback
}

func dateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
