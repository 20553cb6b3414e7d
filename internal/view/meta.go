package view

import "github.com/daniilsolovey/persian-blog/internal/blog"

const (
	listingImageWidth  = 1200
	listingImageHeight = 630
	articleImageWidth  = 800
	articleImageHeight = 420
)

// ArticleMeta tolerates a nil article. Without an SEO block only the not-found title is set.
func (a *Adapter) ArticleMeta(article *blog.Article) Meta {
	if article == nil || article.SEO == nil {
		return Meta{Title: a.cfg.Locale.Strings.NotFoundTitle}
	}

	title := article.SEO.MetaTitle
	if title == "" {
		title = article.Title
	}
	description := article.SEO.MetaDescription
	if description == "" {
		description = article.Excerpt
	}

	canonical := a.SiteURL(ArticlePath(article.Slug))
	meta := Meta{
		Title:       title,
		Description: description,
		Keywords:    article.SEO.Keywords,
		Canonical:   canonical,
		OG: &OpenGraph{
			Title:       title,
			Description: description,
			URL:         canonical,
			SiteName:    a.cfg.SiteName,
			Locale:      a.cfg.Locale.OGLocale(),
			Type:        "article",
		},
	}

	if image := ogCoverPath(article.Cover); image != "" {
		meta.OG.Images = []OGImage{{
			URL:    a.AssetURL(image),
			Width:  articleImageWidth,
			Height: articleImageHeight,
			Alt:    title,
		}}
	}

	return meta
}

// ogCoverPath prefers the primary image, which is larger than the medium variant.
func ogCoverPath(c *blog.CoverImage) string {
	if c == nil {
		return ""
	}
	if c.URL != "" {
		return c.URL
	}
	return CoverPath(c)
}

// ListingMeta is the fixed metadata of a listing page at path.
func (a *Adapter) ListingMeta(path string) Meta {
	s := a.cfg.Locale.Strings
	canonical := a.SiteURL(path)

	meta := Meta{
		Title:       s.ListingMetaTitle,
		Description: s.ListingMetaDescription,
		Canonical:   canonical,
		OG: &OpenGraph{
			Title:       s.ListingMetaTitle,
			Description: s.ListingOGDescription,
			URL:         canonical,
			SiteName:    a.cfg.SiteName,
			Locale:      a.cfg.Locale.OGLocale(),
			Type:        "website",
		},
	}

	if a.cfg.OGImage != "" {
		meta.OG.Images = []OGImage{{
			URL:    a.SiteURL(a.cfg.OGImage),
			Width:  listingImageWidth,
			Height: listingImageHeight,
			Alt:    s.ListingOGImageAlt,
		}}
	}

	return meta
}

// SiteMeta is used by pages without their own metadata.
func (a *Adapter) SiteMeta() Meta {
	return Meta{
		Title:       a.cfg.SiteTitle,
		Description: a.cfg.SiteDescription,
		Canonical:   a.SiteURL("/"),
	}
}

// TitledMeta keeps the site description under a page-specific title.
func (a *Adapter) TitledMeta(title string) Meta {
	m := a.SiteMeta()
	m.Title = title
	return m
}
