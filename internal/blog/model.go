package blog

import (
	"time"

	"github.com/daniilsolovey/persian-blog/internal/cms"
)

type Category struct {
	ID   int
	Name string
	Slug string
}

// CoverImage keeps the primary URL and any size variants keyed by format name.
type CoverImage struct {
	URL     string
	Alt     string
	Formats map[string]string
}

type SEO struct {
	MetaTitle       string
	MetaDescription string
	Keywords        string
}

type Article struct {
	ID          int
	DocumentID  string
	Title       string
	Slug        string
	Excerpt     string
	Content     string
	PublishedAt time.Time
	IsFeatured  bool
	SEO         *SEO
	Cover       *CoverImage
	Categories  Categories
}

type Pagination struct {
	Page      int
	PageSize  int
	PageCount int
	Total     int
}

// ListFilter narrows a collection request. Zero value lists everything.
type ListFilter struct {
	Page         int
	PageSize     int
	CategorySlug string
	Featured     bool
}

func (f ListFilter) query(defaultPageSize int) cms.Query {
	q := cms.Query{
		Page:     f.Page,
		PageSize: f.PageSize,
		Populate: cms.PopulateAll,
		Sort:     []string{"publishedAt:desc"},
	}
	if q.PageSize == 0 {
		q.PageSize = defaultPageSize
	}
	if f.CategorySlug != "" {
		q = q.Eq("categories.slug", f.CategorySlug)
	}
	if f.Featured {
		q = q.Eq("is_featured", "true")
	}

	return q
}
