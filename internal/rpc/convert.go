package rpc

import (
	"github.com/daniilsolovey/persian-blog/internal/blog"
	"github.com/daniilsolovey/persian-blog/internal/view"
)

func NewArticle(a blog.Article) Article {
	return Article{
		ArticleID:   a.ID,
		DocumentID:  a.DocumentID,
		Title:       a.Title,
		Slug:        a.Slug,
		Excerpt:     a.Excerpt,
		Content:     a.Content,
		PublishedAt: a.PublishedAt,
		IsFeatured:  a.IsFeatured,
		ReadingTime: view.ReadingTime(a.Content),
		SEO:         NewSEO(a.SEO),
		Cover:       NewCoverImage(a.Cover),
		Categories:  NewCategories(a.Categories),
	}
}

func NewArticleSummary(a blog.Article) ArticleSummary {
	return ArticleSummary{
		ArticleID:   a.ID,
		Title:       a.Title,
		Slug:        a.Slug,
		Excerpt:     a.Excerpt,
		PublishedAt: a.PublishedAt,
		IsFeatured:  a.IsFeatured,
		Cover:       NewCoverImage(a.Cover),
		Categories:  NewCategories(a.Categories),
	}
}

func NewCategory(c blog.Category) Category {
	return Category{
		CategoryID: c.ID,
		Name:       c.Name,
		Slug:       c.Slug,
	}
}

func NewSEO(s *blog.SEO) *SEO {
	if s == nil {
		return nil
	}
	return &SEO{
		MetaTitle:       s.MetaTitle,
		MetaDescription: s.MetaDescription,
		Keywords:        s.Keywords,
	}
}

// NewCoverImage keeps CMS-relative URLs as they are.
func NewCoverImage(c *blog.CoverImage) *CoverImage {
	if c == nil {
		return nil
	}
	return &CoverImage{
		URL:     c.URL,
		Alt:     c.Alt,
		Formats: c.Formats,
	}
}

func NewPagination(p blog.Pagination) Pagination {
	return Pagination{
		Page:      p.Page,
		PageSize:  p.PageSize,
		PageCount: p.PageCount,
		Total:     p.Total,
	}
}

func NewArticleList(res blog.ListResult) ArticleList {
	return ArticleList{
		Articles:   NewArticleSummaries(res.Articles),
		Pagination: NewPagination(res.Pagination),
	}
}
