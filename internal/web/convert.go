package web

import (
	"github.com/daniilsolovey/persian-blog/internal/blog"
	"github.com/daniilsolovey/persian-blog/internal/view"
)

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
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

// NewArticleSummary omits the markdown body.
func NewArticleSummary(a blog.Article, v *view.Adapter) Article {
	return Article{
		ArticleID:   a.ID,
		Title:       a.Title,
		Slug:        a.Slug,
		Excerpt:     a.Excerpt,
		PublishedAt: a.PublishedAt,
		IsFeatured:  a.IsFeatured,
		CoverURL:    v.CoverURL(a.Cover),
		ReadingTime: view.ReadingTime(a.Content),
		SEO:         NewSEO(a.SEO),
		Categories:  Map(a.Categories, NewCategory),
	}
}

func NewArticle(a blog.Article, v *view.Adapter) Article {
	article := NewArticleSummary(a, v)
	article.Content = a.Content
	return article
}

func NewPagination(p blog.Pagination) Pagination {
	return Pagination{
		Page:      p.Page,
		PageSize:  p.PageSize,
		PageCount: p.PageCount,
		Total:     p.Total,
	}
}

func NewArticleList(res blog.ListResult, v *view.Adapter) ArticleList {
	return ArticleList{
		Data: Map(res.Articles, func(a blog.Article) Article {
			return NewArticleSummary(a, v)
		}),
		Pagination: NewPagination(res.Pagination),
	}
}
