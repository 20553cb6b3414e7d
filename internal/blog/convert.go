package blog

import "github.com/daniilsolovey/persian-blog/internal/cms"

func NewCategory(c *cms.Category) Category {
	return Category{
		ID:   c.ID,
		Name: c.Name,
		Slug: c.Slug,
	}
}

func NewSEO(s *cms.SEO) *SEO {
	if s == nil {
		return nil
	}

	return &SEO{
		MetaTitle:       s.MetaTitle,
		MetaDescription: s.MetaDescription,
		Keywords:        s.Keywords,
	}
}

// NewCoverImage drops format entries without a URL so lookups never yield an empty link.
func NewCoverImage(m *cms.Media) *CoverImage {
	if m == nil || (m.URL == "" && len(m.Formats) == 0) {
		return nil
	}

	cover := &CoverImage{
		URL: m.URL,
		Alt: m.AlternativeText,
	}

	for name, f := range m.Formats {
		if f.URL == "" {
			continue
		}
		if cover.Formats == nil {
			cover.Formats = make(map[string]string, len(m.Formats))
		}
		cover.Formats[name] = f.URL
	}

	return cover
}

func NewArticle(p *cms.Post) Article {
	article := Article{
		ID:          p.ID,
		DocumentID:  p.DocumentID,
		Title:       p.Title,
		Slug:        p.Slug,
		Excerpt:     p.Excerpt,
		Content:     p.Content,
		PublishedAt: p.PublishedAt,
		IsFeatured:  p.IsFeatured,
		SEO:         NewSEO(p.SEO),
		Cover:       NewCoverImage(p.CoverImage),
	}

	if len(p.Categories) > 0 {
		article.Categories = NewCategories(p.Categories)
	}

	return article
}

func NewPagination(p cms.Pagination) Pagination {
	return Pagination{
		Page:      p.Page,
		PageSize:  p.PageSize,
		PageCount: p.PageCount,
		Total:     p.Total,
	}
}
