package rpc

import "github.com/daniilsolovey/persian-blog/internal/blog"

type (
	Categories       []Category
	ArticleSummaries []ArticleSummary
)

func NewCategories(in blog.Categories) Categories {
	out := make(Categories, len(in))
	for i := range in {
		out[i] = NewCategory(in[i])
	}
	return out
}

func NewArticleSummaries(in blog.Articles) ArticleSummaries {
	out := make(ArticleSummaries, len(in))
	for i := range in {
		out[i] = NewArticleSummary(in[i])
	}
	return out
}

// Slugs returns the slugs in list order.
func (ll ArticleSummaries) Slugs() []string {
	out := make([]string, len(ll))
	for i := range ll {
		out[i] = ll[i].Slug
	}
	return out
}
