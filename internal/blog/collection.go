package blog

import "github.com/daniilsolovey/persian-blog/internal/cms"

type (
	Articles   []Article
	Categories []Category
)

func NewArticles(in []cms.Post) Articles {
	out := make(Articles, len(in))
	for i := range in {
		out[i] = NewArticle(&in[i])
	}
	return out
}

func NewCategories(in []cms.Category) Categories {
	out := make(Categories, len(in))
	for i := range in {
		out[i] = NewCategory(&in[i])
	}
	return out
}

// CategoryBySlug returns the first category with the given slug carried by any article.
func (ll Articles) CategoryBySlug(slug string) (Category, bool) {
	for i := range ll {
		for _, c := range ll[i].Categories {
			if c.Slug == slug {
				return c, true
			}
		}
	}
	return Category{}, false
}
