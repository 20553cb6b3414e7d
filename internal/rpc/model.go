package rpc

import "time"

type ArticleFilter struct {
	//page=1 page number (1-based)
	Page *int `json:"page,omitempty"`
	//category optional category slug
	Category *string `json:"category,omitempty"`
}

type ArticleBySlugRequest struct {
	//slug article slug
	Slug string `json:"slug"`
}

type Category struct {
	CategoryID int    `json:"categoryId"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
}

type SEO struct {
	MetaTitle       string `json:"metaTitle"`
	MetaDescription string `json:"metaDescription"`
	Keywords        string `json:"keywords"`
}

type CoverImage struct {
	URL     string            `json:"url"`
	Alt     string            `json:"alt"`
	Formats map[string]string `json:"formats,omitempty"`
}

type Article struct {
	ArticleID   int         `json:"articleId"`
	DocumentID  string      `json:"documentId"`
	Title       string      `json:"title"`
	Slug        string      `json:"slug"`
	Excerpt     string      `json:"excerpt"`
	Content     string      `json:"content"`
	PublishedAt time.Time   `json:"publishedAt"`
	IsFeatured  bool        `json:"isFeatured"`
	ReadingTime int         `json:"readingTime"`
	SEO         *SEO        `json:"seo,omitempty"`
	Cover       *CoverImage `json:"cover,omitempty"`
	Categories  Categories  `json:"categories"`
}

type ArticleSummary struct {
	ArticleID   int         `json:"articleId"`
	Title       string      `json:"title"`
	Slug        string      `json:"slug"`
	Excerpt     string      `json:"excerpt"`
	PublishedAt time.Time   `json:"publishedAt"`
	IsFeatured  bool        `json:"isFeatured"`
	Cover       *CoverImage `json:"cover,omitempty"`
	Categories  Categories  `json:"categories"`
}

type Pagination struct {
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
}

type ArticleList struct {
	Articles   ArticleSummaries `json:"articles"`
	Pagination Pagination       `json:"pagination"`
}
