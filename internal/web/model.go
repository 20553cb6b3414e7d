package web

import "time"

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

type Article struct {
	ArticleID   int        `json:"articleId"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content,omitempty"`
	PublishedAt time.Time  `json:"publishedAt"`
	IsFeatured  bool       `json:"isFeatured"`
	CoverURL    string     `json:"coverUrl,omitempty"`
	ReadingTime int        `json:"readingTime"`
	SEO         *SEO       `json:"seo,omitempty"`
	Categories  []Category `json:"categories"`
}

type Pagination struct {
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
}

type ArticleList struct {
	Data       []Article  `json:"data"`
	Pagination Pagination `json:"pagination"`
}
