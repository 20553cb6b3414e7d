package cms

import "time"

// Post is a single record of the posts collection as the content API returns it with populate=*.
type Post struct {
	ID          int        `json:"id"`
	DocumentID  string     `json:"documentId"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content"`
	PublishedAt time.Time  `json:"publishedAt"`
	IsFeatured  bool       `json:"is_featured"`
	SEO         *SEO       `json:"seo"`
	CoverImage  *Media     `json:"cover_image"`
	Categories  []Category `json:"categories"`
}

type SEO struct {
	MetaTitle       string `json:"metaTitle"`
	MetaDescription string `json:"metaDescription"`
	Keywords        string `json:"keywords"`
}

type Media struct {
	URL             string                 `json:"url"`
	AlternativeText string                 `json:"alternativeText"`
	Formats         map[string]MediaFormat `json:"formats"`
}

type MediaFormat struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Pagination struct {
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
}

// PostList is a validated collection envelope.
type PostList struct {
	Posts      []Post
	Pagination Pagination
}

type envelope struct {
	Data *[]Post `json:"data"`
	Meta struct {
		Pagination *Pagination `json:"pagination"`
	} `json:"meta"`
}

type errorEnvelope struct {
	Error *struct {
		Status  int    `json:"status"`
		Name    string `json:"name"`
		Message string `json:"message"`
	} `json:"error"`
}
