package view

import "html/template"

// Badge is a category link.
type Badge struct {
	Name string
	Slug string
	URL  string
}

// Card is a listing entry. Badges holds at most maxCardBadges entries; Overflow counts the rest.
type Card struct {
	Title    string
	URL      string
	Excerpt  string
	Date     string // localized long form
	DateTime string // RFC 3339 for <time datetime>
	CoverURL string // empty when the article has no cover
	CoverAlt string
	Featured bool
	Badges   []Badge
	Overflow string // localized "+N", empty when nothing is hidden
}

// Slide is a home carousel entry. CoverURL is never empty.
type Slide struct {
	Title    string
	URL      string
	Excerpt  string
	CoverURL string
	Badges   []Badge
}

// Detail is the full article page.
type Detail struct {
	Title       string
	Excerpt     string
	Date        string
	DateTime    string
	CoverURL    string
	CoverAlt    string
	Minutes     int
	ReadingTime string
	Body        template.HTML
	Badges      []Badge
}

type OGImage struct {
	URL    string
	Width  int
	Height int
	Alt    string
}

type OpenGraph struct {
	Title       string
	Description string
	URL         string
	SiteName    string
	Locale      string
	Type        string
	Images      []OGImage
}

// Meta is the head metadata of a page.
type Meta struct {
	Title       string
	Description string
	Keywords    string
	Canonical   string
	OG          *OpenGraph
}
