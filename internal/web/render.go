package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"github.com/daniilsolovey/persian-blog/internal/view"
	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const (
	pageHome     = "home"
	pageArticles = "articles"
	pageArticle  = "article"
	pageAbout    = "about"
	pageNotFound = "notfound"
)

var pages = []string{pageHome, pageArticles, pageArticle, pageAbout, pageNotFound}

// Renderer executes the shared layout around one page template.
type Renderer struct {
	templates map[string]*template.Template
}

var _ echo.Renderer = (*Renderer)(nil)

// NewRenderer parses every page once. Numbers are printed in the locale's digits.
func NewRenderer(locale view.Locale) (*Renderer, error) {
	r := &Renderer{templates: make(map[string]*template.Template, len(pages))}
	funcs := template.FuncMap{"num": locale.Number}

	for _, page := range pages {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html",
			"templates/partials.html",
			"templates/"+page+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		r.templates[page] = t
	}

	return r, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	t, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("template %s not found", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}

func staticFiles() fs.FS {
	return echo.MustSubFS(staticFS, "static")
}
