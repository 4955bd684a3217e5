package site

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"github.com/daniilsolovey/newshub/internal/newsportal"
	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

const (
	layoutTemplate   = "templates/layout.html"
	partialsTemplate = "templates/partials.html"
)

// pages maps a render name to its template file.
var pages = map[string]string{
	"home":      "templates/home.html",
	"article":   "templates/article.html",
	"search":    "templates/search.html",
	"not-found": "templates/not-found.html",
	"error":     "templates/error.html",
}

var funcs = template.FuncMap{
	"highlight": newsportal.Highlight,
	"add":       func(a, b int) int { return a + b },
	"sub":       func(a, b int) int { return a - b },
}

// Renderer is an echo.Renderer over the embedded page templates. Each page
// is parsed together with the layout and the shared partials.
type Renderer struct {
	templates map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	return newRenderer(templatesFS)
}

func newRenderer(fsys fs.FS) (*Renderer, error) {
	base, err := template.New("layout.html").Funcs(funcs).ParseFS(fsys, layoutTemplate, partialsTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	r := &Renderer{templates: make(map[string]*template.Template, len(pages))}
	for name, file := range pages {
		t, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout for %s: %w", name, err)
		}
		if t, err = t.ParseFS(fsys, file); err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}
		r.templates[name] = t
	}

	return r, nil
}

func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	t, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}

	return t.ExecuteTemplate(w, "layout", data)
}
