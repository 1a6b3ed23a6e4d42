package handlers

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/mrnikesb96-source/Entry-Blog-project/internal/flash"
	"github.com/mrnikesb96-source/Entry-Blog-project/internal/middleware"
	"github.com/mrnikesb96-source/Entry-Blog-project/internal/models"
)

//go:embed templates
var templateFS embed.FS

var pageFiles = []string{
	"home.page.html",
	"register.page.html",
	"login.page.html",
	"post.page.html",
	"make-post.page.html",
	"about.page.html",
	"contact.page.html",
}

var functions = template.FuncMap{
	// Post bodies and comments come from a rich-text editor and are stored
	// as HTML.
	"raw": func(s string) template.HTML {
		return template.HTML(s)
	},
	"formatDate": func(t time.Time) string {
		return t.Format("January 02, 2006")
	},
}

type templateData struct {
	Title       string
	Path        string
	CurrentUser *models.User
	Flashes     []flash.Flash
	Form        any
	Post        *models.Post
	Posts       []models.Post
	Comments    []models.Comment
	IsEdit      bool
}

type renderer struct {
	pages map[string]*template.Template
}

func newRenderer() (*renderer, error) {
	pages := make(map[string]*template.Template, len(pageFiles))
	for _, page := range pageFiles {
		ts, err := template.New(page).Funcs(functions).ParseFS(
			templateFS,
			"templates/base.layout.html",
			"templates/"+page,
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		pages[page] = ts
	}
	return &renderer{pages: pages}, nil
}

// render executes the page into a buffer first so a template failure never
// leaves a half-written response.
func (h *Handlers) render(w http.ResponseWriter, r *http.Request, status int, page string, data *templateData) {
	ts, ok := h.renderer.pages[page]
	if !ok {
		h.serverError(w, r, fmt.Errorf("template %s not found", page))
		return
	}

	if data == nil {
		data = &templateData{}
	}
	data.Path = r.URL.Path
	if data.CurrentUser == nil {
		data.CurrentUser = middleware.CurrentUser(r.Context())
	}
	// Consume any pending flash even when the handler supplied inline
	// messages, so a stale cookie cannot resurface on a later page.
	data.Flashes = append(flash.Pop(w, r), data.Flashes...)

	buf := new(bytes.Buffer)
	if err := ts.ExecuteTemplate(buf, "base", data); err != nil {
		h.serverError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
