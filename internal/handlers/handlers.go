// Package handlers serves every page of the blog: the public listing and
// post pages, registration and login, commenting, and the admin-only post
// management forms.
package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mrnikesb96-source/Entry-Blog-project/internal/middleware"
	"github.com/mrnikesb96-source/Entry-Blog-project/internal/models"
)

// Store is the slice of the database the handlers touch. *db.Store satisfies
// it; tests swap in an in-memory fake.
type Store interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, username, email, passwordHash, role string) (*models.User, error)

	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, id int) (*models.Post, error)
	CreatePost(ctx context.Context, fields models.PostFields, authorID int) (*models.Post, error)
	UpdatePost(ctx context.Context, id int, fields models.PostFields, authorID int) (*models.Post, error)
	DeletePost(ctx context.Context, id int) error

	CreateComment(ctx context.Context, postID, authorID int, text string) (*models.Comment, error)
	ListCommentsForPost(ctx context.Context, postID int) ([]models.Comment, error)

	CreateSession(ctx context.Context, accountID int) (*models.Session, error)
	GetUserBySession(ctx context.Context, token string) (*models.User, error)
	DeleteSession(ctx context.Context, token string) error
}

type Handlers struct {
	store         Store
	renderer      *renderer
	secureCookies bool
}

func New(store Store, secureCookies bool) (*Handlers, error) {
	renderer, err := newRenderer()
	if err != nil {
		return nil, err
	}
	return &Handlers{
		store:         store,
		renderer:      renderer,
		secureCookies: secureCookies,
	}, nil
}

// Routes wires the HTTP surface, including session resolution and the auth
// guards. The admin guard sits behind the auth guard, so anonymous callers
// land on the login page while authenticated non-admins bounce back to the
// listing.
func (h *Handlers) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Sessions(h.store))

	r.Get("/", h.Home)
	r.Get("/about", h.About)
	r.Get("/contact", h.Contact)

	r.Get("/register", h.Register)
	r.Post("/register", h.Register)
	r.Get("/login", h.Login)
	r.Post("/login", h.Login)
	r.With(middleware.RequireAuth).Get("/logout", h.Logout)

	r.Get("/post/{id}", h.ShowPost)
	r.With(middleware.RequireAuth).Post("/post/{id}", h.AddComment)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth, middleware.RequireAdmin)
		r.Get("/new-post", h.NewPost)
		r.Post("/new-post", h.NewPost)
		r.Get("/edit-post/{id}", h.EditPost)
		r.Post("/edit-post/{id}", h.EditPost)
		r.Get("/delete/{id}", h.DeletePost)
	})

	return r
}

func (h *Handlers) serverError(w http.ResponseWriter, r *http.Request, err error) {
	logError(r, err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

func (h *Handlers) notFound(w http.ResponseWriter) {
	http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}

func logError(r *http.Request, err error) {
	log.Printf("%s %s: %v", r.Method, r.URL.Path, err)
}
