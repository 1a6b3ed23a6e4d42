package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mrnikesb96-source/Entry-Blog-project/internal/db"
	"github.com/mrnikesb96-source/Entry-Blog-project/internal/flash"
	"github.com/mrnikesb96-source/Entry-Blog-project/internal/forms"
	"github.com/mrnikesb96-source/Entry-Blog-project/internal/middleware"
)

func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	posts, err := h.store.ListPosts(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "home.page.html", &templateData{
		Posts: posts,
	})
}

func (h *Handlers) ShowPost(w http.ResponseWriter, r *http.Request) {
	id, ok := h.postID(w, r)
	if !ok {
		return
	}
	h.renderPost(w, r, id, http.StatusOK, forms.NewCommentForm(nil))
}

// AddComment handles the comment form on the post page. The router only
// lets authenticated callers in.
func (h *Handlers) AddComment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.postID(w, r)
	if !ok {
		return
	}
	// A comment on a missing post is a lookup failure, not a store failure.
	if _, err := h.store.GetPost(r.Context(), id); err != nil {
		if errors.Is(err, db.ErrPostNotFound) {
			h.notFound(w)
		} else {
			h.serverError(w, r, err)
		}
		return
	}
	postPath := "/post/" + strconv.Itoa(id)

	if err := r.ParseForm(); err != nil {
		h.serverError(w, r, err)
		return
	}
	form := forms.NewCommentForm(r.PostForm)
	if !form.Valid() {
		h.renderPost(w, r, id, http.StatusUnprocessableEntity, form)
		return
	}

	user := middleware.CurrentUser(r.Context())
	if _, err := h.store.CreateComment(r.Context(), id, user.ID, form.Body); err != nil {
		logError(r, err)
		flash.Set(w, flash.Danger, "Sorry, an error occurred while processing your comment, try again later.")
		http.Redirect(w, r, postPath, http.StatusSeeOther)
		return
	}

	flash.Set(w, flash.Success, "Comment added")
	http.Redirect(w, r, postPath, http.StatusSeeOther)
}

func (h *Handlers) renderPost(w http.ResponseWriter, r *http.Request, id, status int, form *forms.CommentForm) {
	post, err := h.store.GetPost(r.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrPostNotFound) {
			h.notFound(w)
		} else {
			h.serverError(w, r, err)
		}
		return
	}

	comments, err := h.store.ListCommentsForPost(r.Context(), id)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	h.render(w, r, status, "post.page.html", &templateData{
		Title:    post.Title,
		Post:     post,
		Comments: comments,
		Form:     form,
	})
}

func (h *Handlers) NewPost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.render(w, r, http.StatusOK, "make-post.page.html", &templateData{
			Title: "New Post",
			Form:  forms.NewPostForm(nil),
		})
		return
	}

	if err := r.ParseForm(); err != nil {
		h.serverError(w, r, err)
		return
	}
	form := forms.NewPostForm(r.PostForm)
	if !form.Valid() {
		h.render(w, r, http.StatusUnprocessableEntity, "make-post.page.html", &templateData{
			Title: "New Post",
			Form:  form,
		})
		return
	}

	user := middleware.CurrentUser(r.Context())
	post, err := h.store.CreatePost(r.Context(), form.Fields(), user.ID)
	if err != nil {
		if errors.Is(err, db.ErrDuplicateTitle) {
			h.render(w, r, http.StatusUnprocessableEntity, "make-post.page.html", &templateData{
				Title:   "New Post",
				Form:    form,
				Flashes: []flash.Flash{{Category: flash.Warning, Message: "A post with this title already exists"}},
			})
			return
		}
		logError(r, err)
		h.render(w, r, http.StatusInternalServerError, "make-post.page.html", &templateData{
			Title:   "New Post",
			Form:    form,
			Flashes: []flash.Flash{{Category: flash.Danger, Message: "Sorry, something went wrong, try again later."}},
		})
		return
	}

	log.Printf("post created: id=%d title=%q author=%q", post.ID, post.Title, user.Username)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handlers) EditPost(w http.ResponseWriter, r *http.Request) {
	id, ok := h.postID(w, r)
	if !ok {
		return
	}

	post, err := h.store.GetPost(r.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrPostNotFound) {
			h.notFound(w)
		} else {
			h.serverError(w, r, err)
		}
		return
	}

	if r.Method != http.MethodPost {
		h.render(w, r, http.StatusOK, "make-post.page.html", &templateData{
			Title:  "Edit Post",
			Form:   forms.NewPostForm(nil).FromPost(post),
			Post:   post,
			IsEdit: true,
		})
		return
	}

	if err := r.ParseForm(); err != nil {
		h.serverError(w, r, err)
		return
	}
	form := forms.NewPostForm(r.PostForm)
	if !form.Valid() {
		h.render(w, r, http.StatusUnprocessableEntity, "make-post.page.html", &templateData{
			Title:  "Edit Post",
			Form:   form,
			Post:   post,
			IsEdit: true,
		})
		return
	}

	user := middleware.CurrentUser(r.Context())
	updated, err := h.store.UpdatePost(r.Context(), id, form.Fields(), user.ID)
	if err != nil {
		switch {
		case errors.Is(err, db.ErrPostNotFound):
			h.notFound(w)
		case errors.Is(err, db.ErrDuplicateTitle):
			h.render(w, r, http.StatusUnprocessableEntity, "make-post.page.html", &templateData{
				Title:   "Edit Post",
				Form:    form,
				Post:    post,
				IsEdit:  true,
				Flashes: []flash.Flash{{Category: flash.Warning, Message: "A post with this title already exists"}},
			})
		default:
			logError(r, err)
			h.render(w, r, http.StatusInternalServerError, "make-post.page.html", &templateData{
				Title:   "Edit Post",
				Form:    form,
				Post:    post,
				IsEdit:  true,
				Flashes: []flash.Flash{{Category: flash.Danger, Message: "Sorry, something went wrong, try again later."}},
			})
		}
		return
	}

	log.Printf("post updated: id=%d title=%q author=%q", updated.ID, updated.Title, user.Username)
	http.Redirect(w, r, "/post/"+strconv.Itoa(updated.ID), http.StatusSeeOther)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := h.postID(w, r)
	if !ok {
		return
	}

	if err := h.store.DeletePost(r.Context(), id); err != nil {
		if errors.Is(err, db.ErrPostNotFound) {
			h.notFound(w)
			return
		}
		logError(r, err)
		flash.Set(w, flash.Danger, "Sorry, something went wrong, try again later.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	log.Printf("post deleted: id=%d", id)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handlers) postID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id < 1 {
		h.notFound(w)
		return 0, false
	}
	return id, true
}
