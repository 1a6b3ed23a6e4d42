package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/mrnikesb96-source/Entry-Blog-project/internal/db"
	"github.com/mrnikesb96-source/Entry-Blog-project/internal/flash"
	"github.com/mrnikesb96-source/Entry-Blog-project/internal/forms"
	"github.com/mrnikesb96-source/Entry-Blog-project/internal/middleware"
	"github.com/mrnikesb96-source/Entry-Blog-project/internal/models"
)

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.render(w, r, http.StatusOK, "register.page.html", &templateData{
			Title: "Register",
			Form:  forms.NewRegisterForm(nil),
		})
		return
	}

	if err := r.ParseForm(); err != nil {
		h.serverError(w, r, err)
		return
	}
	form := forms.NewRegisterForm(r.PostForm)
	if !form.Valid() {
		h.render(w, r, http.StatusUnprocessableEntity, "register.page.html", &templateData{
			Title: "Register",
			Form:  form,
		})
		return
	}

	existing, err := h.store.GetUserByEmail(r.Context(), form.Email)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	if existing != nil {
		h.renderRegisterError(w, r, form, "Sorry, this email is already registered")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	user, err := h.store.CreateUser(r.Context(), form.Username, form.Email, string(hash), models.RoleMember)
	if err != nil {
		// The unique index catches the race a prior read cannot.
		if errors.Is(err, db.ErrDuplicateEmail) {
			h.renderRegisterError(w, r, form, "Sorry, this email is already registered")
			return
		}
		logError(r, err)
		flash.Set(w, flash.Danger, "Sorry, an error occurred during account creation, try again later.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	log.Printf("registered user %q (id %d)", user.Username, user.ID)
	flash.Set(w, flash.Success, fmt.Sprintf("%s has successfully been added to the blog, welcome!", user.Username))
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *Handlers) renderRegisterError(w http.ResponseWriter, r *http.Request, form *forms.RegisterForm, message string) {
	h.render(w, r, http.StatusUnprocessableEntity, "register.page.html", &templateData{
		Title:   "Register",
		Form:    form,
		Flashes: []flash.Flash{{Category: flash.Danger, Message: message}},
	})
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.render(w, r, http.StatusOK, "login.page.html", &templateData{
			Title: "Login",
			Form:  forms.NewLoginForm(nil),
		})
		return
	}

	if err := r.ParseForm(); err != nil {
		h.serverError(w, r, err)
		return
	}
	form := forms.NewLoginForm(r.PostForm)
	if !form.Valid() {
		h.render(w, r, http.StatusUnprocessableEntity, "login.page.html", &templateData{
			Title: "Login",
			Form:  form,
		})
		return
	}

	user, err := h.store.GetUserByEmail(r.Context(), form.Email)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	if user == nil {
		h.renderLoginError(w, r, form, "Email not found")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(form.Password)); err != nil {
		h.renderLoginError(w, r, form, "Password incorrect")
		return
	}

	session, err := h.store.CreateSession(r.Context(), user.ID)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	middleware.SetSessionCookie(w, session.Token, h.secureCookies)

	flash.Set(w, flash.Success, "Successfully logged in")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handlers) renderLoginError(w http.ResponseWriter, r *http.Request, form *forms.LoginForm, message string) {
	h.render(w, r, http.StatusUnprocessableEntity, "login.page.html", &templateData{
		Title:   "Login",
		Form:    form,
		Flashes: []flash.Flash{{Category: flash.Danger, Message: message}},
	})
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil && cookie.Value != "" {
		if err := h.store.DeleteSession(r.Context(), cookie.Value); err != nil {
			logError(r, err)
		}
	}
	middleware.ClearSessionCookie(w)

	flash.Set(w, flash.Success, "Successfully logged out")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
