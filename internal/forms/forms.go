// Package forms parses and validates the submitted form data for every
// mutating page: registration, login, post authoring and commenting.
package forms

import (
	"net/url"
	"strings"

	"github.com/mrnikesb96-source/Entry-Blog-project/internal/models"
)

type RegisterForm struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
	Errors          map[string]string
}

func NewRegisterForm(values url.Values) *RegisterForm {
	return &RegisterForm{
		Username:        strings.TrimSpace(values.Get("username")),
		Email:           strings.TrimSpace(values.Get("email")),
		Password:        values.Get("password"),
		ConfirmPassword: values.Get("confirm_password"),
		Errors:          map[string]string{},
	}
}

func (f *RegisterForm) Valid() bool {
	requireField(f.Errors, "username", f.Username)
	requireField(f.Errors, "email", f.Email)
	requireField(f.Errors, "password", f.Password)
	requireField(f.Errors, "confirm_password", f.ConfirmPassword)
	if f.Email != "" && !strings.Contains(f.Email, "@") {
		f.Errors["email"] = "Please enter a valid email address"
	}
	if f.Password != "" && f.ConfirmPassword != "" && f.Password != f.ConfirmPassword {
		f.Errors["confirm_password"] = "Password must match"
	}
	return len(f.Errors) == 0
}

type LoginForm struct {
	Email    string
	Password string
	Errors   map[string]string
}

func NewLoginForm(values url.Values) *LoginForm {
	return &LoginForm{
		Email:    strings.TrimSpace(values.Get("email")),
		Password: values.Get("password"),
		Errors:   map[string]string{},
	}
}

func (f *LoginForm) Valid() bool {
	requireField(f.Errors, "email", f.Email)
	requireField(f.Errors, "password", f.Password)
	return len(f.Errors) == 0
}

type PostForm struct {
	Title    string
	Subtitle string
	ImgURL   string
	Body     string
	Errors   map[string]string
}

func NewPostForm(values url.Values) *PostForm {
	return &PostForm{
		Title:    strings.TrimSpace(values.Get("title")),
		Subtitle: strings.TrimSpace(values.Get("subtitle")),
		ImgURL:   strings.TrimSpace(values.Get("img_url")),
		Body:     strings.TrimSpace(values.Get("body")),
		Errors:   map[string]string{},
	}
}

// FromPost prefills the form with an existing post for the edit page.
func (f *PostForm) FromPost(post *models.Post) *PostForm {
	f.Title = post.Title
	f.Subtitle = post.Subtitle
	f.ImgURL = post.ImgURL
	f.Body = post.Body
	return f
}

func (f *PostForm) Valid() bool {
	requireField(f.Errors, "title", f.Title)
	requireField(f.Errors, "subtitle", f.Subtitle)
	requireField(f.Errors, "img_url", f.ImgURL)
	requireField(f.Errors, "body", f.Body)
	return len(f.Errors) == 0
}

// Fields converts the validated form into the store's field set.
func (f *PostForm) Fields() models.PostFields {
	return models.PostFields{
		Title:    f.Title,
		Subtitle: f.Subtitle,
		Body:     f.Body,
		ImgURL:   f.ImgURL,
	}
}

type CommentForm struct {
	Body   string
	Errors map[string]string
}

func NewCommentForm(values url.Values) *CommentForm {
	return &CommentForm{
		Body:   strings.TrimSpace(values.Get("body")),
		Errors: map[string]string{},
	}
}

func (f *CommentForm) Valid() bool {
	requireField(f.Errors, "body", f.Body)
	return len(f.Errors) == 0
}

func requireField(errs map[string]string, field, value string) {
	if strings.TrimSpace(value) == "" {
		errs[field] = "This field is required"
	}
}
