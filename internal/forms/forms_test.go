package forms_test

import (
	"net/url"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/mrnikesb96-source/Entry-Blog-project/internal/forms"
	"github.com/mrnikesb96-source/Entry-Blog-project/internal/models"
)

func TestRegisterFormValid(t *testing.T) {
	tests := []struct {
		name       string
		values     url.Values
		valid      bool
		wantErrors []string
	}{
		{
			name: "all fields present",
			values: url.Values{
				"username":         {"alice"},
				"email":            {"alice@example.com"},
				"password":         {"pw123"},
				"confirm_password": {"pw123"},
			},
			valid: true,
		},
		{
			name:       "everything missing",
			values:     url.Values{},
			valid:      false,
			wantErrors: []string{"username", "email", "password", "confirm_password"},
		},
		{
			name: "password mismatch",
			values: url.Values{
				"username":         {"alice"},
				"email":            {"alice@example.com"},
				"password":         {"pw123"},
				"confirm_password": {"pw124"},
			},
			valid:      false,
			wantErrors: []string{"confirm_password"},
		},
		{
			name: "email without at sign",
			values: url.Values{
				"username":         {"alice"},
				"email":            {"alice.example.com"},
				"password":         {"pw123"},
				"confirm_password": {"pw123"},
			},
			valid:      false,
			wantErrors: []string{"email"},
		},
		{
			name: "whitespace only username",
			values: url.Values{
				"username":         {"   "},
				"email":            {"alice@example.com"},
				"password":         {"pw123"},
				"confirm_password": {"pw123"},
			},
			valid:      false,
			wantErrors: []string{"username"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := qt.New(t)

			form := forms.NewRegisterForm(tt.values)
			c.Assert(form.Valid(), qt.Equals, tt.valid)
			c.Assert(len(form.Errors), qt.Equals, len(tt.wantErrors))
			for _, field := range tt.wantErrors {
				c.Assert(form.Errors[field], qt.Not(qt.Equals), "")
			}
		})
	}
}

func TestLoginFormValid(t *testing.T) {
	c := qt.New(t)

	form := forms.NewLoginForm(url.Values{"email": {"alice@example.com"}, "password": {"pw123"}})
	c.Assert(form.Valid(), qt.IsTrue)

	form = forms.NewLoginForm(url.Values{"email": {"alice@example.com"}})
	c.Assert(form.Valid(), qt.IsFalse)
	c.Assert(form.Errors["password"], qt.Equals, "This field is required")
}

func TestPostFormValid(t *testing.T) {
	c := qt.New(t)

	form := forms.NewPostForm(url.Values{
		"title":    {"Hello"},
		"subtitle": {"A greeting"},
		"img_url":  {"https://example.com/a.jpg"},
		"body":     {"<p>Hi</p>"},
	})
	c.Assert(form.Valid(), qt.IsTrue)
	c.Assert(form.Fields(), qt.DeepEquals, models.PostFields{
		Title:    "Hello",
		Subtitle: "A greeting",
		Body:     "<p>Hi</p>",
		ImgURL:   "https://example.com/a.jpg",
	})

	form = forms.NewPostForm(url.Values{"title": {"Hello"}})
	c.Assert(form.Valid(), qt.IsFalse)
	c.Assert(len(form.Errors), qt.Equals, 3)
}

func TestPostFormFromPost(t *testing.T) {
	c := qt.New(t)

	post := &models.Post{
		Title:    "Hello",
		Subtitle: "A greeting",
		Body:     "<p>Hi</p>",
		ImgURL:   "https://example.com/a.jpg",
		Date:     "September 01, 2026",
	}
	form := forms.NewPostForm(nil).FromPost(post)
	c.Assert(form.Title, qt.Equals, "Hello")
	c.Assert(form.Subtitle, qt.Equals, "A greeting")
	c.Assert(form.Body, qt.Equals, "<p>Hi</p>")
	c.Assert(form.ImgURL, qt.Equals, "https://example.com/a.jpg")
}

func TestCommentFormValid(t *testing.T) {
	c := qt.New(t)

	c.Assert(forms.NewCommentForm(url.Values{"body": {"Nice!"}}).Valid(), qt.IsTrue)
	c.Assert(forms.NewCommentForm(url.Values{"body": {"  "}}).Valid(), qt.IsFalse)
	c.Assert(forms.NewCommentForm(nil).Valid(), qt.IsFalse)
}
