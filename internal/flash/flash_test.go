package flash_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/mrnikesb96-source/Entry-Blog-project/internal/flash"
)

func setAndPop(category, message string) ([]flash.Flash, *httptest.ResponseRecorder) {
	set := httptest.NewRecorder()
	flash.Set(set, category, message)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range set.Result().Cookies() {
		req.AddCookie(cookie)
	}
	pop := httptest.NewRecorder()
	return flash.Pop(pop, req), pop
}

func TestSetPopRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		category string
		message  string
	}{
		{"success", flash.Success, "Successfully logged in"},
		{"warning", flash.Warning, "Easy now, admins only!"},
		{"danger with punctuation", flash.Danger, "Sorry, something went wrong, try again later."},
		{"message with newline", flash.Danger, "line one\nline two"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := qt.New(t)

			got, _ := setAndPop(tt.category, tt.message)
			c.Assert(got, qt.HasLen, 1)
			c.Assert(got[0].Category, qt.Equals, tt.category)
			c.Assert(got[0].Message, qt.Equals, tt.message)
		})
	}
}

func TestPopClearsCookie(t *testing.T) {
	c := qt.New(t)

	_, pop := setAndPop(flash.Success, "hello")

	cookies := pop.Result().Cookies()
	c.Assert(cookies, qt.HasLen, 1)
	c.Assert(cookies[0].MaxAge, qt.Equals, -1)
	c.Assert(cookies[0].Value, qt.Equals, "")
}

func TestPopWithoutCookie(t *testing.T) {
	c := qt.New(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	got := flash.Pop(httptest.NewRecorder(), req)
	c.Assert(got, qt.IsNil)
}

func TestPopGarbageCookie(t *testing.T) {
	c := qt.New(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "blog_flash", Value: "not base64 %%%"})
	got := flash.Pop(httptest.NewRecorder(), req)
	c.Assert(got, qt.IsNil)
}
