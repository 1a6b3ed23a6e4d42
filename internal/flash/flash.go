// Package flash carries one-shot user-facing messages between a redirect and
// the next rendered page through a short-lived cookie.
package flash

import (
	"encoding/base64"
	"net/http"
	"strings"
)

const cookieName = "blog_flash"

// Categories mirror the alert styles the layout knows how to render.
const (
	Success = "success"
	Warning = "warning"
	Danger  = "danger"
)

type Flash struct {
	Category string
	Message  string
}

// Set stores a message for the next request. A second Set before the message
// is read replaces it.
func Set(w http.ResponseWriter, category, message string) {
	value := base64.RawURLEncoding.EncodeToString([]byte(category + "\n" + message))
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Pop reads and clears the pending message, if any.
func Pop(w http.ResponseWriter, r *http.Request) []Flash {
	cookie, err := r.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	decoded, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	category, message, found := strings.Cut(string(decoded), "\n")
	if !found {
		return nil
	}
	return []Flash{{Category: category, Message: message}}
}
