package handlers

import "net/http"

func (h *Handlers) About(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "about.page.html", &templateData{Title: "About"})
}

func (h *Handlers) Contact(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "contact.page.html", &templateData{Title: "Contact"})
}
