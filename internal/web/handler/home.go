package handler

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/mcoot/wordshop/internal/web/middleware"
	"github.com/mcoot/wordshop/internal/web/templates/layout"
	"github.com/mcoot/wordshop/internal/web/templates/pages"
)

// HomeHandler handles the home page
type HomeHandler struct{}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// Home renders the home page
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	data := pages.HomeData{
		PageData: layout.PageData{
			Flash: middleware.GetFlash(r.Context()),
		},
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.Home(data).Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// Submit handles the word form. Empty input stays on the home page.
func (h *HomeHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, middleware.FlashError, "Invalid form data")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	word := strings.TrimSpace(r.FormValue("word"))
	if word == "" {
		middleware.SetFlash(w, middleware.FlashInfo, "Type a word to get started")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/"+url.PathEscape(word), http.StatusSeeOther)
}
