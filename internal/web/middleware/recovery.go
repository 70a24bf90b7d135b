package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/wordshop/internal/middleware"
	"github.com/mcoot/wordshop/internal/web/templates/layout"
	"github.com/mcoot/wordshop/internal/web/templates/pages"
)

// Logging creates logging middleware for the web interface
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Logging(logger.With(slog.String("component", "web")))
}

// Recovery creates panic recovery middleware for the web interface
// Returns an HTML error page on panic
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, func(w http.ResponseWriter, r *http.Request, _ any) {
		RenderError(w, r, http.StatusInternalServerError,
			"Something went wrong", "The letters got mixed up. Try starting again.")
	})
}

// NotFound renders the HTML 404 page
func NotFound(w http.ResponseWriter, r *http.Request) {
	RenderError(w, r, http.StatusNotFound, "Page not found", "There is nothing here to play with.")
}

// MethodNotAllowed renders the 405 page
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	RenderError(w, r, http.StatusMethodNotAllowed, "Not allowed", "That page only takes button presses.")
}

// RenderError writes a full error page with the given status
func RenderError(w http.ResponseWriter, r *http.Request, status int, heading, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = pages.Error(pages.ErrorData{
		PageData: layout.PageData{Title: heading},
		Heading:  heading,
		Message:  message,
	}).Render(r.Context(), w)
}
