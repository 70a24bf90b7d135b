package middleware

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordshop/internal/model"
	"github.com/mcoot/wordshop/internal/services/session"
)

const (
	// SessionCookieName holds the ID of the browser's current game
	SessionCookieName = "session"

	sessionContextKey contextKey = "session"
)

// GetSession retrieves the game session from the request context
// Returns nil if the request has no matching session
func GetSession(ctx context.Context) *model.Session {
	s, _ := ctx.Value(sessionContextKey).(*model.Session)
	return s
}

// WithSession returns a copy of ctx carrying s
func WithSession(ctx context.Context, s *model.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, s)
}

// Word returns the source word from the route, unescaped
func Word(r *http.Request) string {
	raw := mux.Vars(r)["word"]
	word, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return word
}

// IsHTMX reports whether the request came from the in-page script rather
// than a plain form post
func IsHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// SessionCookieID returns the session ID stored in the cookie, if any
func SessionCookieID(r *http.Request) (model.SessionID, bool) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return model.SessionID(cookie.Value), true
}

// SetSessionCookie points the browser at a game session. The cookie lasts
// for the browser session only.
func SetSessionCookie(w http.ResponseWriter, id model.SessionID) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    string(id),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie removes the game session cookie
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Redirect sends the browser to target. Script requests get an HX-Redirect
// header instead so the page navigates rather than swapping in a fragment.
func Redirect(w http.ResponseWriter, r *http.Request, target string) {
	if IsHTMX(r) {
		w.Header().Set("HX-Redirect", target)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// GameSession returns middleware that loads the cookie's session for the
// word in the route. A missing, expired or different-word session sends the
// browser to the word's start route, which seeds a fresh game.
func GameSession(controller session.ControllerInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			word := Word(r)
			restart := "/" + url.PathEscape(word)

			id, ok := SessionCookieID(r)
			if !ok {
				Redirect(w, r, restart)
				return
			}

			s, err := controller.GetSession(r.Context(), id)
			if err != nil || s.Source != word {
				Redirect(w, r, restart)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), s)))
		})
	}
}
