package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordshop/internal/api/apierr"
	"github.com/mcoot/wordshop/internal/api/handler"
	"github.com/mcoot/wordshop/internal/api/middleware"
	"github.com/mcoot/wordshop/internal/services/session"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	SessionController session.ControllerInterface
	SessionCounter    handler.SessionCounter
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	sessionHandler := handler.NewSessionHandler(cfg.SessionController, cfg.Logger)
	healthHandler := handler.NewHealthHandler(cfg.SessionCounter)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Logging(cfg.Logger))
	api.Use(middleware.Recovery(cfg.Logger))

	api.HandleFunc("/health", healthHandler.Get).Methods(http.MethodGet)

	// Session lifecycle
	api.HandleFunc("/sessions", sessionHandler.Start).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}", sessionHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}", sessionHandler.End).Methods(http.MethodDelete)

	// Game state transitions
	api.HandleFunc("/sessions/{id}/draft", sessionHandler.AddLetter).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/draft/{letter_id}", sessionHandler.RemoveLetter).Methods(http.MethodDelete)
	api.HandleFunc("/sessions/{id}/commit", sessionHandler.Commit).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/board", sessionHandler.Reorder).Methods(http.MethodPut)
	api.HandleFunc("/sessions/{id}/board/{word_id}", sessionHandler.Uncommit).Methods(http.MethodDelete)
	api.HandleFunc("/sessions/{id}/shuffle", sessionHandler.Shuffle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/keys", sessionHandler.Key).Methods(http.MethodPost)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		apierr.WriteError(w, apierr.NewNotFoundError())
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		apierr.WriteError(w, apierr.NewMethodNotAllowedError())
	})

	return r
}
