package handler

import (
	"context"
	"net/http"

	"github.com/mcoot/wordshop/internal/api/response"
)

// SessionCounter reports how many sessions are live
type SessionCounter interface {
	CountSessions(ctx context.Context) (int, error)
}

// HealthHandler reports whether the server can reach its session store
type HealthHandler struct {
	counter SessionCounter
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(counter SessionCounter) *HealthHandler {
	return &HealthHandler{counter: counter}
}

// Get handles GET /api/v1/health
func (h *HealthHandler) Get(w http.ResponseWriter, r *http.Request) {
	count, err := h.counter.CountSessions(r.Context())
	if err != nil {
		response.JSON(w, http.StatusServiceUnavailable, response.Health{Status: "unavailable"})
		return
	}
	response.JSON(w, http.StatusOK, response.Health{Status: "ok", Sessions: count})
}
