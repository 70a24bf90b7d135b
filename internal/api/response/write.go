package response

import (
	"encoding/json"
	"net/http"

	"github.com/mcoot/wordshop/internal/model"
)

// JSON writes a JSON response
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// WriteSession writes a session as uncacheable JSON
func WriteSession(w http.ResponseWriter, status int, s *model.Session) {
	w.Header().Set("Cache-Control", "no-store")
	JSON(w, status, SessionFromModel(s))
}

// CreatedSession writes a 201 with the new session's location
func CreatedSession(w http.ResponseWriter, location string, s *model.Session) {
	w.Header().Set("Location", location)
	WriteSession(w, http.StatusCreated, s)
}

// NoContent writes a 204 No Content response
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
