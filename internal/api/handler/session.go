package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordshop/internal/api/apierr"
	"github.com/mcoot/wordshop/internal/api/request"
	"github.com/mcoot/wordshop/internal/api/response"
	"github.com/mcoot/wordshop/internal/middleware"
	"github.com/mcoot/wordshop/internal/model"
	"github.com/mcoot/wordshop/internal/services/session"
)

// SessionHandler handles session endpoints
type SessionHandler struct {
	controller session.ControllerInterface
	logger     *slog.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(controller session.ControllerInterface, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		controller: controller,
		logger:     logger,
	}
}

func sessionID(r *http.Request) model.SessionID {
	return model.SessionID(mux.Vars(r)["id"])
}

// Start handles POST /api/v1/sessions
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req request.StartSessionRequest
	if err := request.Decode(r, &req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError(err.Error()))
		return
	}
	if req.Source == nil {
		apierr.WriteError(w, model.ErrInvalidSourceWord)
		return
	}

	s, err := h.controller.StartSession(r.Context(), *req.Source)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	response.CreatedSession(w, "/api/v1/sessions/"+string(s.ID), s)
}

// Get handles GET /api/v1/sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.controller.GetSession(r.Context(), sessionID(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.WriteSession(w, http.StatusOK, s)
}

// End handles DELETE /api/v1/sessions/{id}
func (h *SessionHandler) End(w http.ResponseWriter, r *http.Request) {
	if err := h.controller.EndSession(r.Context(), sessionID(r)); err != nil {
		h.fail(w, r, err)
		return
	}
	response.NoContent(w)
}

// AddLetter handles POST /api/v1/sessions/{id}/draft
func (h *SessionHandler) AddLetter(w http.ResponseWriter, r *http.Request) {
	var req request.AddLetterRequest
	if err := request.Decode(r, &req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError(err.Error()))
		return
	}
	if req.LetterID == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("letter_id is required"))
		return
	}

	h.apply(w, r, func(ctx context.Context, id model.SessionID) (*model.Session, error) {
		return h.controller.MoveLetterToDraft(ctx, id, model.LetterID(req.LetterID))
	})
}

// RemoveLetter handles DELETE /api/v1/sessions/{id}/draft/{letter_id}
func (h *SessionHandler) RemoveLetter(w http.ResponseWriter, r *http.Request) {
	letterID := model.LetterID(mux.Vars(r)["letter_id"])
	h.apply(w, r, func(ctx context.Context, id model.SessionID) (*model.Session, error) {
		return h.controller.ReturnLetterFromDraft(ctx, id, letterID)
	})
}

// Commit handles POST /api/v1/sessions/{id}/commit
func (h *SessionHandler) Commit(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, h.controller.CommitDraft)
}

// Uncommit handles DELETE /api/v1/sessions/{id}/board/{word_id}
func (h *SessionHandler) Uncommit(w http.ResponseWriter, r *http.Request) {
	wordID := model.WordID(mux.Vars(r)["word_id"])
	h.apply(w, r, func(ctx context.Context, id model.SessionID) (*model.Session, error) {
		return h.controller.UncommitWord(ctx, id, wordID)
	})
}

// Reorder handles PUT /api/v1/sessions/{id}/board
func (h *SessionHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var req request.ReorderBoardRequest
	if err := request.Decode(r, &req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError(err.Error()))
		return
	}
	if req.Order == nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("order is required"))
		return
	}

	order := make([]model.WordID, len(req.Order))
	for i, id := range req.Order {
		order[i] = model.WordID(id)
	}
	h.apply(w, r, func(ctx context.Context, id model.SessionID) (*model.Session, error) {
		return h.controller.ReorderBoard(ctx, id, order)
	})
}

// Shuffle handles POST /api/v1/sessions/{id}/shuffle
func (h *SessionHandler) Shuffle(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, h.controller.ShufflePool)
}

// Key handles POST /api/v1/sessions/{id}/keys
func (h *SessionHandler) Key(w http.ResponseWriter, r *http.Request) {
	var req request.KeyRequest
	if err := request.Decode(r, &req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError(err.Error()))
		return
	}
	if req.Key == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("key is required"))
		return
	}

	h.apply(w, r, func(ctx context.Context, id model.SessionID) (*model.Session, error) {
		return h.controller.PressKey(ctx, id, req.Key)
	})
}

// apply runs one state transition and writes the resulting session.
// Transitions that change nothing still answer 200 with the current state.
func (h *SessionHandler) apply(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, id model.SessionID) (*model.Session, error),
) {
	s, err := op(r.Context(), sessionID(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.WriteSession(w, http.StatusOK, s)
}

func (h *SessionHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	level := slog.LevelDebug
	if apierr.Status(err) >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	middleware.FromContext(r.Context(), h.logger).Log(r.Context(), level, "session request failed",
		slog.String("session_id", string(sessionID(r))),
		slog.String("error", err.Error()),
	)
	apierr.WriteError(w, err)
}
