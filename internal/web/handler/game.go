package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	rootmiddleware "github.com/mcoot/wordshop/internal/middleware"
	"github.com/mcoot/wordshop/internal/model"
	"github.com/mcoot/wordshop/internal/services/session"
	"github.com/mcoot/wordshop/internal/services/share"
	"github.com/mcoot/wordshop/internal/web/middleware"
	"github.com/mcoot/wordshop/internal/web/templates/components"
	"github.com/mcoot/wordshop/internal/web/templates/layout"
	"github.com/mcoot/wordshop/internal/web/templates/pages"
)

// GameHandler handles game pages and actions
type GameHandler struct {
	controller   session.ControllerInterface
	shareService *share.Service
	logger       *slog.Logger
}

// NewGameHandler creates a new GameHandler
func NewGameHandler(controller session.ControllerInterface, shareService *share.Service, logger *slog.Logger) *GameHandler {
	return &GameHandler{
		controller:   controller,
		shareService: shareService,
		logger:       logger,
	}
}

// Start seeds a new game for the word in the route and points the session
// cookie at it. Any game the browser was already playing is ended.
func (h *GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	word := middleware.Word(r)

	if old, ok := middleware.SessionCookieID(r); ok {
		if err := h.controller.EndSession(r.Context(), old); err != nil {
			h.log(r).Warn("failed to end previous session",
				slog.String("session_id", string(old)),
				slog.String("error", err.Error()),
			)
		}
	}

	s, err := h.controller.StartSession(r.Context(), word)
	if err != nil {
		middleware.ClearSessionCookie(w)
		middleware.SetFlash(w, middleware.FlashError, "Could not start a game, please try again")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	middleware.SetSessionCookie(w, s.ID)
	http.Redirect(w, r, components.GamePath(word, "play"), http.StatusSeeOther)
}

// Play renders the game page for the current session
func (h *GameHandler) Play(w http.ResponseWriter, r *http.Request) {
	s := middleware.GetSession(r.Context())
	word := middleware.Word(r)

	data := pages.GameData{
		PageData: layout.PageData{
			Title: word,
			Flash: middleware.GetFlash(r.Context()),
		},
		Word:    word,
		GameURL: h.shareService.GameURL(baseURL(r), word),
		State:   s.State,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := pages.Game(data).Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// AddLetter moves a pool letter to the draft
func (h *GameHandler) AddLetter(w http.ResponseWriter, r *http.Request) {
	id := model.LetterID(mux.Vars(r)["letter"])
	s := middleware.GetSession(r.Context())
	updated, err := h.controller.MoveLetterToDraft(r.Context(), s.ID, id)
	h.respond(w, r, updated, err)
}

// RemoveLetter returns a draft letter to the pool
func (h *GameHandler) RemoveLetter(w http.ResponseWriter, r *http.Request) {
	id := model.LetterID(mux.Vars(r)["letter"])
	s := middleware.GetSession(r.Context())
	updated, err := h.controller.ReturnLetterFromDraft(r.Context(), s.ID, id)
	h.respond(w, r, updated, err)
}

// Commit adds the draft to the board
func (h *GameHandler) Commit(w http.ResponseWriter, r *http.Request) {
	s := middleware.GetSession(r.Context())
	updated, err := h.controller.CommitDraft(r.Context(), s.ID)
	h.respond(w, r, updated, err)
}

// Uncommit takes a word off the board
func (h *GameHandler) Uncommit(w http.ResponseWriter, r *http.Request) {
	id := model.WordID(mux.Vars(r)["wid"])
	s := middleware.GetSession(r.Context())
	updated, err := h.controller.UncommitWord(r.Context(), s.ID, id)
	h.respond(w, r, updated, err)
}

// Move shifts a board word one place left or right
func (h *GameHandler) Move(w http.ResponseWriter, r *http.Request) {
	id := model.WordID(mux.Vars(r)["wid"])
	s := middleware.GetSession(r.Context())

	var delta int
	switch r.FormValue("dir") {
	case "left":
		delta = -1
	case "right":
		delta = 1
	}

	updated, err := h.controller.MoveWord(r.Context(), s.ID, id, delta)
	h.respond(w, r, updated, err)
}

// Reorder replaces the board order with the posted order fields
func (h *GameHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.respond(w, r, nil, err)
		return
	}

	fields := r.PostForm["order"]
	order := make([]model.WordID, len(fields))
	for i, id := range fields {
		order[i] = model.WordID(id)
	}

	s := middleware.GetSession(r.Context())
	updated, err := h.controller.ReorderBoard(r.Context(), s.ID, order)
	h.respond(w, r, updated, err)
}

// Shuffle scrambles the pool
func (h *GameHandler) Shuffle(w http.ResponseWriter, r *http.Request) {
	s := middleware.GetSession(r.Context())
	updated, err := h.controller.ShufflePool(r.Context(), s.ID)
	h.respond(w, r, updated, err)
}

// Key applies a key press
func (h *GameHandler) Key(w http.ResponseWriter, r *http.Request) {
	s := middleware.GetSession(r.Context())
	updated, err := h.controller.PressKey(r.Context(), s.ID, r.FormValue("key"))
	h.respond(w, r, updated, err)
}

// QR serves a PNG QR code of the game URL for the word
func (h *GameHandler) QR(w http.ResponseWriter, r *http.Request) {
	word := middleware.Word(r)

	size, _ := strconv.Atoi(r.URL.Query().Get("size"))
	png, err := h.shareService.QRCode(h.shareService.GameURL(baseURL(r), word), size)
	if errors.Is(err, share.ErrURLTooLong) {
		http.Error(w, "word is too long for a qr code", http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, "qr generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write(png)
}

// respond answers an action. Script requests get the re-rendered game
// fragment; form posts are redirected back to the game page.
func (h *GameHandler) respond(w http.ResponseWriter, r *http.Request, s *model.Session, err error) {
	word := middleware.Word(r)

	if err != nil {
		if errors.Is(err, model.ErrSessionNotFound) {
			middleware.SetFlash(w, middleware.FlashInfo, "That game expired, here is a fresh one")
			middleware.Redirect(w, r, components.GamePath(word))
			return
		}
		h.log(r).Error("game action failed",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		middleware.SetFlash(w, middleware.FlashError, "Something went wrong, please try again")
		middleware.Redirect(w, r, components.GamePath(word, "play"))
		return
	}

	if !middleware.IsHTMX(r) {
		http.Redirect(w, r, components.GamePath(word, "play"), http.StatusSeeOther)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := components.Game(word, s.State).Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func (h *GameHandler) log(r *http.Request) *slog.Logger {
	return rootmiddleware.FromContext(r.Context(), h.logger)
}

// baseURL derives the site root the browser used from Host, TLS and
// X-Forwarded-Proto. These headers are trusted as sent; set --public-url
// when the server is reachable by untrusted clients.
func baseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + r.Host
}
