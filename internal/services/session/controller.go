package session

import (
	"context"
	"log/slog"

	"github.com/mcoot/wordshop/internal/dependencies/clock"
	"github.com/mcoot/wordshop/internal/dependencies/random"
	"github.com/mcoot/wordshop/internal/engine"
	"github.com/mcoot/wordshop/internal/model"
	"github.com/mcoot/wordshop/internal/storage"
)

// Controller owns game sessions and applies engine transitions to them
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
	locks   *sessionLocks
}

// NewController creates a new session Controller
func NewController(
	storage storage.Storage,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger.With(slog.String("component", "session")),
		locks:   newSessionLocks(),
	}
}

// StartSession seeds a new game from the source word. Text with no word
// characters still starts a game, just with an empty pool.
func (c *Controller) StartSession(ctx context.Context, source string) (*model.Session, error) {
	now := c.clock.Now()
	session := &model.Session{
		ID:        model.SessionID(c.random.UUID()),
		Source:    source,
		State:     engine.New(source),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.storage.SaveSession(ctx, session); err != nil {
		c.logger.Error("failed to save session",
			slog.String("session_id", string(session.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("session started",
		slog.String("session_id", string(session.ID)),
		slog.String("source", source),
		slog.Int("letter_count", len(session.State.Pool)),
	)

	return session, nil
}

// GetSession retrieves a session by ID
func (c *Controller) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	return c.storage.GetSession(ctx, id)
}

// EndSession discards a session. Ending an unknown session is not an error.
func (c *Controller) EndSession(ctx context.Context, id model.SessionID) error {
	unlock := c.locks.lock(id)
	defer unlock()

	if err := c.storage.DeleteSession(ctx, id); err != nil {
		return err
	}

	c.logger.Info("session ended", slog.String("session_id", string(id)))
	return nil
}

// Dispatch applies an action to the session's game state
func (c *Controller) Dispatch(ctx context.Context, id model.SessionID, action engine.Action) (*model.Session, error) {
	return c.update(ctx, id, func(model.GameState) (engine.Action, bool) {
		return action, true
	})
}

// CommitDraft moves the draft onto the board
func (c *Controller) CommitDraft(ctx context.Context, id model.SessionID) (*model.Session, error) {
	return c.Dispatch(ctx, id, engine.Commit())
}

// UncommitWord takes a word off the board and returns its letters to the pool
func (c *Controller) UncommitWord(ctx context.Context, id model.SessionID, wordID model.WordID) (*model.Session, error) {
	return c.Dispatch(ctx, id, engine.Uncommit(wordID))
}

// MoveLetterToDraft moves a pool letter onto the end of the draft
func (c *Controller) MoveLetterToDraft(ctx context.Context, id model.SessionID, letterID model.LetterID) (*model.Session, error) {
	return c.Dispatch(ctx, id, engine.AddLetter(letterID))
}

// ReturnLetterFromDraft moves a draft letter back to the pool
func (c *Controller) ReturnLetterFromDraft(ctx context.Context, id model.SessionID, letterID model.LetterID) (*model.Session, error) {
	return c.Dispatch(ctx, id, engine.RemoveLetter(letterID))
}

// ReorderBoard rearranges committed words
func (c *Controller) ReorderBoard(ctx context.Context, id model.SessionID, order []model.WordID) (*model.Session, error) {
	return c.Dispatch(ctx, id, engine.Reorder(order))
}

// ShufflePool scrambles the order of the pool
func (c *Controller) ShufflePool(ctx context.Context, id model.SessionID) (*model.Session, error) {
	return c.Dispatch(ctx, id, engine.Shuffle())
}

// PressKey applies whatever the key maps to in the current state
func (c *Controller) PressKey(ctx context.Context, id model.SessionID, key string) (*model.Session, error) {
	return c.update(ctx, id, func(state model.GameState) (engine.Action, bool) {
		return engine.KeyAction(state, key)
	})
}

// MoveWord shifts one committed word left (negative delta) or right
func (c *Controller) MoveWord(ctx context.Context, id model.SessionID, wordID model.WordID, delta int) (*model.Session, error) {
	return c.update(ctx, id, func(state model.GameState) (engine.Action, bool) {
		order, ok := engine.MoveWord(state, wordID, delta)
		if !ok {
			return engine.Action{}, false
		}
		return engine.Reorder(order), true
	})
}

// update runs choose against the current state and saves the result. The
// action is picked under the session lock so key presses and moves always
// see the latest state.
func (c *Controller) update(
	ctx context.Context,
	id model.SessionID,
	choose func(model.GameState) (engine.Action, bool),
) (*model.Session, error) {
	unlock := c.locks.lock(id)
	defer unlock()

	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	action, ok := choose(session.State)
	if !ok {
		return session, nil
	}

	next := engine.Apply(session.State, action, c.random)
	if engine.Equal(session.State, next) {
		c.logger.Debug("action had no effect",
			slog.String("session_id", string(id)),
			slog.String("action", string(action.Type)),
		)
		return session, nil
	}

	session.State = next
	session.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveSession(ctx, session); err != nil {
		c.logger.Error("failed to save session",
			slog.String("session_id", string(id)),
			slog.String("action", string(action.Type)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Debug("action applied",
		slog.String("session_id", string(id)),
		slog.String("action", string(action.Type)),
		slog.Int("pool", len(next.Pool)),
		slog.Int("board", len(next.Board)),
	)

	return session, nil
}

// Interface for dependency injection
type ControllerInterface interface {
	StartSession(ctx context.Context, source string) (*model.Session, error)
	GetSession(ctx context.Context, id model.SessionID) (*model.Session, error)
	EndSession(ctx context.Context, id model.SessionID) error
	Dispatch(ctx context.Context, id model.SessionID, action engine.Action) (*model.Session, error)
	CommitDraft(ctx context.Context, id model.SessionID) (*model.Session, error)
	UncommitWord(ctx context.Context, id model.SessionID, wordID model.WordID) (*model.Session, error)
	MoveLetterToDraft(ctx context.Context, id model.SessionID, letterID model.LetterID) (*model.Session, error)
	ReturnLetterFromDraft(ctx context.Context, id model.SessionID, letterID model.LetterID) (*model.Session, error)
	ReorderBoard(ctx context.Context, id model.SessionID, order []model.WordID) (*model.Session, error)
	ShufflePool(ctx context.Context, id model.SessionID) (*model.Session, error)
	PressKey(ctx context.Context, id model.SessionID, key string) (*model.Session, error)
	MoveWord(ctx context.Context, id model.SessionID, wordID model.WordID, delta int) (*model.Session, error)
}

var _ ControllerInterface = (*Controller)(nil)
