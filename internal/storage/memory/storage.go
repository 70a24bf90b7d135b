package memory

import (
	"context"
	"sync"
	"time"

	"github.com/mcoot/wordshop/internal/dependencies/clock"
	"github.com/mcoot/wordshop/internal/model"
	"github.com/mcoot/wordshop/internal/storage"
)

type entry struct {
	session   *model.Session
	expiresAt time.Time
}

// Storage is an in-memory implementation of the storage interface.
// Sessions are copied on the way in and out so callers never share state.
// Each save or read pushes a session's expiry out by the TTL; a TTL of zero
// keeps sessions until they are deleted.
type Storage struct {
	mu       sync.Mutex
	clock    clock.Clock
	ttl      time.Duration
	sessions map[model.SessionID]entry
}

// New creates a new in-memory storage instance
func New(clk clock.Clock, ttl time.Duration) *Storage {
	return &Storage{
		clock:    clk,
		ttl:      ttl,
		sessions: make(map[model.SessionID]entry),
	}
}

var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	s.purge(now)
	s.sessions[session.ID] = entry{session: copySession(session), expiresAt: now.Add(s.ttl)}
	return nil
}

func (s *Storage) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	e, ok := s.sessions[id]
	if !ok || s.expired(e, now) {
		delete(s.sessions, id)
		return nil, model.ErrSessionNotFound
	}
	e.expiresAt = now.Add(s.ttl)
	s.sessions[id] = e
	return copySession(e.session), nil
}

func (s *Storage) DeleteSession(ctx context.Context, id model.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

func (s *Storage) CountSessions(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purge(s.clock.Now())
	return len(s.sessions), nil
}

func (s *Storage) expired(e entry, now time.Time) bool {
	return s.ttl > 0 && !now.Before(e.expiresAt)
}

// purge drops expired sessions; callers hold mu
func (s *Storage) purge(now time.Time) {
	for id, e := range s.sessions {
		if s.expired(e, now) {
			delete(s.sessions, id)
		}
	}
}

func copySession(session *model.Session) *model.Session {
	c := *session
	c.State = session.State.Clone()
	return &c
}
