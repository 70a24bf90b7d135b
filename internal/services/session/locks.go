package session

import (
	"sync"

	"github.com/mcoot/wordshop/internal/model"
)

// sessionLocks hands out one mutex per session so load/apply/save runs
// one request at a time for a given session
type sessionLocks struct {
	mu    sync.Mutex
	locks map[model.SessionID]*sessionLock
}

type sessionLock struct {
	mu   sync.Mutex
	refs int
}

func newSessionLocks() *sessionLocks {
	return &sessionLocks{locks: make(map[model.SessionID]*sessionLock)}
}

// lock blocks until the session's mutex is held and returns its release func
func (l *sessionLocks) lock(id model.SessionID) func() {
	l.mu.Lock()
	entry, ok := l.locks[id]
	if !ok {
		entry = &sessionLock{}
		l.locks[id] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()
	return func() {
		entry.mu.Unlock()

		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}
}

// size returns the number of sessions with a lock in use
func (l *sessionLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
