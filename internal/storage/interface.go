package storage

import (
	"context"
	"time"

	"github.com/mcoot/wordshop/internal/model"
)

// DefaultSessionTTL is how long a game may sit idle before it is dropped
const DefaultSessionTTL = 2 * time.Hour

// Storage keeps live game sessions between requests. A session that has not
// been saved or read within the backend's TTL is gone and reads as
// model.ErrSessionNotFound.
type Storage interface {
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, id model.SessionID) (*model.Session, error)
	DeleteSession(ctx context.Context, id model.SessionID) error
	CountSessions(ctx context.Context) (int, error)
}
