package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordshop/internal/engine"
	"github.com/mcoot/wordshop/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.SessionTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func newSession(id model.SessionID, source string) *model.Session {
	return &model.Session{
		ID:        id,
		Source:    source,
		State:     engine.New(source),
		CreatedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *StorageSuite) TestSaveAndGetSession() {
	session := newSession("session-1", "cat")
	session.State = engine.MoveLetterToDraft(session.State, session.State.Pool[1].ID)
	session.State = engine.CommitDraft(session.State)

	err := s.storage.SaveSession(s.ctx, session)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetSession(s.ctx, "session-1")
	s.Require().NoError(err)
	s.Equal(session.Source, retrieved.Source)
	s.True(engine.Equal(session.State, retrieved.State))
	s.Equal("A", retrieved.State.Board[0].String())
	s.True(session.CreatedAt.Equal(retrieved.CreatedAt))
}

func (s *StorageSuite) TestGetSessionNotFound() {
	_, err := s.storage.GetSession(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestDeleteSession() {
	_ = s.storage.SaveSession(s.ctx, newSession("session-1", "cat"))

	err := s.storage.DeleteSession(s.ctx, "session-1")
	s.Require().NoError(err)

	_, err = s.storage.GetSession(s.ctx, "session-1")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestCountSessions() {
	_ = s.storage.SaveSession(s.ctx, newSession("session-1", "cat"))
	_ = s.storage.SaveSession(s.ctx, newSession("session-2", "dog"))
	s.mini.Set("unrelated", "value")

	count, err := s.storage.CountSessions(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, count)
}

func (s *StorageSuite) TestSessionTTL() {
	_ = s.storage.SaveSession(s.ctx, newSession("session-1", "cat"))

	s.Equal(time.Hour, s.mini.TTL(keyspace("wordshop").session("session-1")))
}

func (s *StorageSuite) TestSaveRefreshesTTL() {
	session := newSession("session-1", "cat")
	_ = s.storage.SaveSession(s.ctx, session)

	s.mini.FastForward(45 * time.Minute)
	s.Equal(15*time.Minute, s.mini.TTL(keyspace("wordshop").session("session-1")))

	_ = s.storage.SaveSession(s.ctx, session)
	s.Equal(time.Hour, s.mini.TTL(keyspace("wordshop").session("session-1")))
}

func (s *StorageSuite) TestSessionExpires() {
	_ = s.storage.SaveSession(s.ctx, newSession("session-1", "cat"))

	s.mini.FastForward(2 * time.Hour)

	_, err := s.storage.GetSession(s.ctx, "session-1")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestReadRefreshesTTL() {
	_ = s.storage.SaveSession(s.ctx, newSession("session-1", "cat"))

	s.mini.FastForward(45 * time.Minute)
	_, err := s.storage.GetSession(s.ctx, "session-1")
	s.Require().NoError(err)

	s.Equal(time.Hour, s.mini.TTL(keyspace("wordshop").session("session-1")))
}

func (s *StorageSuite) TestKeyPrefix() {
	client := redis.NewClient(&redis.Options{Addr: s.mini.Addr()})
	cfg := DefaultConfig()
	cfg.KeyPrefix = "staging"
	other := NewWithClient(client, cfg)
	defer func() { _ = other.Close() }()

	_ = other.SaveSession(s.ctx, newSession("abc", "cat"))
	s.True(s.mini.Exists("staging:session:abc"))

	// sessions under another prefix are invisible
	_, err := s.storage.GetSession(s.ctx, "abc")
	s.ErrorIs(err, model.ErrSessionNotFound)
	count, err := s.storage.CountSessions(s.ctx)
	s.Require().NoError(err)
	s.Zero(count)
}
