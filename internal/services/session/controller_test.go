package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordshop/internal/dependencies/mocks"
	"github.com/mcoot/wordshop/internal/engine"
	"github.com/mcoot/wordshop/internal/model"
	"github.com/mcoot/wordshop/internal/storage/memory"
	"github.com/mcoot/wordshop/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
	clock      *mocks.MockClock
	random     *mocks.MockRandom
	controller *Controller
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.storage = memory.New(s.clock, 0)
	s.random = mocks.NewMockRandom()
	s.controller = NewController(s.storage, s.clock, s.random, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ControllerSuite) startCat() *model.Session {
	s.random.QueueUUID("session-1")
	session, err := s.controller.StartSession(s.ctx, "cat")
	s.Require().NoError(err)
	return session
}

func (s *ControllerSuite) poolLetter(session *model.Session, r rune) model.LetterID {
	for _, l := range session.State.Pool {
		if l.Letter == r {
			return l.ID
		}
	}
	s.FailNow("letter not in pool", string(r))
	return ""
}

// StartSession tests

func (s *ControllerSuite) TestStartSessionSeedsPool() {
	session := s.startCat()

	s.Equal(model.SessionID("session-1"), session.ID)
	s.Equal("cat", session.Source)
	s.Equal("CAT", model.Word{Letters: session.State.Pool}.String())
	s.True(session.State.Draft.IsEmpty())
	s.Empty(session.State.Board)
	s.Equal(s.clock.Now(), session.CreatedAt)
	s.Equal(s.clock.Now(), session.UpdatedAt)
}

func (s *ControllerSuite) TestStartSessionIsPersisted() {
	session := s.startCat()

	stored, err := s.storage.GetSession(s.ctx, session.ID)
	s.Require().NoError(err)
	s.True(engine.Equal(session.State, stored.State))
}

func (s *ControllerSuite) TestStartSessionWithNoWordCharacters() {
	session, err := s.controller.StartSession(s.ctx, "?! -")
	s.Require().NoError(err)

	s.Empty(session.State.Pool)
	s.True(session.State.PoolExhausted())
}

func (s *ControllerSuite) TestStartSessionsAreIndependent() {
	first := s.startCat()
	second, err := s.controller.StartSession(s.ctx, "dog")
	s.Require().NoError(err)

	s.NotEqual(first.ID, second.ID)

	_, err = s.controller.MoveLetterToDraft(s.ctx, first.ID, s.poolLetter(first, 'C'))
	s.Require().NoError(err)

	other, err := s.controller.GetSession(s.ctx, second.ID)
	s.Require().NoError(err)
	s.Equal("DOG", model.Word{Letters: other.State.Pool}.String())
}

// GetSession / EndSession tests

func (s *ControllerSuite) TestGetSessionNotFound() {
	_, err := s.controller.GetSession(s.ctx, "missing")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *ControllerSuite) TestEndSessionRemovesIt() {
	session := s.startCat()

	s.Require().NoError(s.controller.EndSession(s.ctx, session.ID))

	_, err := s.controller.GetSession(s.ctx, session.ID)
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *ControllerSuite) TestEndSessionIsIdempotent() {
	session := s.startCat()

	s.NoError(s.controller.EndSession(s.ctx, session.ID))
	s.NoError(s.controller.EndSession(s.ctx, session.ID))
	s.NoError(s.controller.EndSession(s.ctx, "never-existed"))
}

// Operation tests

func (s *ControllerSuite) TestBuildAndCommitWord() {
	session := s.startCat()

	for _, r := range "CAT" {
		var err error
		session, err = s.controller.MoveLetterToDraft(s.ctx, session.ID, s.poolLetter(session, r))
		s.Require().NoError(err)
	}
	s.Equal("CAT", session.State.Draft.String())
	s.True(session.State.PoolExhausted())

	draftID := session.State.Draft.ID
	session, err := s.controller.CommitDraft(s.ctx, session.ID)
	s.Require().NoError(err)

	s.Require().Len(session.State.Board, 1)
	s.Equal(draftID, session.State.Board[0].ID)
	s.Equal("CAT", session.State.Board[0].String())
	s.True(session.State.Draft.IsEmpty())
	s.NotEqual(draftID, session.State.Draft.ID)
}

func (s *ControllerSuite) TestUncommitWordReturnsLetters() {
	session := s.startCat()
	session, _ = s.controller.MoveLetterToDraft(s.ctx, session.ID, s.poolLetter(session, 'A'))
	session, _ = s.controller.MoveLetterToDraft(s.ctx, session.ID, s.poolLetter(session, 'T'))
	session, _ = s.controller.CommitDraft(s.ctx, session.ID)
	wordID := session.State.Board[0].ID

	session, err := s.controller.UncommitWord(s.ctx, session.ID, wordID)
	s.Require().NoError(err)

	s.Empty(session.State.Board)
	s.Equal("CAT", model.Word{Letters: session.State.Pool}.String())
}

func (s *ControllerSuite) TestReturnLetterFromDraft() {
	session := s.startCat()
	c := s.poolLetter(session, 'C')
	session, _ = s.controller.MoveLetterToDraft(s.ctx, session.ID, c)

	session, err := s.controller.ReturnLetterFromDraft(s.ctx, session.ID, c)
	s.Require().NoError(err)

	s.True(session.State.Draft.IsEmpty())
	s.Equal("ATC", model.Word{Letters: session.State.Pool}.String())
}

func (s *ControllerSuite) TestReorderBoard() {
	session := s.startCat()
	for _, r := range "CAT" {
		session, _ = s.controller.MoveLetterToDraft(s.ctx, session.ID, s.poolLetter(session, r))
		session, _ = s.controller.CommitDraft(s.ctx, session.ID)
	}
	order := session.State.BoardOrder()
	reversed := []model.WordID{order[2], order[1], order[0]}

	session, err := s.controller.ReorderBoard(s.ctx, session.ID, reversed)
	s.Require().NoError(err)
	s.Equal(reversed, session.State.BoardOrder())

	session, err = s.controller.ReorderBoard(s.ctx, session.ID, []model.WordID{order[0]})
	s.Require().NoError(err)
	s.Equal(reversed, session.State.BoardOrder())
}

func (s *ControllerSuite) TestMoveWord() {
	session := s.startCat()
	for _, r := range "CA" {
		session, _ = s.controller.MoveLetterToDraft(s.ctx, session.ID, s.poolLetter(session, r))
		session, _ = s.controller.CommitDraft(s.ctx, session.ID)
	}
	order := session.State.BoardOrder()

	session, err := s.controller.MoveWord(s.ctx, session.ID, order[1], -1)
	s.Require().NoError(err)
	s.Equal([]model.WordID{order[1], order[0]}, session.State.BoardOrder())

	// Already first, nothing to do
	session, err = s.controller.MoveWord(s.ctx, session.ID, order[1], -1)
	s.Require().NoError(err)
	s.Equal([]model.WordID{order[1], order[0]}, session.State.BoardOrder())
}

func (s *ControllerSuite) TestShufflePoolUsesRandom() {
	session := s.startCat()
	// i=2 -> j=0, i=1 -> j=1: C A T -> T A C
	s.random.QueueIntn(0, 1)

	session, err := s.controller.ShufflePool(s.ctx, session.ID)
	s.Require().NoError(err)

	s.Equal("TAC", model.Word{Letters: session.State.Pool}.String())
}

func (s *ControllerSuite) TestPressKeySequence() {
	session := s.startCat()

	for _, key := range []string{"a", "T", "Enter", "c", "Backspace"} {
		var err error
		session, err = s.controller.PressKey(s.ctx, session.ID, key)
		s.Require().NoError(err)
	}

	s.Require().Len(session.State.Board, 1)
	s.Equal("AT", session.State.Board[0].String())
	s.True(session.State.Draft.IsEmpty())
	s.Equal("C", model.Word{Letters: session.State.Pool}.String())
}

func (s *ControllerSuite) TestPressUnmappedKeyIsNoOp() {
	session := s.startCat()
	before := session.State

	session, err := s.controller.PressKey(s.ctx, session.ID, "z")
	s.Require().NoError(err)
	s.True(engine.Equal(before, session.State))
}

func (s *ControllerSuite) TestNoOpDoesNotTouchUpdatedAt() {
	session := s.startCat()
	created := session.UpdatedAt
	s.clock.Advance(time.Minute)

	session, err := s.controller.CommitDraft(s.ctx, session.ID)
	s.Require().NoError(err)
	s.Equal(created, session.UpdatedAt)

	session, err = s.controller.MoveLetterToDraft(s.ctx, session.ID, s.poolLetter(session, 'C'))
	s.Require().NoError(err)
	s.Equal(created.Add(time.Minute), session.UpdatedAt)
}

func (s *ControllerSuite) TestOperationOnMissingSession() {
	_, err := s.controller.CommitDraft(s.ctx, "missing")
	s.ErrorIs(err, model.ErrSessionNotFound)

	_, err = s.controller.PressKey(s.ctx, "missing", "a")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *ControllerSuite) TestDispatchUnknownActionIsNoOp() {
	session := s.startCat()

	updated, err := s.controller.Dispatch(s.ctx, session.ID, engine.Action{Type: "explode"})
	s.Require().NoError(err)
	s.True(engine.Equal(session.State, updated.State))
}

func (s *ControllerSuite) TestConcurrentKeyPressesConserveLetters() {
	s.random.QueueUUID("session-1")
	session, err := s.controller.StartSession(s.ctx, "abcdefghijklmnop")
	s.Require().NoError(err)

	var wg sync.WaitGroup
	keys := []string{"a", "b", "c", "d", "e", "f", "g", "h", "Enter", "Backspace"}
	for i := 0; i < 50; i++ {
		key := keys[i%len(keys)]
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.controller.PressKey(s.ctx, session.ID, key)
		}()
	}
	wg.Wait()

	final, err := s.controller.GetSession(s.ctx, session.ID)
	s.Require().NoError(err)
	s.Len(final.State.AllLetters(), 16)
	s.Equal(0, s.controller.locks.size())
}
