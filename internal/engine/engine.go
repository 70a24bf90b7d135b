// Package engine implements the letter/word state machine of a game.
//
// Every operation is a pure function from a GameState to a new GameState.
// Inputs that reference letters or words not where the operation expects them
// leave the state untouched; nothing here returns an error. The input state
// is never mutated, so callers may keep the previous snapshot and diff it
// against the result by letter and word ID.
package engine

import (
	"strconv"
	"strings"

	"github.com/mcoot/wordshop/internal/model"
)

// Shuffler supplies the randomness used by ShufflePool
type Shuffler interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int
}

// Decompose upper-cases the source text and keeps only word characters
// (A-Z, 0-9 and underscore)
func Decompose(source string) []rune {
	var letters []rune
	for _, r := range strings.ToUpper(source) {
		if isWordChar(r) {
			letters = append(letters, r)
		}
	}
	return letters
}

func isWordChar(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_'
}

// New seeds a game from the source word: every letter in the pool, an empty
// draft and an empty board
func New(source string) model.GameState {
	state := model.GameState{
		Pool:  []model.Letter{},
		Board: []model.Word{},
	}
	for _, r := range Decompose(source) {
		state.Pool = append(state.Pool, model.Letter{ID: nextLetterID(&state), Letter: r})
	}
	state.Draft = emptyWord(&state)
	return state
}

// CommitDraft appends the draft to the board and starts a fresh draft.
// An empty draft is left alone.
func CommitDraft(s model.GameState) model.GameState {
	if s.Draft.IsEmpty() {
		return s
	}
	next := s.Clone()
	next.Board = append(next.Board, next.Draft)
	next.Draft = emptyWord(&next)
	return next
}

// UncommitWord removes a word from the board and returns its letters, in
// order, to the end of the pool
func UncommitWord(s model.GameState, id model.WordID) model.GameState {
	idx := s.FindWord(id)
	if idx < 0 {
		return s
	}
	next := s.Clone()
	word := next.Board[idx]
	next.Board = append(next.Board[:idx], next.Board[idx+1:]...)
	next.Pool = append(next.Pool, word.Letters...)
	return next
}

// MoveLetterToDraft moves a pool letter to the end of the draft
func MoveLetterToDraft(s model.GameState, id model.LetterID) model.GameState {
	idx := s.FindPoolLetter(id)
	if idx < 0 {
		return s
	}
	next := s.Clone()
	letter := next.Pool[idx]
	next.Pool = append(next.Pool[:idx], next.Pool[idx+1:]...)
	next.Draft.Letters = append(next.Draft.Letters, letter)
	return next
}

// ReturnLetterFromDraft moves a draft letter back to the end of the pool
func ReturnLetterFromDraft(s model.GameState, id model.LetterID) model.GameState {
	idx := s.FindDraftLetter(id)
	if idx < 0 {
		return s
	}
	next := s.Clone()
	letter := next.Draft.Letters[idx]
	next.Draft.Letters = append(next.Draft.Letters[:idx], next.Draft.Letters[idx+1:]...)
	next.Pool = append(next.Pool, letter)
	return next
}

// ReorderBoard rearranges the board to the given order. The order must name
// every committed word exactly once; anything else is ignored.
func ReorderBoard(s model.GameState, order []model.WordID) model.GameState {
	if !IsPermutation(s.BoardOrder(), order) {
		return s
	}
	next := s.Clone()
	byID := make(map[model.WordID]model.Word, len(next.Board))
	for _, w := range next.Board {
		byID[w.ID] = w
	}
	for i, id := range order {
		next.Board[i] = byID[id]
	}
	return next
}

// ShufflePool returns the state with the pool in a uniformly random order
// (Fisher-Yates)
func ShufflePool(s model.GameState, rng Shuffler) model.GameState {
	next := s.Clone()
	for i := len(next.Pool) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		next.Pool[i], next.Pool[j] = next.Pool[j], next.Pool[i]
	}
	return next
}

// IsPermutation reports whether order holds exactly the IDs in current,
// each once, in any order
func IsPermutation(current, order []model.WordID) bool {
	if len(current) != len(order) {
		return false
	}
	remaining := make(map[model.WordID]int, len(current))
	for _, id := range current {
		remaining[id]++
	}
	for _, id := range order {
		if remaining[id] == 0 {
			return false
		}
		remaining[id]--
	}
	return true
}

// MoveWord builds the board order with one word shifted by delta positions,
// clamped to the ends of the board. It returns false when the word is not on
// the board or would not move.
func MoveWord(s model.GameState, id model.WordID, delta int) ([]model.WordID, bool) {
	idx := s.FindWord(id)
	if idx < 0 {
		return nil, false
	}
	target := min(max(idx+delta, 0), len(s.Board)-1)
	if target == idx {
		return nil, false
	}
	order := s.BoardOrder()
	order = append(order[:idx], order[idx+1:]...)
	order = append(order[:target], append([]model.WordID{id}, order[target:]...)...)
	return order, true
}

// Equal reports whether two states hold the same letters and words in the
// same places
func Equal(a, b model.GameState) bool {
	if a.Seq != b.Seq || a.Draft.ID != b.Draft.ID || len(a.Board) != len(b.Board) {
		return false
	}
	if !sameLetters(a.Pool, b.Pool) || !sameLetters(a.Draft.Letters, b.Draft.Letters) {
		return false
	}
	for i := range a.Board {
		if a.Board[i].ID != b.Board[i].ID || !sameLetters(a.Board[i].Letters, b.Board[i].Letters) {
			return false
		}
	}
	return true
}

func sameLetters(a, b []model.Letter) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func emptyWord(s *model.GameState) model.Word {
	s.Seq++
	return model.Word{ID: model.WordID("W" + strconv.Itoa(s.Seq)), Letters: []model.Letter{}}
}

func nextLetterID(s *model.GameState) model.LetterID {
	s.Seq++
	return model.LetterID("L" + strconv.Itoa(s.Seq))
}
