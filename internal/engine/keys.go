package engine

import (
	"unicode"
	"unicode/utf8"

	"github.com/mcoot/wordshop/internal/model"
)

// KeyAction maps a keyboard key (as named by KeyboardEvent.key) to the action
// it triggers in the given state. The second result is false when the key
// does nothing.
//
//   - Enter / Space commit a non-empty draft
//   - Backspace / Delete return the last draft letter, or uncommit the last
//     word when the draft is empty
//   - any single character picks the first pool letter it matches,
//     ignoring case
func KeyAction(s model.GameState, key string) (Action, bool) {
	switch key {
	case "Enter", " ", "Space", "Spacebar":
		if s.Draft.IsEmpty() {
			return Action{}, false
		}
		return Commit(), true

	case "Backspace", "Delete":
		if n := len(s.Draft.Letters); n > 0 {
			return RemoveLetter(s.Draft.Letters[n-1].ID), true
		}
		if n := len(s.Board); n > 0 {
			return Uncommit(s.Board[n-1].ID), true
		}
		return Action{}, false
	}

	r, size := utf8.DecodeRuneInString(key)
	if size == 0 || size != len(key) || r == utf8.RuneError {
		return Action{}, false
	}
	upper := unicode.ToUpper(r)
	for _, l := range s.Pool {
		if l.Letter == upper {
			return AddLetter(l.ID), true
		}
	}
	return Action{}, false
}
