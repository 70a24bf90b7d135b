package response

import (
	"time"

	"github.com/mcoot/wordshop/internal/model"
)

// Letter represents a letter tile in API responses
type Letter struct {
	ID     string `json:"id"`
	Letter string `json:"letter"`
}

// Word represents the draft or a committed word
type Word struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Letters []Letter `json:"letters"`
}

// Session is the response for every session endpoint
type Session struct {
	ID            string    `json:"id"`
	Source        string    `json:"source"`
	Pool          []Letter  `json:"pool"`
	Draft         Word      `json:"draft"`
	Board         []Word    `json:"board"`
	PoolExhausted bool      `json:"pool_exhausted"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Health is the response for the health endpoint
type Health struct {
	Status   string `json:"status"`
	Sessions int    `json:"sessions"`
}

// LettersFromModel converts letters, never returning nil
func LettersFromModel(letters []model.Letter) []Letter {
	out := make([]Letter, 0, len(letters))
	for _, l := range letters {
		out = append(out, Letter{ID: string(l.ID), Letter: string(l.Letter)})
	}
	return out
}

// WordFromModel converts a model.Word
func WordFromModel(w model.Word) Word {
	return Word{
		ID:      string(w.ID),
		Text:    w.String(),
		Letters: LettersFromModel(w.Letters),
	}
}

// SessionFromModel converts a model.Session
func SessionFromModel(s *model.Session) Session {
	board := make([]Word, 0, len(s.State.Board))
	for _, w := range s.State.Board {
		board = append(board, WordFromModel(w))
	}
	return Session{
		ID:            string(s.ID),
		Source:        s.Source,
		Pool:          LettersFromModel(s.State.Pool),
		Draft:         WordFromModel(s.State.Draft),
		Board:         board,
		PoolExhausted: s.State.PoolExhausted(),
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
