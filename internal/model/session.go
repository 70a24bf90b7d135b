package model

import "time"

// SessionID uniquely identifies a game session
type SessionID string

// Session is one play-through of a source word. It lives only as long as the
// player stays on the game route.
type Session struct {
	ID        SessionID `json:"id"`
	Source    string    `json:"source"`
	State     GameState `json:"state"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
