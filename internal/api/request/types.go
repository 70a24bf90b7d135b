package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxBodyBytes caps request bodies; every request here is tiny
const MaxBodyBytes = 64 << 10

// StartSessionRequest is the request body for starting a session.
// Source is a pointer so a missing field can be told apart from "".
type StartSessionRequest struct {
	Source *string `json:"source"`
}

// AddLetterRequest is the request body for moving a pool letter to the draft
type AddLetterRequest struct {
	LetterID string `json:"letter_id"`
}

// ReorderBoardRequest is the request body for reordering the board
type ReorderBoardRequest struct {
	Order []string `json:"order"`
}

// KeyRequest is the request body for a key press
type KeyRequest struct {
	Key string `json:"key"`
}

// Decode reads a JSON body into dst. An empty body leaves dst untouched.
func Decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}
