package model

// LetterID uniquely identifies a letter within a session
type LetterID string

// WordID uniquely identifies a word within a session
type WordID string

// Letter is a single tile decomposed from the source word.
// IDs stay the same wherever the letter moves.
type Letter struct {
	ID     LetterID `json:"id"`
	Letter rune     `json:"letter"`
}

// Word is an ordered run of letters, either the draft or a committed word
type Word struct {
	ID      WordID   `json:"id"`
	Letters []Letter `json:"letters"`
}

// String returns the word's letters as text
func (w Word) String() string {
	runes := make([]rune, len(w.Letters))
	for i, l := range w.Letters {
		runes[i] = l.Letter
	}
	return string(runes)
}

// IsEmpty returns true if the word has no letters
func (w Word) IsEmpty() bool {
	return len(w.Letters) == 0
}

// GameState holds every letter of one game: unused letters in Pool, the word
// being assembled in Draft, and committed words on the Board.
type GameState struct {
	Pool  []Letter `json:"pool"`
	Draft Word     `json:"draft"`
	Board []Word   `json:"board"`

	// Seq is the last identifier number handed out in this game
	Seq int `json:"seq"`
}

// PoolExhausted returns true once every letter has left the pool
func (s GameState) PoolExhausted() bool {
	return len(s.Pool) == 0
}

// AllLetters returns every letter in the game: pool, then draft, then board
func (s GameState) AllLetters() []Letter {
	all := make([]Letter, 0, len(s.Pool)+len(s.Draft.Letters))
	all = append(all, s.Pool...)
	all = append(all, s.Draft.Letters...)
	for _, w := range s.Board {
		all = append(all, w.Letters...)
	}
	return all
}

// FindPoolLetter returns the index of the letter in the pool, or -1
func (s GameState) FindPoolLetter(id LetterID) int {
	return indexOfLetter(s.Pool, id)
}

// FindDraftLetter returns the index of the letter in the draft, or -1
func (s GameState) FindDraftLetter(id LetterID) int {
	return indexOfLetter(s.Draft.Letters, id)
}

// FindWord returns the index of the committed word on the board, or -1
func (s GameState) FindWord(id WordID) int {
	for i, w := range s.Board {
		if w.ID == id {
			return i
		}
	}
	return -1
}

// BoardOrder returns the committed word IDs in board order
func (s GameState) BoardOrder() []WordID {
	ids := make([]WordID, len(s.Board))
	for i, w := range s.Board {
		ids[i] = w.ID
	}
	return ids
}

// Clone returns a deep copy that shares no slices with s
func (s GameState) Clone() GameState {
	board := make([]Word, len(s.Board))
	for i, w := range s.Board {
		board[i] = w.clone()
	}
	return GameState{
		Pool:  cloneLetters(s.Pool),
		Draft: s.Draft.clone(),
		Board: board,
		Seq:   s.Seq,
	}
}

func (w Word) clone() Word {
	return Word{ID: w.ID, Letters: cloneLetters(w.Letters)}
}

func cloneLetters(letters []Letter) []Letter {
	result := make([]Letter, len(letters))
	copy(result, letters)
	return result
}

func indexOfLetter(letters []Letter, id LetterID) int {
	for i, l := range letters {
		if l.ID == id {
			return i
		}
	}
	return -1
}
