package engine

import "github.com/mcoot/wordshop/internal/model"

// ActionType names one of the state transitions
type ActionType string

const (
	ActionCommitDraft           ActionType = "commit_draft"
	ActionUncommitWord          ActionType = "uncommit_word"
	ActionMoveLetterToDraft     ActionType = "move_letter_to_draft"
	ActionReturnLetterFromDraft ActionType = "return_letter_from_draft"
	ActionReorderBoard          ActionType = "reorder_board"
	ActionShufflePool           ActionType = "shuffle_pool"
)

// Action is a dispatched transition together with its input
type Action struct {
	Type   ActionType
	Letter model.LetterID // move/return letter
	Word   model.WordID   // uncommit
	Order  []model.WordID // reorder
}

// Commit returns a CommitDraft action
func Commit() Action {
	return Action{Type: ActionCommitDraft}
}

// Uncommit returns an UncommitWord action
func Uncommit(id model.WordID) Action {
	return Action{Type: ActionUncommitWord, Word: id}
}

// AddLetter returns a MoveLetterToDraft action
func AddLetter(id model.LetterID) Action {
	return Action{Type: ActionMoveLetterToDraft, Letter: id}
}

// RemoveLetter returns a ReturnLetterFromDraft action
func RemoveLetter(id model.LetterID) Action {
	return Action{Type: ActionReturnLetterFromDraft, Letter: id}
}

// Reorder returns a ReorderBoard action
func Reorder(order []model.WordID) Action {
	return Action{Type: ActionReorderBoard, Order: order}
}

// Shuffle returns a ShufflePool action
func Shuffle() Action {
	return Action{Type: ActionShufflePool}
}

// Apply runs the action against the state. Unknown action types are no-ops.
func Apply(s model.GameState, a Action, rng Shuffler) model.GameState {
	switch a.Type {
	case ActionCommitDraft:
		return CommitDraft(s)
	case ActionUncommitWord:
		return UncommitWord(s, a.Word)
	case ActionMoveLetterToDraft:
		return MoveLetterToDraft(s, a.Letter)
	case ActionReturnLetterFromDraft:
		return ReturnLetterFromDraft(s, a.Letter)
	case ActionReorderBoard:
		return ReorderBoard(s, a.Order)
	case ActionShufflePool:
		return ShufflePool(s, rng)
	default:
		return s
	}
}
