package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start <word>",
		Short: "Start a new game from a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Replacing the current game ends it; a stale ID is not an error
			if cfg.SessionID != "" {
				_ = client.Delete(cmd.Context(), sessionPath(cfg.SessionID), nil)
			}

			var session Session
			req := map[string]string{"source": args[0]}
			if err := client.Post(cmd.Context(), "/api/v1/sessions", req, &session); err != nil {
				return err
			}

			if err := cfg.SaveSession(session.ID); err != nil {
				return fmt.Errorf("failed to save session: %w", err)
			}

			newOutput(cmd).Print(session)
			return nil
		},
	}
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := currentSession(cmd.Context())
			if err != nil {
				return err
			}

			newOutput(cmd).Print(session)
			return nil
		},
	}
}

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <letter|letter-id>",
		Short: "Move a letter from the pool to the draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := currentSession(cmd.Context())
			if err != nil {
				return err
			}

			letter, ok := findLetter(session.Pool, args[0])
			if !ok {
				return fmt.Errorf("no %q in the pool", args[0])
			}

			req := map[string]string{"letter_id": letter.ID}
			return act(cmd, client.Post, sessionPath(session.ID, "draft"), req)
		},
	}
}

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove [letter|letter-id]",
		Short: "Return a letter from the draft to the pool",
		Long:  "Return a letter from the draft to the pool. Without an argument the last draft letter is returned.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := currentSession(cmd.Context())
			if err != nil {
				return err
			}

			letters := session.Draft.Letters
			if len(letters) == 0 {
				return fmt.Errorf("the draft is empty")
			}

			letter := letters[len(letters)-1]
			if len(args) == 1 {
				var ok bool
				if letter, ok = findLetter(letters, args[0]); !ok {
					return fmt.Errorf("no %q in the draft", args[0])
				}
			}

			return act(cmd, deleteWithResult, sessionPath(session.ID, "draft", letter.ID), nil)
		},
	}
}

func newCommitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commit",
		Short: "Commit the draft to the board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cfg.RequireSession()
			if err != nil {
				return err
			}
			return act(cmd, client.Post, sessionPath(id, "commit"), nil)
		},
	}
}

func newUncommitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uncommit [word|word-id]",
		Short: "Return a committed word's letters to the pool",
		Long:  "Return a committed word's letters to the pool. Without an argument the last word on the board is uncommitted.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := currentSession(cmd.Context())
			if err != nil {
				return err
			}

			if len(session.Board) == 0 {
				return fmt.Errorf("the board is empty")
			}

			word := session.Board[len(session.Board)-1]
			if len(args) == 1 {
				var ok bool
				if word, ok = findWord(session.Board, args[0]); !ok {
					return fmt.Errorf("no %q on the board", args[0])
				}
			}

			return act(cmd, deleteWithResult, sessionPath(session.ID, "board", word.ID), nil)
		},
	}
}

func newReorderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reorder <word-id>...",
		Short: "Rearrange the board",
		Long:  "Rearrange the board. Every committed word must be named exactly once, by ID or text.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := currentSession(cmd.Context())
			if err != nil {
				return err
			}

			order := make([]string, 0, len(args))
			for _, arg := range args {
				word, ok := findWord(session.Board, arg)
				if !ok {
					return fmt.Errorf("no %q on the board", arg)
				}
				order = append(order, word.ID)
			}

			req := map[string][]string{"order": order}
			return act(cmd, client.Put, sessionPath(session.ID, "board"), req)
		},
	}
}

func newShuffleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shuffle",
		Short: "Shuffle the pool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cfg.RequireSession()
			if err != nil {
				return err
			}
			return act(cmd, client.Post, sessionPath(id, "shuffle"), nil)
		},
	}
}

func newKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "key <key>",
		Short: "Send a key press",
		Long: `Send a key press as the browser would. A letter moves the first matching
pool letter to the draft, Enter commits the draft and Backspace undoes the last
letter or word.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cfg.RequireSession()
			if err != nil {
				return err
			}
			req := map[string]string{"key": args[0]}
			return act(cmd, client.Post, sessionPath(id, "keys"), req)
		},
	}
}

func newEndCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "end",
		Short: "End the current game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cfg.RequireSession()
			if err != nil {
				return err
			}

			if err := client.Delete(cmd.Context(), sessionPath(id), nil); err != nil && !IsSessionNotFound(err) {
				return err
			}
			if err := cfg.ClearSession(); err != nil {
				return fmt.Errorf("failed to clear session: %w", err)
			}

			newOutput(cmd).PrintMessage("Game ended")
			return nil
		},
	}
}

// currentSession fetches the session named by the config
func currentSession(ctx context.Context) (Session, error) {
	id, err := cfg.RequireSession()
	if err != nil {
		return Session{}, err
	}

	var session Session
	if err := client.Get(ctx, sessionPath(id), &session); err != nil {
		return Session{}, explain(err)
	}
	return session, nil
}

// act sends a session action and prints the resulting session
func act(cmd *cobra.Command, send func(ctx context.Context, path string, body, result any) error, path string, body any) error {
	var session Session
	if err := send(cmd.Context(), path, body, &session); err != nil {
		return explain(err)
	}

	newOutput(cmd).Print(session)
	return nil
}

func deleteWithResult(ctx context.Context, path string, _, result any) error {
	return client.Delete(ctx, path, result)
}

// explain adds a next step to errors about a game that has gone away
func explain(err error) error {
	if IsSessionNotFound(err) {
		return fmt.Errorf("%w; run 'wordshop start <word>' for a new game", err)
	}
	return err
}

// findLetter matches a letter by ID, then by character ignoring case
func findLetter(letters []Letter, arg string) (Letter, bool) {
	for _, l := range letters {
		if l.ID == arg {
			return l, true
		}
	}
	for _, l := range letters {
		if strings.EqualFold(l.Letter, arg) {
			return l, true
		}
	}
	return Letter{}, false
}

// findWord matches a word by ID, then by text ignoring case
func findWord(words []Word, arg string) (Word, bool) {
	for _, w := range words {
		if w.ID == arg {
			return w, true
		}
	}
	for _, w := range words {
		if strings.EqualFold(w.Text, arg) {
			return w, true
		}
	}
	return Word{}, false
}
