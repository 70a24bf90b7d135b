package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "wordshop",
		Short: "CLI tool for the wordshop API",
		Long: `wordshop is a CLI tool for playing wordshop through its JSON API.

Start a game with 'wordshop start <word>'. The session ID is remembered in
the session file so later commands act on the same game.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load session from file if not provided via flag/env
			if err := cfg.LoadSession(); err != nil {
				return err
			}

			// Create HTTP client
			client = NewClient(cfg.ServerURL)
			client.logger = newLogger(cmd.ErrOrStderr(), cfg.Verbose)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: WORDSHOP_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.SessionID, "session", cfg.SessionID, "Session ID (env: WORDSHOP_SESSION)")
	rootCmd.PersistentFlags().StringVar(&cfg.SessionFile, "session-file", cfg.SessionFile, "Session file path (env: WORDSHOP_SESSION_FILE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newStartCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newRemoveCmd())
	rootCmd.AddCommand(newCommitCmd())
	rootCmd.AddCommand(newUncommitCmd())
	rootCmd.AddCommand(newReorderCmd())
	rootCmd.AddCommand(newShuffleCmd())
	rootCmd.AddCommand(newKeyCmd())
	rootCmd.AddCommand(newEndCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newOutput(cmd *cobra.Command) *Output {
	return NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
