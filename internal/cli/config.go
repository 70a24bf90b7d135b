package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Config holds CLI configuration
type Config struct {
	ServerURL   string
	SessionID   string
	SessionFile string
	Output      string
	Verbose     bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL:   getEnvOrDefault("WORDSHOP_SERVER", "http://localhost:8080"),
		SessionID:   os.Getenv("WORDSHOP_SESSION"),
		SessionFile: getEnvOrDefault("WORDSHOP_SESSION_FILE", defaultSessionFile()),
		Output:      "text",
		Verbose:     false,
	}
}

// LoadSession loads the current session ID from file if not already set
func (c *Config) LoadSession() error {
	if c.SessionID != "" {
		return nil
	}

	data, err := os.ReadFile(c.SessionFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil // No session yet is fine
		}
		return err
	}

	c.SessionID = strings.TrimSpace(string(data))
	return nil
}

// SaveSession records id as the current session
func (c *Config) SaveSession(id string) error {
	c.SessionID = id

	dir := filepath.Dir(c.SessionFile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	return os.WriteFile(c.SessionFile, []byte(id), 0600)
}

// ClearSession forgets the current session
func (c *Config) ClearSession() error {
	c.SessionID = ""
	if err := os.Remove(c.SessionFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// RequireSession returns the current session ID or an error telling the
// user to start one
func (c *Config) RequireSession() (string, error) {
	if c.SessionID == "" {
		return "", errors.New("no current session, run 'wordshop start <word>' first")
	}
	return c.SessionID, nil
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".wordshop/session"
	}
	return filepath.Join(home, ".wordshop", "session")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
