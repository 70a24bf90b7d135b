package redis

import (
	"time"

	"github.com/mcoot/wordshop/internal/storage"
)

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379/0)
	URL string

	// KeyPrefix namespaces every key so several deployments can share a
	// database
	KeyPrefix string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// SessionTTL is how long an idle session is kept; every save or read
	// refreshes it
	SessionTTL time.Duration
}

// DefaultConfig returns the Redis settings used when no flags override them
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		KeyPrefix:    "wordshop",
		PoolSize:     10,
		MinIdleConns: 2,
		SessionTTL:   storage.DefaultSessionTTL,
	}
}
