// Package config builds the server command line. Every flag can also be set
// from a WORDSHOP_-prefixed environment variable, and a .env file is read
// before either.
package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mcoot/wordshop/internal/api"
	"github.com/mcoot/wordshop/internal/factory"
	"github.com/mcoot/wordshop/internal/storage"
	redisstorage "github.com/mcoot/wordshop/internal/storage/redis"
)

// EnvPrefix is prepended to flag names to form environment variable names
const EnvPrefix = "WORDSHOP"

// Version is reported by --version
var Version = "0.1.0"

// Config holds server configuration
type Config struct {
	Bind            string
	Port            int
	Storage         string
	RedisURL        string
	SessionTTL      time.Duration
	StaticDir       string
	PublicURL       string
	Verbose         bool
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// Validate checks the config for values the server cannot start with
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.Port)
	}
	switch c.Storage {
	case factory.StorageTypeMemory:
	case factory.StorageTypeRedis:
		if c.RedisURL == "" {
			return errors.New("--redis-url is required when --storage is redis")
		}
	default:
		return fmt.Errorf("invalid storage %q (must be memory or redis)", c.Storage)
	}
	if c.PublicURL != "" {
		if u, err := url.Parse(c.PublicURL); err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid public url %q (must be absolute, e.g. https://example.com)", c.PublicURL)
		}
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("invalid session ttl: %s", c.SessionTTL)
	}
	return nil
}

// LogLevel returns the slog level the flags ask for
func (c *Config) LogLevel() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// ServerConfig returns the HTTP server settings
func (c *Config) ServerConfig() api.ServerConfig {
	return api.ServerConfig{
		Host:            c.Bind,
		Port:            c.Port,
		ReadTimeout:     c.ReadTimeout,
		WriteTimeout:    c.WriteTimeout,
		IdleTimeout:     c.IdleTimeout,
		ShutdownTimeout: c.ShutdownTimeout,
	}
}

// FactoryConfig returns the application factory settings
func (c *Config) FactoryConfig(logger *slog.Logger) factory.Config {
	cfg := factory.Config{
		Logger:      logger,
		StorageType: c.Storage,
		SessionTTL:  c.SessionTTL,
		PublicURL:   c.PublicURL,
	}
	if c.Storage == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = c.RedisURL
		redisCfg.SessionTTL = c.SessionTTL
		cfg.RedisConfig = &redisCfg
	}
	return cfg
}

// LoadDotEnv loads environment variables from the given files (default
// .env). Missing files are ignored; variables already set win.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	var existing []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// NewCommand builds the server command. run is called with the parsed and
// validated config.
func NewCommand(cfg *Config, run func(ctx context.Context, cfg *Config) error) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:     "wordshop-server",
		Short:   "Serve the wordshop anagram game over HTTP.",
		Args:    cobra.NoArgs,
		Version: Version,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	defaults := api.DefaultServerConfig()

	fs.StringVarP(&cfg.Bind, "bind", "b", "0.0.0.0", "address to bind to (env: WORDSHOP_BIND)")
	fs.IntVarP(&cfg.Port, "port", "p", defaults.Port, "port to listen on (env: WORDSHOP_PORT)")
	fs.StringVar(&cfg.Storage, "storage", factory.StorageTypeMemory, "session storage backend, memory or redis (env: WORDSHOP_STORAGE)")
	fs.StringVar(&cfg.RedisURL, "redis-url", "", "redis connection URL (env: WORDSHOP_REDIS_URL)")
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", storage.DefaultSessionTTL, "time before an idle game is dropped (env: WORDSHOP_SESSION_TTL)")
	fs.StringVar(&cfg.StaticDir, "static-dir", "", "serve static files from this directory instead of the built-in copy (env: WORDSHOP_STATIC_DIR)")
	fs.StringVar(&cfg.PublicURL, "public-url", "", "site root for share links, instead of trusting Host and X-Forwarded-Proto (env: WORDSHOP_PUBLIC_URL)")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "log debug output (env: WORDSHOP_VERBOSE)")
	fs.DurationVar(&cfg.ReadTimeout, "read-timeout", defaults.ReadTimeout, "HTTP read timeout (env: WORDSHOP_READ_TIMEOUT)")
	fs.DurationVar(&cfg.WriteTimeout, "write-timeout", defaults.WriteTimeout, "HTTP write timeout (env: WORDSHOP_WRITE_TIMEOUT)")
	fs.DurationVar(&cfg.IdleTimeout, "idle-timeout", defaults.IdleTimeout, "HTTP keep-alive idle timeout (env: WORDSHOP_IDLE_TIMEOUT)")
	fs.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", defaults.ShutdownTimeout, "grace period for in-flight requests on shutdown (env: WORDSHOP_SHUTDOWN_TIMEOUT)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("wordshop v{{.Version}}\n")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}
