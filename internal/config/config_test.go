package config

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/wordshop/internal/factory"
)

// parse runs the command with args and returns the config it ran with
func parse(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	cfg := &Config{}
	var ran *Config
	cmd := NewCommand(cfg, func(_ context.Context, c *Config) error {
		ran = c
		return nil
	})
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	if err := cmd.Execute(); err != nil {
		return nil, err
	}
	require.NotNil(t, ran, "run was not called")
	return ran, nil
}

func TestDefaults(t *testing.T) {
	cfg, err := parse(t)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Bind)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, factory.StorageTypeMemory, cfg.Storage)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel())
}

func TestFlags(t *testing.T) {
	cfg, err := parse(t,
		"--port", "9000",
		"--storage", "redis",
		"--redis-url", "redis://localhost:6379/0",
		"--session_ttl", "30m",
		"-v",
	)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, factory.StorageTypeRedis, cfg.Storage)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel())
}

func TestEnvironment(t *testing.T) {
	t.Setenv("WORDSHOP_PORT", "7070")
	t.Setenv("WORDSHOP_SESSION_TTL", "45m")
	t.Setenv("WORDSHOP_VERBOSE", "true")

	cfg, err := parse(t)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, 45*time.Minute, cfg.SessionTTL)
	assert.True(t, cfg.Verbose)
}

func TestFlagBeatsEnvironment(t *testing.T) {
	t.Setenv("WORDSHOP_PORT", "7070")

	cfg, err := parse(t, "--port", "6060")
	require.NoError(t, err)
	assert.Equal(t, 6060, cfg.Port)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{Port: 8080, Storage: factory.StorageTypeMemory, SessionTTL: time.Hour}
	}

	tests := []struct {
		name   string
		modify func(*Config)
		errMsg string
	}{
		{"valid", func(*Config) {}, ""},
		{"port zero", func(c *Config) { c.Port = 0 }, "invalid port"},
		{"port too high", func(c *Config) { c.Port = 70000 }, "invalid port"},
		{"unknown storage", func(c *Config) { c.Storage = "postgres" }, "invalid storage"},
		{"redis without url", func(c *Config) { c.Storage = factory.StorageTypeRedis }, "--redis-url"},
		{"redis with url", func(c *Config) {
			c.Storage = factory.StorageTypeRedis
			c.RedisURL = "redis://localhost:6379"
		}, ""},
		{"zero ttl", func(c *Config) { c.SessionTTL = 0 }, "session ttl"},
		{"public url", func(c *Config) { c.PublicURL = "https://words.example.com" }, ""},
		{"relative public url", func(c *Config) { c.PublicURL = "words.example.com" }, "invalid public url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.errMsg)
			}
		})
	}
}

func TestCommandRejectsInvalidConfig(t *testing.T) {
	_, err := parse(t, "--storage", "redis")
	assert.ErrorContains(t, err, "--redis-url")
}

func TestFactoryConfig(t *testing.T) {
	cfg := Config{Storage: factory.StorageTypeMemory, SessionTTL: time.Hour, PublicURL: "https://w.test"}
	fc := cfg.FactoryConfig(nil)
	assert.Equal(t, factory.StorageTypeMemory, fc.StorageType)
	assert.Equal(t, "https://w.test", fc.PublicURL)
	assert.Equal(t, time.Hour, fc.SessionTTL)
	assert.Nil(t, fc.RedisConfig)

	cfg = Config{Storage: factory.StorageTypeRedis, RedisURL: "redis://h:1/2", SessionTTL: time.Minute}
	fc = cfg.FactoryConfig(nil)
	require.NotNil(t, fc.RedisConfig)
	assert.Equal(t, "redis://h:1/2", fc.RedisConfig.URL)
	assert.Equal(t, time.Minute, fc.RedisConfig.SessionTTL)
}

func TestServerConfig(t *testing.T) {
	cfg := Config{Bind: "127.0.0.1", Port: 1234, ReadTimeout: time.Second}
	sc := cfg.ServerConfig()
	assert.Equal(t, "127.0.0.1", sc.Host)
	assert.Equal(t, 1234, sc.Port)
	assert.Equal(t, time.Second, sc.ReadTimeout)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("WORDSHOP_PORT=5050\nWORDSHOP_BIND=10.0.0.1\n"), 0o600))

	// Register cleanup for both keys, then leave PORT unset and BIND preset
	t.Setenv("WORDSHOP_PORT", "")
	require.NoError(t, os.Unsetenv("WORDSHOP_PORT"))
	t.Setenv("WORDSHOP_BIND", "127.0.0.1")

	require.NoError(t, LoadDotEnv(path))

	assert.Equal(t, "5050", os.Getenv("WORDSHOP_PORT"))
	assert.Equal(t, "127.0.0.1", os.Getenv("WORDSHOP_BIND"))
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "nope.env")))
}
