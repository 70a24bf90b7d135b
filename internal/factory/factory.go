package factory

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/mcoot/wordshop/internal/api"
	"github.com/mcoot/wordshop/internal/dependencies/clock"
	"github.com/mcoot/wordshop/internal/dependencies/random"
	"github.com/mcoot/wordshop/internal/services/session"
	"github.com/mcoot/wordshop/internal/services/share"
	"github.com/mcoot/wordshop/internal/storage"
	"github.com/mcoot/wordshop/internal/storage/memory"
	redisstorage "github.com/mcoot/wordshop/internal/storage/redis"
	"github.com/mcoot/wordshop/internal/web"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	SessionController *session.Controller
	ShareService      *share.Service

	Logger *slog.Logger

	closers []io.Closer
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// SessionTTL is how long the memory backend keeps an idle session
	// If zero, storage.DefaultSessionTTL is used
	SessionTTL time.Duration
	// PublicURL is the site root used in share links and QR codes
	// If empty, it is taken from each request's Host header
	PublicURL string
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	var closers []io.Closer
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	clk := clock.New()
	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = storage.DefaultSessionTTL
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New(clk, ttl)
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
		closers = append(closers, redisStore)
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	logger.Info("storage ready", slog.String("type", storageType))

	app := newWithDependencies(store, clk, random.New(), logger, cfg.PublicURL)
	app.closers = closers
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger, publicURL string) *App {
	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		SessionController: session.NewController(store, clk, rnd, logger),
		ShareService:      share.New(logger, publicURL),
		Logger:            logger,
	}
}

// Handler combines the JSON API and the web interface into one handler
func (a *App) Handler(staticDir string) http.Handler {
	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:            a.Logger,
		SessionController: a.SessionController,
		SessionCounter:    a.Storage,
	})

	webRouter := web.NewRouter(web.RouterConfig{
		Logger:            a.Logger,
		SessionController: a.SessionController,
		ShareService:      a.ShareService,
		StaticDir:         staticDir,
	})

	// Only the versioned prefix belongs to the API so words like "api" stay
	// playable
	mux := http.NewServeMux()
	mux.Handle("/api/v1/", apiRouter)
	mux.Handle("/", webRouter)
	return mux
}

// Close releases storage connections
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
