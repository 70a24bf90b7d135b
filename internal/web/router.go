package web

import (
	"embed"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordshop/internal/services/session"
	"github.com/mcoot/wordshop/internal/services/share"
	"github.com/mcoot/wordshop/internal/web/handler"
	"github.com/mcoot/wordshop/internal/web/middleware"
)

//go:embed static
var embeddedStatic embed.FS

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger            *slog.Logger
	SessionController session.ControllerInterface
	ShareService      *share.Service
	StaticDir         string // Serve static files from disk instead of the embedded copy
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	// Words are arbitrary user text, so match on the escaped path and
	// unescape the word in handlers
	r.UseEncodedPath()

	// Apply global middleware to all routes
	r.Use(middleware.Logging(cfg.Logger))
	r.Use(middleware.Recovery(cfg.Logger))

	flashMiddleware := middleware.Flash()
	sessionMiddleware := middleware.GameSession(cfg.SessionController)

	// Create handlers
	homeHandler := handler.NewHomeHandler()
	gameHandler := handler.NewGameHandler(cfg.SessionController, cfg.ShareService, cfg.Logger)

	// Static files. The file pattern keeps /static/{...} game routes for the
	// word "static" reachable.
	r.Handle(`/static/{file:[a-z]+\.(?:js|css)}`, http.StripPrefix("/static/", staticHandler(cfg.StaticDir))).
		Methods(http.MethodGet)
	r.HandleFunc("/favicon.ico", middleware.NotFound)

	// Home
	r.Handle("/", flashMiddleware(http.HandlerFunc(homeHandler.Home))).Methods(http.MethodGet)
	r.Handle("/", flashMiddleware(http.HandlerFunc(homeHandler.Submit))).Methods(http.MethodPost)

	// Visiting the word route always seeds a new game
	r.HandleFunc("/{word}", gameHandler.Start).Methods(http.MethodGet)
	r.HandleFunc("/{word}/qr.png", gameHandler.QR).Methods(http.MethodGet)

	// Routes that act on the cookie's game. These sit on the root router with
	// full paths: sibling routes on a /{word} prefix subrouter would clear a
	// method mismatch and turn a 405 into a 404.
	game := func(path, method string, h http.HandlerFunc) {
		r.Handle("/{word}"+path, flashMiddleware(sessionMiddleware(h))).Methods(method)
	}
	game("/play", http.MethodGet, gameHandler.Play)
	game("/pool/{letter}", http.MethodPost, gameHandler.AddLetter)
	game("/draft/{letter}", http.MethodPost, gameHandler.RemoveLetter)
	game("/commit", http.MethodPost, gameHandler.Commit)
	game("/board/order", http.MethodPost, gameHandler.Reorder)
	game("/board/{wid}/uncommit", http.MethodPost, gameHandler.Uncommit)
	game("/board/{wid}/move", http.MethodPost, gameHandler.Move)
	game("/shuffle", http.MethodPost, gameHandler.Shuffle)
	game("/key", http.MethodPost, gameHandler.Key)

	r.NotFoundHandler = http.HandlerFunc(middleware.NotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(middleware.MethodNotAllowed)

	return r
}

func staticHandler(dir string) http.Handler {
	if dir != "" {
		return http.FileServer(http.Dir(dir))
	}
	sub, err := fs.Sub(embeddedStatic, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
