// internal/httpserver/server.go
//
// HTTP server wiring for the jumble game.
// Responsibilities:
//   - Router + middleware (JSON defaults for API paths, CORS, timeouts,
//     panic recovery, request IDs).
//   - Page routes: "/", "/index", "/keep_going", "/success".
//   - AJAX word check: POST /_check/word.
//   - Diagnostics: "/health", "/debug/words", "/debug/recent".
//   - HTML 404 for page paths, JSON 404 for API paths.
//
// Notes:
//   - The vocabulary, session codec, and round store are injected at
//     construction; the server holds no mutable game state of its own, the
//     whole session rides in the signed cookie.
//   - CORS is origin-aware and credentials-enabled (so cookies work).

package httpserver

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/lettergames/jumble-server/assets"
	"github.com/lettergames/jumble-server/internal/session"
	"github.com/lettergames/jumble-server/internal/store"
	"github.com/lettergames/jumble-server/internal/vocab"
)

// Options carries the server's collaborators and request-path settings.
type Options struct {
	Vocab        *vocab.Vocab
	Store        store.Store
	Sessions     *session.Codec
	SuccessAt    int    // words needed to finish a round
	Seed         *int64 // nil = entropy; set for reproducible jumbles
	ClientOrigin string // CORS origin for a separately served front end
	Secure       bool   // mark cookies Secure (behind HTTPS)
}

// Server bundles the router with its injected collaborators.
type Server struct {
	r    *chi.Mux
	opts Options
	tmpl *template.Template
}

// New constructs a Server, installs middleware, and registers routes.
func New(opts Options) (*Server, error) {
	tmpl, err := template.ParseFS(assets.Templates(), "*.html")
	if err != nil {
		return nil, err
	}
	s := &Server{r: chi.NewRouter(), opts: opts, tmpl: tmpl}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(corsFor(opts.ClientOrigin))      // credentials-friendly CORS

	// --- pages ---
	s.r.Get("/", s.handleIndex)
	s.r.Get("/index", s.handleIndex)
	s.r.Get("/keep_going", s.handleKeepGoing)
	s.r.Get("/success", s.handleSuccess)

	// --- AJAX check ---
	s.r.With(jsonContentType).Post("/_check/word", s.handleCheckWord)

	// --- diagnostics ---
	s.r.With(jsonContentType).Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.With(jsonContentType).Get("/debug/words", s.handleDebugWords)
	s.r.With(jsonContentType).Get("/debug/recent", s.handleDebugRecent)

	// HTML 404 for pages, JSON 404 for API paths
	s.r.NotFound(s.handleNotFound)

	return s, nil
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a JSON Content-Type header on API responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFor enables credentialed CORS for a single origin.
func corsFor(origin string) func(http.Handler) http.Handler {
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ----------------------------- diagnostics ---------------------------------

func (s *Server) handleDebugWords(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(map[string]int{"words": s.opts.Vocab.Len()})
}

func (s *Server) handleDebugRecent(w http.ResponseWriter, r *http.Request) {
	rounds, err := s.opts.Store.Recent(r.Context(), 20)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, `{"error":"db_error"}`)
		return
	}
	_ = json.NewEncoder(w).Encode(rounds)
}

// writeJSONError writes a JSON error body with the right Content-Type.
// http.Error cannot be used here: it forces text/plain onto the response.
func writeJSONError(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body + "\n"))
}

// handleNotFound answers JSON for API paths and the 404 page otherwise.
func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/_") || strings.HasPrefix(r.URL.Path, "/debug") {
		writeJSONError(w, http.StatusNotFound, `{"error":"not_found","path":"`+r.URL.Path+`"}`)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_ = s.tmpl.ExecuteTemplate(w, "404.html", map[string]string{"Path": r.URL.Path})
}

// ------------------------------- small util --------------------------------

// genID creates a 22-char URL-safe, crypto-random identifier (no padding).
func genID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	s := base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString(b[:])
	if len(s) > 22 {
		return s[:22]
	}
	return s
}
