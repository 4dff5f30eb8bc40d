package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/mahmoudabadi/portfolio/internal/locale"
	"github.com/mahmoudabadi/portfolio/internal/render"
	"github.com/mahmoudabadi/portfolio/internal/session"
)

// Config holds server configuration.
type Config struct {
	Host            string
	Port            int
	DefaultLanguage locale.Code // language of new sessions, locale.Default when empty
	AllowedOrigins  []string    // CORS and WebSocket origin patterns
	AllowAll        bool        // allow all CORS origins (dev mode)
}

// Server serves the portfolio page and its live session endpoints.
type Server struct {
	cfg        Config
	store      *locale.Store
	sessions   *session.Manager
	renderer   *render.Renderer
	router     chi.Router
	httpServer *http.Server
}

// New creates a server over the given locale store, session registry and
// renderer.
func New(cfg Config, store *locale.Store, sessions *session.Manager, renderer *render.Renderer) *Server {
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"http://localhost:*", "http://127.0.0.1:*"}
	}
	s := &Server{
		cfg:      cfg,
		store:    store,
		sessions: sessions,
		renderer: renderer,
	}
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   s.cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
		corsOpts.AllowCredentials = false
	}
	r.Use(cors.Handler(corsOpts))

	// Long-lived live connections are exempt from the request timeout.
	r.Get("/ws/{id}", s.handleLive)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"status":"ok"}`))
		})

		r.Get("/", s.handleIndex)
		r.Handle("/static/*", http.StripPrefix("/static/", staticHandler()))
		r.Get("/api/locales", s.handleLocales)
		r.Get("/api/locales/{code}", s.handleLocale)
		r.Post("/api/sessions/{id}/events", s.handleEvent)
	})

	return r
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// Sessions returns the live session registry.
func (s *Server) Sessions() *session.Manager { return s.sessions }

// Start begins listening on the configured address.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("portfolio server listening on %s", addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
