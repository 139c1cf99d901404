package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/goodtune/cardiotrack/internal/cardio"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// Config holds the HTTP server configuration.
type Config struct {
	ListenAddr     string
	AllowedOrigins []string
}

// Server represents the cardio tracker HTTP server.
type Server struct {
	config   Config
	service  *cardio.Service
	server   *http.Server
	router   *mux.Router
	listener net.Listener // Optional pre-created listener (for systemd socket activation)
	logger   zerolog.Logger
}

// NewServer creates a new HTTP server.
func NewServer(cfg Config, service *cardio.Service, logger zerolog.Logger) *Server {
	router := mux.NewRouter()

	s := &Server{
		config:  cfg,
		service: service,
		router:  router,
		logger:  logger.With().Str("component", "server").Logger(),
	}

	s.setupRoutes()

	s.server = &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Apply global middleware
	s.router.Use(LoggingMiddleware(s.logger))
	s.router.Use(MetricsMiddleware())

	if len(s.config.AllowedOrigins) > 0 {
		s.router.Use(CORSMiddleware(s.config.AllowedOrigins))
	}

	s.router.HandleFunc("/health", s.handleHealth).Methods("GET")

	handler := NewCardioHandler(s.service, s.logger)
	s.router.HandleFunc("/cardio", handler.List).Methods("GET")
	s.router.HandleFunc("/cardio", handler.Create).Methods("POST", "OPTIONS")
	s.router.HandleFunc("/cardio/{id}/toggleFavorite", handler.ToggleFavorite).Methods("PUT", "OPTIONS")
}

// SetListener sets a pre-created listener for systemd socket activation.
func (s *Server) SetListener(ln net.Listener) {
	s.listener = ln
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.logger.Info().Str("addr", s.config.ListenAddr).Msg("Starting server")

	go func() {
		var err error
		if s.listener != nil {
			err = s.server.Serve(s.listener)
		} else {
			err = s.server.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			s.logger.Error().Err(err).Msg("Server error")
		}
	}()

	return nil
}

// Stop gracefully stops the HTTP server.
func (s *Server) Stop() error {
	s.logger.Info().Msg("Stopping server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
	})
}
