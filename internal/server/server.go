package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	apperrors "github.com/mizutanik/roadquest/internal/errors"
	"github.com/mizutanik/roadquest/internal/services"
)

// Server is the thin HTTP gateway over the game services. It parses
// JSON, validates payloads, and maps results and error codes to HTTP
// statuses; all game rules live in the services.
type Server struct {
	provider *services.Provider
	validate *validator.Validate
	http     *http.Server
}

// Config holds configuration for the server
type Config struct {
	Addr     string
	Provider *services.Provider
}

// New creates a new gateway server
func New(cfg *Config) *Server {
	if cfg == nil || cfg.Provider == nil {
		panic("Config and Provider are required")
	}

	s := &Server{
		provider: cfg.Provider,
		validate: validator.New(),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/characters/{characterID}", func(r chi.Router) {
		r.Post("/move", s.handleMove)
		r.Post("/items/use", s.handleUseItem)
		r.Post("/equip", s.handleEquip)
		r.Post("/unequip", s.handleUnequip)
	})

	r.Route("/battles/{battleID}", func(r chi.Router) {
		r.Get("/", s.handleGetBattle)
		r.Post("/action", s.handleBattleAction)
	})

	s.http = &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s
}

// ListenAndServe runs the server until the listener fails or Shutdown
// is called.
func (s *Server) ListenAndServe() error {
	log.Printf("gateway listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"success": false, "message": message})
}

// writeServiceError maps application error codes to HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case apperrors.IsNotFound(err):
		writeError(w, http.StatusNotFound, err.Error())
	case apperrors.IsInvalidArgument(err), apperrors.IsValidation(err):
		writeError(w, http.StatusBadRequest, err.Error())
	case apperrors.Is(err, apperrors.CodeAlreadyExists):
		writeError(w, http.StatusConflict, err.Error())
	default:
		log.Printf("internal error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
