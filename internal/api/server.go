// Package api exposes plan generation over HTTP.
//
// The server is a thin adapter: it parses requests into the same user
// input the CLI consumes, runs the plan runner and stores finished
// results in memory keyed by their ID.
package api

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/spacerabbit99982/abbund/pkg/errors"
	"github.com/spacerabbit99982/abbund/pkg/frame"
	"github.com/spacerabbit99982/abbund/pkg/plan"
)

// Server handles plan requests.
type Server struct {
	runner *plan.Runner
	logger *log.Logger

	mu      sync.RWMutex
	results map[uuid.UUID]*plan.Result
}

// NewServer wraps a runner into an HTTP handler.
func NewServer(runner *plan.Runner, logger *log.Logger) *Server {
	return &Server{
		runner:  runner,
		logger:  logger,
		results: make(map[uuid.UUID]*plan.Result),
	}
}

// Router builds the chi routing tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/plans", s.handleCreatePlan)
		r.Get("/plans/{id}", s.handleGetPlan)
	})
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleCreatePlan runs a full plan synchronously and returns the result.
// Plan runs are bounded by the search's iteration budget, so synchronous
// handling is fine.
func (s *Server) handleCreatePlan(w http.ResponseWriter, r *http.Request) {
	var input frame.UserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, errors.New(errors.ErrCodeInvalidInput, "invalid request body"))
		return
	}

	res, err := s.runner.Execute(r.Context(), input)
	if err != nil {
		s.logger.Warn("plan request failed", "err", err)
		writeError(w, statusFor(err), err)
		return
	}

	s.mu.Lock()
	s.results[res.ID] = res
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, res)
}

func (s *Server) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New(errors.ErrCodeInvalidInput, "invalid plan id"))
		return
	}

	s.mu.RLock()
	res, ok := s.results[id]
	s.mu.RUnlock()
	if !ok {
		writeError(w, http.StatusNotFound, errors.New(errors.ErrCodeNotFound, "plan %s not found", id))
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// statusFor maps error codes onto HTTP statuses.
func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidRoofType,
		errors.ErrCodeInvalidSection, errors.ErrCodeInvalidConstruction:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeSearchExhausted:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{
		"error": errors.UserMessage(err),
		"code":  string(errors.GetCode(err)),
	})
}
