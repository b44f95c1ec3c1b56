package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/stellarkit/contract-sim/simulate"
)

// Server is the HTTP adapter around the simulation pipeline. It owns request
// framing only; all simulation semantics live in the simulate package.
type Server struct {
	sim     *simulate.Simulator
	log     *zap.Logger
	maxBody int64
}

// New creates a Server. maxBody caps the request body size in bytes before
// any decoding happens, bounding worst-case work on pathological input.
func New(sim *simulate.Simulator, log *zap.Logger, maxBody int64) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{sim: sim, log: log, maxBody: maxBody}
}

// Routes returns the chi router for the service.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(s.requestLogger)
	r.Get("/healthz", s.handleHealthz)
	r.Post("/api/contracts/simulate-deploy", s.handleSimulateDeploy)
	return r
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleSimulateDeploy runs one simulation. A well-formed request always gets
// a 200 with a SimulationResult, valid or not; only framing problems
// (unparsable JSON, oversized body) produce a non-200.
func (s *Server) handleSimulateDeploy(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, s.maxBody)

	var req simulate.Request
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			s.writeError(w, http.StatusRequestEntityTooLarge, "request body exceeds size limit")
			return
		}
		s.writeError(w, http.StatusBadRequest, "invalid JSON request body")
		return
	}

	res := s.sim.Simulate(req)
	s.writeJSON(w, http.StatusOK, res)
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("write response", zap.Error(err))
	}
}

// requestLogger logs one line per request with method, path, status, and
// elapsed time.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("elapsed", time.Since(start)))
	})
}
