// Package httpserver serves the solitaire solver over HTTP: solve and
// best-move endpoints for posted deals, a websocket progress feed, and
// Prometheus metrics. It is a thin consumer of the engine; all search
// semantics live in pkg/search.
package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	klondike "github.com/ESultanik/klondike"
	"github.com/ESultanik/klondike/internal/logging"
	"github.com/ESultanik/klondike/pkg/config"
	"github.com/ESultanik/klondike/pkg/observability"
	"github.com/ESultanik/klondike/pkg/search"
)

// Server exposes the solver. One Server may handle many requests, but
// each request runs its own single-threaded search session.
type Server struct {
	cfg      config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *observability.Collector
	hub      *progressHub
}

// Option defines a functional option for configuring the Server.
type Option func(*Server)

// WithLogger sets a structured logger for request handling.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a server with the given base configuration.
func New(cfg config.Config, opts ...Option) *Server {
	s := &Server{
		cfg:      cfg,
		logger:   logging.NewNop(),
		registry: prometheus.NewRegistry(),
		hub:      newProgressHub(),
	}
	s.metrics = observability.NewCollector(s.registry)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler builds the HTTP routing table.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/api/ping", func(w http.ResponseWriter, _ *http.Request) {
		s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Post("/api/solve", s.handleSolve)
	r.Post("/api/bestmove", s.handleBestMove)
	r.Get("/ws/progress", s.hub.handleWS)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	return r
}

type solveRequest struct {
	State stateDTO `json:"state"`

	// Settings overrides the server's base configuration for this
	// request, e.g. {"search": {"depth_limit": 8}}.
	Settings map[string]any `json:"settings,omitempty"`
}

type solveResponse struct {
	Won      bool     `json:"won"`
	PathCost int      `json:"path_cost"`
	FCost    int      `json:"f_cost"`
	Expanded int      `json:"expanded"`
	Visited  int      `json:"visited"`
	Final    stateDTO `json:"final"`
}

type bestMoveResponse struct {
	Move    moveDTO       `json:"move"`
	Outcome solveResponse `json:"outcome"`
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	state, cfg, ok := s.decodeSearchRequest(w, r)
	if !ok {
		return
	}
	result, err := klondike.Solve(state, s.engineOpts(cfg)...)
	if err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	s.logger.Info("solve finished",
		"won", result.Won, "path_cost", result.PathCost, "expanded", result.Expanded)
	s.writeJSON(w, http.StatusOK, solveResultDTO(result))
}

func (s *Server) handleBestMove(w http.ResponseWriter, r *http.Request) {
	state, cfg, ok := s.decodeSearchRequest(w, r)
	if !ok {
		return
	}
	move, result, err := klondike.BestMove(state, s.engineOpts(cfg)...)
	if err != nil {
		if errors.Is(err, search.ErrNoLegalMoves) {
			s.writeError(w, http.StatusConflict, err)
			return
		}
		s.writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	s.logger.Info("best move chosen", "move", move.String(), "f_cost", result.FCost)
	s.writeJSON(w, http.StatusOK, bestMoveResponse{
		Move:    encodeMove(move),
		Outcome: solveResultDTO(result),
	})
}

func (s *Server) decodeSearchRequest(w http.ResponseWriter, r *http.Request) (klondike.GameState, config.Config, bool) {
	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return klondike.GameState{}, config.Config{}, false
	}
	state, err := decodeState(req.State)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return klondike.GameState{}, config.Config{}, false
	}
	cfg := s.cfg
	if len(req.Settings) > 0 {
		if err := cfg.ApplyOverrides(req.Settings); err != nil {
			s.writeError(w, http.StatusBadRequest, err)
			return klondike.GameState{}, config.Config{}, false
		}
	}
	return state, cfg, true
}

func (s *Server) engineOpts(cfg config.Config) []search.Option[klondike.GameState, klondike.Move] {
	opts := []search.Option[klondike.GameState, klondike.Move]{
		search.WithLogger[klondike.GameState, klondike.Move](s.logger),
		search.WithMetrics[klondike.GameState, klondike.Move](s.metrics),
		search.WithProgress[klondike.GameState, klondike.Move](func(n *search.Node[klondike.GameState, klondike.Move]) {
			s.hub.publish(progressEvent{
				PathCost:  n.PathCost(),
				Heuristic: n.Heuristic(),
				FCost:     n.FCost(),
			})
		}),
	}
	if cfg.Search.DepthLimit >= 0 {
		opts = append(opts, search.WithDepthLimit[klondike.GameState, klondike.Move](cfg.Search.DepthLimit))
	}
	if cfg.Search.NodeBudget > 0 {
		opts = append(opts, search.WithNodeBudget[klondike.GameState, klondike.Move](cfg.Search.NodeBudget))
	}
	return opts
}

func solveResultDTO(result klondike.Result) solveResponse {
	return solveResponse{
		Won:      result.Won,
		PathCost: result.PathCost,
		FCost:    result.FCost,
		Expanded: result.Expanded,
		Visited:  result.Visited,
		Final:    encodeState(result.Final),
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("write response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.logger.Warn("request failed", "status", status, "error", err)
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}
