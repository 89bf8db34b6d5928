// Package httpapi exposes the simulation pipeline as a small JSON API with
// prometheus metrics fed by lifecycle hooks.
package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MarkBJohnsAdmin/distribution"
	"github.com/MarkBJohnsAdmin/distribution/internal/logging"
	"github.com/MarkBJohnsAdmin/distribution/pkg/domain"
	"github.com/MarkBJohnsAdmin/distribution/pkg/ports"
)

// ExperimentRequest is the body of POST /experiments.
type ExperimentRequest struct {
	// Name under which to store the result. Empty means run-only, no store.
	Name       string `json:"name,omitempty"`
	Trials     int    `json:"trials"`
	WalkLength int    `json:"walk_length"`
	Threshold  int    `json:"threshold"`
	// Seed for the coin source. Zero seeds randomly, making the run
	// non-reproducible by design.
	Seed int64 `json:"seed,omitempty"`
}

// Server wires the simulation core, a result store, and metrics into an
// http.Handler.
type Server struct {
	store  ports.ResultStore
	logger *slog.Logger

	registry       *prometheus.Registry
	walksTotal     prometheus.Counter
	stepsTotal     *prometheus.CounterVec
	finalPositions prometheus.Histogram
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates the API server around a result store.
func NewServer(store ports.ResultStore, opts ...Option) *Server {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	s := &Server{
		store:    store,
		logger:   logging.NewNop(),
		registry: registry,
		walksTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "distribution_walks_total",
			Help: "Total number of walks generated",
		}),
		stepsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "distribution_steps_total",
			Help: "Total number of coin flips taken",
		}, []string{"outcome"}),
		finalPositions: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "distribution_final_positions",
			Help:    "Observed final positions across all walks",
			Buckets: prometheus.LinearBuckets(0, 1, 15),
		}),
	}

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the routed http.Handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.handleHealth)
	r.Post("/experiments", s.handleRunExperiment)
	r.Get("/experiments", s.handleListExperiments)
	r.Get("/experiments/{name}", s.handleGetExperiment)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// hooks feed every simulated walk into the prometheus collectors.
func (s *Server) hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStep: func(e domain.StepEvent) {
			s.stepsTotal.WithLabelValues(string(e.Outcome)).Inc()
		},
		OnWalkEnd: func(e domain.WalkEvent) {
			s.walksTotal.Inc()
			s.finalPositions.Observe(float64(e.Final))
		},
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleRunExperiment(w http.ResponseWriter, r *http.Request) {
	var req ExperimentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("run experiment: invalid body", "error", err)
		return
	}

	simOpts := []distribution.Option{distribution.WithHooks(s.hooks())}
	if req.Seed != 0 {
		simOpts = append(simOpts, distribution.WithSeed(req.Seed))
	}
	sim := distribution.New(simOpts...)

	summary, err := sim.Experiment(req.Trials, req.WalkLength, req.Threshold)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidArgument) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		s.logger.Error("experiment failed", "error", err)
		return
	}

	if req.Name != "" {
		if err := s.store.Save(r.Context(), req.Name, summary); err != nil {
			http.Error(w, "Failed to store summary", http.StatusInternalServerError)
			s.logger.Error("store summary failed", "name", req.Name, "error", err)
			return
		}
	}

	s.logger.Info("experiment served",
		"trials", summary.Trials,
		"walk_length", summary.WalkLength,
		"success_rate", summary.SuccessRate,
	)
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleListExperiments(w http.ResponseWriter, r *http.Request) {
	names, err := s.store.List(r.Context())
	if err != nil {
		http.Error(w, "Failed to list summaries", http.StatusInternalServerError)
		s.logger.Error("list summaries failed", "error", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"experiments": names})
}

func (s *Server) handleGetExperiment(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	summary, err := s.store.Load(r.Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrSummaryNotFound) {
			http.Error(w, "Summary not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to load summary", http.StatusInternalServerError)
		s.logger.Error("load summary failed", "name", name, "error", err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
