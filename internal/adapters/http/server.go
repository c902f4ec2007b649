// Package http exposes the automaton toolkit over a small JSON API.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/finite/internal/presentation/graph"
	"github.com/aretw0/finite/pkg/domain"
	"github.com/aretw0/finite/pkg/ports"
	"github.com/aretw0/finite/pkg/schema"
	"github.com/aretw0/finite/pkg/sim"
	"github.com/aretw0/finite/pkg/subset"
)

// Server handles the HTTP API. The store is optional; without one the
// /automata routes respond 503.
type Server struct {
	store  ports.Store
	logger *slog.Logger

	registry    *prometheus.Registry
	simulations *prometheus.CounterVec
	conversions prometheus.Counter
}

type Option func(*Server)

// WithStore enables the /automata persistence routes.
func WithStore(store ports.Store) Option {
	return func(s *Server) {
		s.store = store
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a Server with its own metrics registry so tests can
// spin up multiple instances without collisions.
func NewServer(opts ...Option) *Server {
	registry := prometheus.NewRegistry()

	s := &Server{
		logger:   slog.Default(),
		registry: registry,
		simulations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "finite_simulations_total",
			Help: "Number of simulation requests, partitioned by automaton kind.",
		}, []string{"kind"}),
		conversions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "finite_conversions_total",
			Help: "Number of subset construction requests.",
		}),
	}
	registry.MustRegister(s.simulations, s.conversions)

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler builds the chi router for the server.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Get("/health", s.getHealth)
	r.Get("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}).ServeHTTP)

	r.Post("/validate", s.postValidate)
	r.Post("/simulate", s.postSimulate)
	r.Post("/convert", s.postConvert)
	r.Post("/analyze", s.postAnalyze)
	r.Post("/graph", s.postGraph)

	r.Route("/automata", func(r chi.Router) {
		r.Get("/", s.listAutomata)
		r.Get("/{name}", s.getAutomaton)
		r.Put("/{name}", s.putAutomaton)
		r.Delete("/{name}", s.deleteAutomaton)
	})

	return r
}

func (s *Server) getHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// postValidate reports whether the submitted document describes a well
// formed automaton. Structural problems come back as 200 with the error
// text so clients can show them; only malformed JSON is a 400.
func (s *Server) postValidate(w http.ResponseWriter, r *http.Request) {
	var doc schema.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		s.writeError(w, r, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	resp := struct {
		Valid bool   `json:"valid"`
		Error string `json:"error,omitempty"`
	}{Valid: true}

	if _, err := doc.Automaton(); err != nil {
		resp.Valid = false
		resp.Error = err.Error()
	}

	writeJSON(w, http.StatusOK, resp)
}

type simulateRequest struct {
	Automaton schema.Document `json:"automaton"`
	Input     string          `json:"input"`
}

type simulateResponse struct {
	Accepted      bool       `json:"accepted"`
	Deterministic bool       `json:"deterministic"`
	Steps         []stepDTO  `json:"steps,omitempty"`
	StatesByStep  [][]string `json:"states_by_step,omitempty"`
}

type stepDTO struct {
	State    string `json:"state"`
	Position int    `json:"position"`
	Symbol   string `json:"symbol,omitempty"`
	Halted   bool   `json:"halted,omitempty"`
}

// postSimulate runs the input against the automaton, choosing the DFA or
// NFA engine by inspecting the transition structure.
func (s *Server) postSimulate(w http.ResponseWriter, r *http.Request) {
	var req simulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	a, err := req.Automaton.Automaton()
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	if a.IsDeterministic() {
		s.simulateDFA(w, r, a, req.Input)
		return
	}
	s.simulateNFA(w, r, a, req.Input)
}

func (s *Server) simulateDFA(w http.ResponseWriter, r *http.Request, a *domain.Automaton, input string) {
	simulator, err := sim.NewDFASimulator(a)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	accepted, steps, err := simulator.Simulate(input)
	if err != nil {
		s.writeError(w, r, statusFor(err), err)
		return
	}
	s.simulations.WithLabelValues("dfa").Inc()

	resp := simulateResponse{Accepted: accepted, Deterministic: true}
	for _, step := range steps {
		resp.Steps = append(resp.Steps, stepDTO{
			State:    step.State.ID,
			Position: step.Position,
			Symbol:   step.Symbol,
			Halted:   step.Halted(),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) simulateNFA(w http.ResponseWriter, r *http.Request, a *domain.Automaton, input string) {
	simulator, err := sim.NewNFASimulator(a)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	accepted, sets, err := simulator.Simulate(input)
	if err != nil {
		s.writeError(w, r, statusFor(err), err)
		return
	}
	s.simulations.WithLabelValues("nfa").Inc()

	resp := simulateResponse{Accepted: accepted, Deterministic: false}
	for _, set := range sets {
		resp.StatesByStep = append(resp.StatesByStep, set.StateIDs())
	}
	writeJSON(w, http.StatusOK, resp)
}

type convertResponse struct {
	DFA     schema.Document     `json:"dfa"`
	Steps   []string            `json:"steps"`
	Mapping map[string][]string `json:"mapping"`
}

// postConvert runs the subset construction and returns the resulting DFA
// together with the step log and the DFA-state to NFA-state-set mapping.
func (s *Server) postConvert(w http.ResponseWriter, r *http.Request) {
	var doc schema.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		s.writeError(w, r, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	a, err := doc.Automaton()
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	result, err := subset.Convert(a)
	if err != nil {
		s.writeError(w, r, statusFor(err), err)
		return
	}
	s.conversions.Inc()

	resp := convertResponse{
		DFA:     *schema.FromAutomaton(result.DFA),
		Mapping: make(map[string][]string, len(result.Mapping)),
	}
	for _, step := range result.Steps {
		resp.Steps = append(resp.Steps, step.String())
	}
	for id, set := range result.Mapping {
		resp.Mapping[id] = set.IDs()
	}
	writeJSON(w, http.StatusOK, resp)
}

// postAnalyze returns size statistics of the NFA and its subset DFA.
func (s *Server) postAnalyze(w http.ResponseWriter, r *http.Request) {
	var doc schema.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		s.writeError(w, r, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	a, err := doc.Automaton()
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	analysis, err := subset.Analyze(a)
	if err != nil {
		s.writeError(w, r, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

// postGraph renders the automaton as Mermaid flowchart text.
func (s *Server) postGraph(w http.ResponseWriter, r *http.Request) {
	var doc schema.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		s.writeError(w, r, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	a, err := doc.Automaton()
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, graph.GenerateMermaid(a, nil))
}

func (s *Server) listAutomata(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, r, http.StatusServiceUnavailable, errors.New("no store configured"))
		return
	}

	names, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"automata": names})
}

func (s *Server) getAutomaton(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, r, http.StatusServiceUnavailable, errors.New("no store configured"))
		return
	}

	doc, err := s.store.Load(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, r, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) putAutomaton(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, r, http.StatusServiceUnavailable, errors.New("no store configured"))
		return
	}

	var doc schema.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		s.writeError(w, r, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	// Reject structurally broken documents before they hit the store.
	if _, err := doc.Automaton(); err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	name := chi.URLParam(r, "name")
	if err := s.store.Save(r.Context(), name, &doc); err != nil {
		s.writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"name": name})
}

func (s *Server) deleteAutomaton(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, r, http.StatusServiceUnavailable, errors.New("no store configured"))
		return
	}

	if err := s.store.Delete(r.Context(), chi.URLParam(r, "name")); err != nil {
		s.writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	var inputErr *sim.InputError
	var fieldErr *schema.FieldError

	switch {
	case errors.Is(err, ports.ErrAutomatonNotFound):
		return http.StatusNotFound
	case errors.As(err, &inputErr),
		errors.As(err, &fieldErr),
		errors.Is(err, domain.ErrNoInitialState),
		errors.Is(err, domain.ErrNotDeterministic):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	} else {
		s.logger.Debug("request rejected", "method", r.Method, "path", r.URL.Path, "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		fmt.Printf("response encode error: %v\n", err)
	}
}
