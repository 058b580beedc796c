package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/aretw0/turing/internal/logging"
	"github.com/aretw0/turing/internal/presentation/graph"
	"github.com/aretw0/turing/internal/runtime"
	"github.com/aretw0/turing/pkg/definition"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/ports"
	"github.com/aretw0/turing/pkg/unary"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Engine is the part of the simulator the HTTP API drives.
// *turing.Simulator satisfies it.
type Engine interface {
	Definition() *domain.Definition
	Simulate(ctx context.Context, input string, maxSteps int) (domain.Outcome, error)
	Trace(ctx context.Context, input string, maxSteps int) (domain.Outcome, error)
	NewMachine(opts ...runtime.Option) *runtime.Machine
}

// Server serves one machine over HTTP.
type Server struct {
	Engine  Engine
	Metrics http.Handler
	// Reports, when set, serves stored analysis reports.
	Reports ports.ReportStore
	Logger  *slog.Logger
	// MaxSteps caps the step budget a request may ask for.
	MaxSteps int
	Now      func() time.Time
}

// Option configures a Server.
type Option func(*Server)

// WithMetrics mounts h (typically promhttp.HandlerFor) at /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) { s.Metrics = h }
}

// WithReports exposes store under /reports.
func WithReports(store ports.ReportStore) Option {
	return func(s *Server) { s.Reports = store }
}

// WithLogger sets the request and error logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.Logger = logger
		}
	}
}

// WithMaxSteps caps the per-request step budget.
func WithMaxSteps(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.MaxSteps = n
		}
	}
}

// maxBodyOverhead is the room left in a POST /run body for everything but
// the input itself.
const maxBodyOverhead = 4096

// RunRequest is the body of POST /run. Exactly one of Input and N is set.
type RunRequest struct {
	Input    *string `json:"input,omitempty"`
	N        *int    `json:"n,omitempty"`
	MaxSteps int     `json:"max_steps,omitempty"`
	Trace    bool    `json:"trace,omitempty"`
}

// NewHandler creates a new HTTP handler for the engine.
func NewHandler(engine Engine, opts ...Option) http.Handler {
	s := &Server{
		Engine:   engine,
		Logger:   logging.NewNop(),
		MaxSteps: domain.DefaultMaxSteps,
		Now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Use(enableCORS)

	r.Get("/healthz", s.GetHealth)
	r.Get("/definition", s.GetDefinition)
	r.Get("/graph", s.GetGraph)
	r.Post("/run", s.Run)
	r.Get("/run/stream", s.StreamRun)
	if s.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.Metrics)
	}
	if s.Reports != nil {
		r.Route("/reports", func(r chi.Router) {
			r.Get("/", s.ListReports)
			r.Get("/{id}", s.GetReport)
		})
	}
	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.Logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetHealth handles GET /healthz.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

// GetDefinition handles GET /definition.
func (s *Server) GetDefinition(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, definition.Encode(s.Engine.Definition()))
}

// GetGraph handles GET /graph?format=mermaid|dot|markdown.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request) {
	def := s.Engine.Definition()
	format := r.URL.Query().Get("format")

	var body, contentType string
	switch format {
	case "", "mermaid":
		body, contentType = graph.GenerateMermaid(def, nil), "text/plain; charset=utf-8"
	case "dot":
		body, contentType = graph.GenerateDOT(def), "text/vnd.graphviz; charset=utf-8"
	case "markdown", "md":
		body = graph.GenerateMarkdown(def, graph.GenerateMermaid(def, nil), s.Now())
		contentType = "text/markdown; charset=utf-8"
	default:
		http.Error(w, fmt.Sprintf("unknown graph format %q", format), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Write([]byte(body))
}

// Run handles POST /run.
func (s *Server) Run(w http.ResponseWriter, r *http.Request) {
	var body RunRequest
	r.Body = http.MaxBytesReader(w, r.Body, int64(s.MaxSteps)+maxBodyOverhead)
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.Logger.Warn("run: invalid request body", "err", err)
		return
	}

	input, err := s.requestInput(body.Input, body.N)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	maxSteps := s.budget(body.MaxSteps)

	run := s.Engine.Simulate
	if body.Trace {
		run = s.Engine.Trace
	}
	out, err := run(r.Context(), input, maxSteps)
	if err != nil {
		s.writeRunError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, out)
}

// StreamRun handles GET /run/stream?input=...|n=...&max_steps=... and
// sends one server-sent "step" event per snapshot, then a "halt" event
// carrying the outcome.
func (s *Server) StreamRun(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	q := r.URL.Query()
	var rawInput *string
	var n *int
	if q.Has("input") {
		v := q.Get("input")
		rawInput = &v
	}
	if q.Has("n") {
		v, err := strconv.Atoi(q.Get("n"))
		if err != nil {
			http.Error(w, "n must be an integer", http.StatusBadRequest)
			return
		}
		n = &v
	}
	input, err := s.requestInput(rawInput, n)
	if err == nil {
		err = unary.Validate(input)
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var requested int
	if q.Has("max_steps") {
		if requested, err = strconv.Atoi(q.Get("max_steps")); err != nil {
			http.Error(w, "max_steps must be an integer", http.StatusBadRequest)
			return
		}
	}
	maxSteps := s.budget(requested)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	m := s.Engine.NewMachine(runtime.WithHistory(false))
	m.Reset(input)
	send := func(event string, v any) {
		data, _ := json.Marshal(v)
		fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
		flusher.Flush()
	}
	snapshot := func() domain.Snapshot {
		tape, offset := m.Render()
		return domain.Snapshot{Step: m.StepCount(), State: m.State(), Head: m.Head(), Tape: tape, Offset: offset}
	}

	send("step", snapshot())
	for m.StepCount() < maxSteps && !m.Halted() {
		if r.Context().Err() != nil {
			s.Logger.Info("stream client disconnected", "steps", m.StepCount())
			return
		}
		before := m.StepCount()
		m.Step()
		// A halt on a missing rule executes no step and has no snapshot.
		if m.StepCount() > before {
			send("step", snapshot())
		}
	}
	send("halt", m.Outcome(input))
}

// ListReports handles GET /reports.
func (s *Server) ListReports(w http.ResponseWriter, r *http.Request) {
	ids, err := s.Reports.List(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("List error: %v", err), http.StatusInternalServerError)
		s.Logger.Error("list reports failed", "err", err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string][]string{"reports": ids})
}

// GetReport handles GET /reports/{id}.
func (s *Server) GetReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	report, err := s.Reports.Load(r.Context(), id)
	if errors.Is(err, domain.ErrReportNotFound) {
		http.Error(w, fmt.Sprintf("report %q not found", id), http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, fmt.Sprintf("Load error: %v", err), http.StatusInternalServerError)
		s.Logger.Error("load report failed", "id", id, "err", err)
		return
	}
	s.writeJSON(w, http.StatusOK, report)
}

// requestInput resolves the unary input of a run. Inputs longer than the
// server's step cap are refused: no run within the cap reads past them.
func (s *Server) requestInput(input *string, n *int) (string, error) {
	switch {
	case input != nil && n != nil:
		return "", errors.New("set either input or n, not both")
	case n != nil:
		if *n < 0 {
			return "", fmt.Errorf("n must be non-negative, got %d", *n)
		}
		if *n > s.MaxSteps {
			return "", fmt.Errorf("n must be at most %d, got %d", s.MaxSteps, *n)
		}
		return unary.Encode(*n), nil
	case input != nil:
		if len(*input) > s.MaxSteps {
			return "", fmt.Errorf("input must be at most %d symbols, got %d", s.MaxSteps, len(*input))
		}
		return *input, nil
	}
	return "", errors.New("missing input or n")
}

func (s *Server) budget(requested int) int {
	if requested <= 0 || requested > s.MaxSteps {
		return s.MaxSteps
	}
	return requested
}

func (s *Server) writeRunError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
	default:
		http.Error(w, fmt.Sprintf("Run error: %v", err), http.StatusInternalServerError)
		s.Logger.Error("run failed", "err", err)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("response encode failed", "err", err)
	}
}
