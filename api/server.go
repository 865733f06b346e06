// SPDX-License-Identifier: MIT
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/katalvlaran/fourcolor/coloring"
	"github.com/katalvlaran/fourcolor/matrix"
	"github.com/katalvlaran/fourcolor/observability"
	"github.com/katalvlaran/fourcolor/pipeline"
	"github.com/katalvlaran/fourcolor/planarity"
)

// Config holds the service limits and request defaults.
type Config struct {
	// MaxVertices bounds the matrix size of a single request.
	MaxVertices int
	// MaxBodyBytes bounds the request body.
	MaxBodyBytes int64
	// RequestTimeout bounds a coloring run; a search still running at the
	// deadline is canceled and answered with 504.
	RequestTimeout time.Duration
	// Palette is used when a request names none.
	Palette coloring.Palette
	// Strategy is used when a request names none.
	Strategy coloring.Strategy
	// PlanarityGate is used when a request does not set planarity_gate.
	PlanarityGate bool
	// CrossCheck forces the SAT cross-check on every request.
	CrossCheck bool
}

// Server wires the HTTP routes to a pipeline.Runner.
type Server struct {
	cfg      Config
	runner   *pipeline.Runner
	log      *zap.Logger
	metrics  *observability.Collector
	validate *validator.Validate
}

// NewServer returns a Server. log and metrics may be nil.
func NewServer(cfg Config, runner *pipeline.Runner, log *zap.Logger, metrics *observability.Collector) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	if metrics == nil {
		metrics = observability.NewCollector()
	}

	return &Server{
		cfg:      cfg,
		runner:   runner,
		log:      log,
		metrics:  metrics,
		validate: validator.New(),
	}
}

// Routes builds the chi router with its middleware chain.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(requestLogger(s.log, s.metrics))

	r.Get("/healthz", s.health)
	r.Handle("/metrics", s.metrics.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Post("/colorings", s.createColoring)
		r.Post("/planarity", s.checkPlanarity)
	})

	return r
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) createColoring(w http.ResponseWriter, r *http.Request) {
	var req coloringRequest
	if !s.decode(w, r, &req) {
		return
	}
	g, ok := s.graph(w, r, req.Matrix)
	if !ok {
		return
	}

	p := s.cfg.Palette
	if len(req.Palette) > 0 {
		var err error
		if p, err = coloring.NewPalette(req.Palette...); err != nil {
			s.respondError(w, r, http.StatusBadRequest, err.Error())
			return
		}
	}
	strategy := s.cfg.Strategy
	if req.Strategy != "" {
		var err error
		if strategy, err = coloring.ParseStrategy(req.Strategy); err != nil {
			s.respondError(w, r, http.StatusBadRequest, err.Error())
			return
		}
	}
	gate := s.cfg.PlanarityGate
	if req.PlanarityGate != nil {
		gate = *req.PlanarityGate
	}

	ctx := r.Context()
	if s.cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.RequestTimeout)
		defer cancel()
	}
	rep, err := s.runner.Run(ctx, pipeline.Request{
		Graph:         g,
		Palette:       p,
		Strategy:      strategy,
		PlanarityGate: gate,
		CrossCheck:    req.CrossCheck || s.cfg.CrossCheck,
	})
	switch {
	case err == nil:
		s.respondJSON(w, http.StatusOK, toColoringResponse(rep))
	case errors.Is(err, coloring.ErrCanceled), errors.Is(err, coloring.ErrTimeLimit):
		s.respondError(w, r, http.StatusGatewayTimeout, "search did not finish before the request deadline")
	default:
		s.log.Error("coloring run failed",
			zap.String("run_id", rep.RunID),
			zap.String("request_id", chimiddleware.GetReqID(r.Context())),
			zap.Error(err),
		)
		s.respondError(w, r, http.StatusInternalServerError, "coloring failed")
	}
}

func (s *Server) checkPlanarity(w http.ResponseWriter, r *http.Request) {
	var req planarityRequest
	if !s.decode(w, r, &req) {
		return
	}
	g, ok := s.graph(w, r, req.Matrix)
	if !ok {
		return
	}
	rep, err := planarity.Check(g)
	if err != nil {
		s.respondError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	s.metrics.ObservePlanarityCheck(rep)
	s.respondJSON(w, http.StatusOK, toPlanarityDTO(rep))
}

// decode reads and validates a JSON body; it writes the error response
// itself and reports whether the handler may continue.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if s.cfg.MaxBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.respondError(w, r, http.StatusRequestEntityTooLarge, fmt.Sprintf("body exceeds %d bytes", tooLarge.Limit))
			return false
		}
		s.respondError(w, r, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		s.respondError(w, r, http.StatusBadRequest, validationMessage(err))
		return false
	}

	return true
}

// graph turns request rows into a symmetric adjacency matrix.
func (s *Server) graph(w http.ResponseWriter, r *http.Request, rows [][]int) (*matrix.Adjacency, bool) {
	if s.cfg.MaxVertices > 0 && len(rows) > s.cfg.MaxVertices {
		s.respondError(w, r, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("%d vertices, limit %d", len(rows), s.cfg.MaxVertices))
		return nil, false
	}
	g, err := matrix.NewFromInts(rows, matrix.WithRequireSymmetric())
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, err.Error())
		return nil, false
	}

	return g, true
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Namespace())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Namespace(), fe.Param())
	case "unique":
		return fmt.Sprintf("%s must not repeat values", fe.Namespace())
	default:
		return fmt.Sprintf("%s is invalid", fe.Namespace())
	}
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	s.respondJSON(w, status, errorResponse{
		Error:     message,
		Code:      status,
		RequestID: chimiddleware.GetReqID(r.Context()),
	})
}

// ListenAndServe runs the service on addr until ctx ends, then shuts down
// gracefully within shutdownTimeout.
func (s *Server) ListenAndServe(ctx context.Context, addr string, readTimeout, writeTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: readTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", zap.String("addr", addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return fmt.Errorf("ListenAndServe: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.log.Info("http server shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("ListenAndServe: shutdown: %w", err)
		}

		return nil
	}
}

const shutdownTimeout = 10 * time.Second
