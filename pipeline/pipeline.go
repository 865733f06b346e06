// SPDX-License-Identifier: MIT
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/fourcolor/coloring"
	"github.com/katalvlaran/fourcolor/matrix"
	"github.com/katalvlaran/fourcolor/planarity"
	"github.com/katalvlaran/fourcolor/satcheck"
)

// GateMaxColors is the largest palette the planarity gate applies to.
// Larger palettes color some non-planar graphs (K5 with five colors), so
// the gate is skipped for them.
const GateMaxColors = 4

var (
	// ErrGraphNil is returned for a request without a graph.
	ErrGraphNil = errors.New("pipeline: graph is nil")

	// ErrVerify means the search returned an assignment that is not proper.
	ErrVerify = errors.New("pipeline: assignment failed verification")

	// ErrCrossCheck means the SAT oracle disagrees with the search.
	ErrCrossCheck = errors.New("pipeline: SAT cross-check disagrees")
)

// Observer receives search and gate events; *observability.Collector
// implements it.
type Observer interface {
	coloring.Observer
	ObservePlanarity(planarity.Report)
}

// Request is one coloring job.
type Request struct {
	Graph         *matrix.Adjacency
	Palette       coloring.Palette
	Strategy      coloring.Strategy
	TimeLimit     time.Duration
	PlanarityGate bool
	CrossCheck    bool
}

// Report is the outcome of Run.
//
// Gated means the planarity gate refused the graph and no search ran;
// Feasible is then false. Planarity is nil when the gate did not run.
type Report struct {
	RunID        string
	Vertices     int
	Edges        int
	Colors       []coloring.Color
	Indices      []int
	Feasible     bool
	Gated        bool
	Planarity    *planarity.Report
	CrossChecked bool
	Stats        coloring.Stats
	Elapsed      time.Duration
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger; nil keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithObserver attaches metrics.
func WithObserver(obs Observer) Option {
	return func(r *Runner) { r.obs = obs }
}

// Runner executes requests. It holds no per-run state and is safe for
// concurrent use when its Observer is.
type Runner struct {
	log *zap.Logger
	obs Observer
}

// New returns a Runner with a no-op logger and no observer by default.
func New(opts ...Option) *Runner {
	r := &Runner{log: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}

	return r
}

// Run executes req. Infeasible and gated outcomes are reports, not errors.
//
// Errors: ErrGraphNil, matrix.ErrAsymmetry, coloring.ErrUnknownStrategy,
// coloring.ErrCanceled, coloring.ErrTimeLimit, ErrVerify, ErrCrossCheck,
// satcheck.ErrIncomplete. On a search abort the report still carries the
// run ID and partial Stats.
func (r *Runner) Run(ctx context.Context, req Request) (Report, error) {
	g := req.Graph
	if g == nil {
		return Report{}, fmt.Errorf("Run: %w", ErrGraphNil)
	}
	if !g.IsSymmetric() {
		return Report{}, fmt.Errorf("Run: %w", matrix.ErrAsymmetry)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	rep := Report{
		RunID:    uuid.NewString(),
		Vertices: g.Size(),
		Edges:    g.EdgeCount(),
	}
	log := r.log.With(zap.String("run_id", rep.RunID))
	start := time.Now()

	if req.PlanarityGate && req.Palette.Len() <= GateMaxColors {
		pr, err := planarity.Check(g)
		if err != nil {
			return rep, fmt.Errorf("Run: %w", err)
		}
		rep.Planarity = &pr
		if pr.Verdict == planarity.NonPlanar {
			if r.obs != nil {
				r.obs.ObservePlanarity(pr)
			}
			rep.Gated = true
			rep.Elapsed = time.Since(start)
			log.Info("graph rejected by planarity gate",
				zap.Stringer("reason", pr.Reason),
				zap.Ints("component", pr.Component),
				zap.Int("edges", pr.Edges),
				zap.Int("bound", pr.Bound),
			)

			return rep, nil
		}
	}

	opts := []coloring.Option{
		coloring.WithStrategy(req.Strategy),
		coloring.WithContext(ctx),
		coloring.WithLogger(log),
	}
	if req.TimeLimit > 0 {
		opts = append(opts, coloring.WithTimeLimit(req.TimeLimit))
	}
	if r.obs != nil {
		opts = append(opts, coloring.WithObserver(r.obs))
	}
	res, err := coloring.Solve(g, req.Palette, opts...)
	rep.Stats = res.Stats
	if err != nil {
		rep.Elapsed = time.Since(start)
		log.Warn("coloring search aborted", zap.Error(err))

		return rep, fmt.Errorf("Run: %w", err)
	}
	if res.Feasible {
		if err := coloring.Verify(g, res.Colors); err != nil {
			return rep, fmt.Errorf("Run: %v: %w", err, ErrVerify)
		}
		rep.Feasible = true
		rep.Colors = res.Colors
		rep.Indices = res.Indices
	}

	if req.CrossCheck {
		ok, _, err := satcheck.Colorable(ctx, g, req.Palette.Len())
		if err != nil {
			return rep, fmt.Errorf("Run: %w", err)
		}
		if ok != res.Feasible {
			return rep, fmt.Errorf("Run: search=%t sat=%t: %w", res.Feasible, ok, ErrCrossCheck)
		}
		rep.CrossChecked = true
	}

	rep.Elapsed = time.Since(start)
	log.Info("coloring run finished",
		zap.Int("vertices", rep.Vertices),
		zap.Int("edges", rep.Edges),
		zap.Int("colors", req.Palette.Len()),
		zap.Bool("feasible", rep.Feasible),
		zap.Bool("cross_checked", rep.CrossChecked),
		zap.Int64("nodes", rep.Stats.Nodes),
		zap.Duration("elapsed", rep.Elapsed),
	)

	return rep, nil
}
