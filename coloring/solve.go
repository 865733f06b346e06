// SPDX-License-Identifier: MIT
package coloring

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/fourcolor/matrix"
)

// Solve searches for an assignment of palette colors to the vertices of g
// such that no two adjacent vertices share a color.
//
// Contract:
//   - g != nil (ErrGraphNil); the palette may be empty.
//   - The first valid assignment in (vertex index, palette order) is returned.
//   - No assignment exists → Result{Feasible: false}, nil error.
//   - Aborts (context, time limit) return ErrCanceled / ErrTimeLimit with the
//     Stats gathered so far.
//
// Complexity: O(K^n · n) time worst case, O(n²) memory.
func Solve(g *matrix.Adjacency, p Palette, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, fmt.Errorf("Solve: %w", ErrGraphNil)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.Strategy != Recursive && o.Strategy != Iterative {
		return Result{}, fmt.Errorf("Solve: %s: %w", o.Strategy, ErrUnknownStrategy)
	}

	e := newEngine(g, p.Len(), o)
	if err := e.check(); err != nil {
		return Result{}, err
	}

	log := o.Logger.With(
		zap.Stringer("strategy", o.Strategy),
		zap.Int("vertices", e.n),
		zap.Int("colors", e.k),
	)
	log.Debug("coloring search started")

	start := time.Now()
	var (
		ok  bool
		err error
	)
	switch o.Strategy {
	case Iterative:
		ok, err = e.iterate()
	default:
		ok, err = e.recurse(0)
	}
	elapsed := time.Since(start)

	outcome := OutcomeInfeasible
	switch {
	case err != nil:
		outcome = OutcomeAborted
	case ok:
		outcome = OutcomeFeasible
	}
	log.Debug("coloring search finished",
		zap.String("outcome", string(outcome)),
		zap.Int64("nodes", e.stats.Nodes),
		zap.Int64("backtracks", e.stats.Backtracks),
		zap.Int("max_depth", e.stats.MaxDepth),
		zap.Duration("elapsed", elapsed),
		zap.Error(err),
	)
	if o.Observer != nil {
		o.Observer.ObserveSearch(SearchReport{
			Strategy: o.Strategy,
			Vertices: e.n,
			Colors:   e.k,
			Outcome:  outcome,
			Stats:    e.stats,
			Elapsed:  elapsed,
			Err:      err,
		})
	}

	if err != nil {
		return Result{Stats: e.stats}, err
	}
	if !ok {
		return Result{Feasible: false, Stats: e.stats}, nil
	}

	res := Result{
		Feasible: true,
		Colors:   make([]Color, e.n),
		Indices:  make([]int, e.n),
		Stats:    e.stats,
	}
	for v, c := range e.colors {
		res.Indices[v] = c
		res.Colors[v] = p.At(c)
	}

	return res, nil
}
