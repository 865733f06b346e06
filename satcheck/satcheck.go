// SPDX-License-Identifier: MIT

// Package satcheck answers "is g k-colorable?" with a SAT solver. It is an
// independent second opinion on coloring.Solve: both read the lower
// triangle only, so their verdicts must agree on every input.
//
// Encoding: variable x(v,c) = v*k + c + 1 means "vertex v has color c".
//   - at least one color per vertex:  x(v,0) ∨ … ∨ x(v,k-1)
//   - at most one color per vertex:   ¬x(v,a) ∨ ¬x(v,b) for a < b
//   - adjacent vertices differ:       ¬x(u,c) ∨ ¬x(v,c) for every edge u–v
package satcheck

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/katalvlaran/fourcolor/matrix"
)

const (
	satisfiable   = 1
	unsatisfiable = -1
)

// pollEvery is how often a running solve checks the context.
const pollEvery = 5 * time.Millisecond

var (
	// ErrGraphNil is returned for a nil graph.
	ErrGraphNil = errors.New("satcheck: graph is nil")

	// ErrNegativeColors is returned for k < 0.
	ErrNegativeColors = errors.New("satcheck: negative color count")

	// ErrIncomplete is returned when ctx ends before the solver decides.
	ErrIncomplete = errors.New("satcheck: canceled before a verdict")
)

func lit(v, c, k int) z.Lit {
	return z.Var(v*k + c + 1).Pos()
}

// encode loads the k-coloring clauses of g into a fresh solver.
func encode(g *matrix.Adjacency, k int) *gini.Gini {
	s := gini.New()
	n := g.Size()
	for v := 0; v < n; v++ {
		for c := 0; c < k; c++ {
			s.Add(lit(v, c, k))
		}
		s.Add(z.LitNull)
		for a := 0; a < k; a++ {
			for b := a + 1; b < k; b++ {
				s.Add(lit(v, a, k).Not())
				s.Add(lit(v, b, k).Not())
				s.Add(z.LitNull)
			}
		}
	}
	for _, e := range g.Edges() {
		for c := 0; c < k; c++ {
			s.Add(lit(e[0], c, k).Not())
			s.Add(lit(e[1], c, k).Not())
			s.Add(z.LitNull)
		}
	}

	return s
}

// Colorable reports whether g admits a proper coloring with k colors and,
// if so, returns one as color indices in [0, k). The model is any
// satisfying assignment, not necessarily the one coloring.Solve finds.
//
// n = 0 is colorable with any k; k = 0 with n > 0 is not.
func Colorable(ctx context.Context, g *matrix.Adjacency, k int) (bool, []int, error) {
	if g == nil {
		return false, nil, fmt.Errorf("Colorable: %w", ErrGraphNil)
	}
	if k < 0 {
		return false, nil, fmt.Errorf("Colorable: k=%d: %w", k, ErrNegativeColors)
	}
	n := g.Size()
	if n == 0 {
		return true, []int{}, nil
	}
	if k == 0 {
		return false, nil, nil
	}

	s := encode(g, k)
	result, err := run(ctx, s)
	if err != nil {
		return false, nil, fmt.Errorf("Colorable: %w", err)
	}
	if result == unsatisfiable {
		return false, nil, nil
	}

	colors := make([]int, n)
	for v := 0; v < n; v++ {
		for c := 0; c < k; c++ {
			if s.Value(lit(v, c, k)) {
				colors[v] = c
				break
			}
		}
	}

	return true, colors, nil
}

// run solves in the background and stops the solver when ctx ends.
func run(ctx context.Context, s *gini.Gini) (int, error) {
	if ctx == nil {
		return s.Solve(), nil
	}
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrIncomplete, err)
	}

	sv := s.GoSolve()
	tick := time.NewTicker(pollEvery)
	defer tick.Stop()
	for {
		if result, done := sv.Test(); done {
			if result != satisfiable && result != unsatisfiable {
				return 0, ErrIncomplete
			}

			return result, nil
		}
		select {
		case <-ctx.Done():
			sv.Stop()

			return 0, fmt.Errorf("%w: %w", ErrIncomplete, ctx.Err())
		case <-tick.C:
		}
	}
}
