// SPDX-License-Identifier: MIT
// Package: fourcolor/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildLabeled(opts, cons...). Creates a draft, resolves
//     cfg, runs cons in order, freezes the draft into a *matrix.Adjacency.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical matrices.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/fourcolor/matrix"
)

// Constructor appends vertices and edges to the draft using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Allocate their vertices with d.addVertex (indices continue after the
//     ones already present).
//   - Emit edges in a stable, documented order.
type Constructor func(d *draft, cfg builderConfig) error

// Build runs the constructors and returns the resulting adjacency matrix.
// Any constructor error is wrapped with "Build: %w".
//
// Complexity: Σ cost of constructors + O(V²) to freeze the matrix.
func Build(opts []BuilderOption, cons ...Constructor) (*matrix.Adjacency, error) {
	a, _, err := BuildLabeled(opts, cons...)

	return a, err
}

// BuildLabeled is Build plus one label per vertex, produced by the label
// scheme (WithIDScheme) or fixed by the constructor ("Center", "L0", ...).
func BuildLabeled(opts []BuilderOption, cons ...Constructor) (*matrix.Adjacency, []string, error) {
	cfg := newBuilderConfig(opts...)
	d := newDraft()

	for i, fn := range cons {
		if fn == nil {
			return nil, nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, nil, fmt.Errorf("Build: %w", err)
		}
	}

	a, err := matrix.NewFromEdges(len(d.labels), d.edges,
		matrix.WithRequireSymmetric(), matrix.WithRequireZeroDiagonal())
	if err != nil {
		return nil, nil, fmt.Errorf("Build: freeze: %v: %w", err, ErrConstructFailed)
	}

	return a, d.labels, nil
}
