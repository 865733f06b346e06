// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Adjacency constructors.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - gatherOptions helper (internal) that resolves them.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts construction and is covered by tests.
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

// DEFAULTS - single source of truth for zero-value behavior.
// These constants MUST reflect the intended defaults in gatherOptions.
const (
	// DefaultRequireSymmetric controls whether constructors reject a[i][j] != a[j][i].
	// false ⇒ symmetry is the caller's invariant (the search reads the lower triangle only).
	DefaultRequireSymmetric = false

	// DefaultRequireZeroDiagonal controls whether constructors reject self-loops.
	// false ⇒ diagonal cells are stored but never consulted by the search.
	DefaultRequireZeroDiagonal = false
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Public entry points accept `...Option` and resolve them via gatherOptions.
type Options struct {
	requireSymmetric    bool // DefaultRequireSymmetric
	requireZeroDiagonal bool // DefaultRequireZeroDiagonal
}

// WithRequireSymmetric makes constructors fail with ErrAsymmetry on any
// a[i][j] != a[j][i].
// Complexity: O(1) to apply; O(n²) check at construction.
func WithRequireSymmetric() Option {
	return func(o *Options) { o.requireSymmetric = true }
}

// WithRequireZeroDiagonal makes constructors fail with ErrNonZeroDiagonal on
// any a[i][i] set.
// Complexity: O(1) to apply; O(n) check at construction.
func WithRequireZeroDiagonal() Option {
	return func(o *Options) { o.requireZeroDiagonal = true }
}

// gatherOptions applies opts in order over the documented defaults.
// Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := Options{
		requireSymmetric:    DefaultRequireSymmetric,
		requireZeroDiagonal: DefaultRequireZeroDiagonal,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
