// SPDX-License-Identifier: MIT
package coloring

import "errors"

// Sentinel errors. Callers branch with errors.Is; context is attached with %w.
var (
	// ErrGraphNil is returned when a nil *matrix.Adjacency is passed.
	ErrGraphNil = errors.New("coloring: graph is nil")

	// ErrUnknownStrategy is returned for a Strategy outside the declared set.
	ErrUnknownStrategy = errors.New("coloring: unknown strategy")

	// ErrCanceled is returned when the caller's context ends the search.
	ErrCanceled = errors.New("coloring: search canceled")

	// ErrTimeLimit is returned when WithTimeLimit expires before the search ends.
	ErrTimeLimit = errors.New("coloring: time limit exceeded")

	// ErrEmptyColor rejects an empty palette label.
	ErrEmptyColor = errors.New("coloring: empty color label")

	// ErrDuplicateColor rejects a palette label given twice.
	ErrDuplicateColor = errors.New("coloring: duplicate color label")

	// ErrPrefixRange is returned by Palette.Prefix for k outside [0, Len()].
	ErrPrefixRange = errors.New("coloring: palette prefix out of range")

	// ErrLengthMismatch: assignment length differs from the vertex count.
	ErrLengthMismatch = errors.New("coloring: assignment length mismatch")

	// ErrUnassigned: a vertex has no color.
	ErrUnassigned = errors.New("coloring: vertex unassigned")

	// ErrConflict: two adjacent vertices share a color.
	ErrConflict = errors.New("coloring: adjacent vertices share a color")
)
