// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file contains ONLY the Adjacency type and its cheap accessors.
// Errors and options live in dedicated files (errors.go, options.go).
package matrix

// Adjacency is an immutable n×n boolean adjacency matrix.
//
// Storage is a flat row-major slice: cell (u,v) lives at bits[u*n+v].
// The zero value is the empty graph (n = 0) and is ready to use.
//
// Complexity: O(n²) memory; O(1) cell lookup.
type Adjacency struct {
	n    int    // number of vertices (rows == cols)
	bits []bool // row-major n*n cells; never mutated after construction
}

// Size returns the number of vertices n.
// Complexity: O(1).
func (a *Adjacency) Size() int {
	if a == nil {
		return 0
	}

	return a.n
}

// indexOf converts (u,v) to the flat offset. Callers must pre-check bounds.
func (a *Adjacency) indexOf(u, v int) int {
	return u*a.n + v
}

// inRange reports whether v is a valid vertex index.
func (a *Adjacency) inRange(v int) bool {
	return v >= 0 && v < a.n
}
