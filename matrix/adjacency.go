// SPDX-License-Identifier: MIT

// Package matrix: Adjacency constructors and queries.
//
// Contract:
//   - Constructors copy their input; the caller may reuse its slices.
//   - Queries never mutate; row getters return fresh copies.
//   - Out-of-range indices yield ErrOutOfRange, never a panic.
package matrix

import (
	"fmt"
	"strings"
)

// New builds an Adjacency from boolean rows.
// rows must be square (len(rows[i]) == len(rows) for all i); nil or empty
// input yields the empty graph.
//
// Errors: ErrNonSquare, ErrAsymmetry / ErrNonZeroDiagonal (when requested).
// Complexity: O(n²) time and memory.
func New(rows [][]bool, opts ...Option) (*Adjacency, error) {
	n := len(rows)
	for i := range rows {
		if len(rows[i]) != n {
			return nil, fmt.Errorf("New: row %d has %d cells, want %d: %w", i, len(rows[i]), n, ErrNonSquare)
		}
	}

	a := &Adjacency{n: n, bits: make([]bool, n*n)}
	for i := 0; i < n; i++ {
		copy(a.bits[i*n:(i+1)*n], rows[i])
	}

	if err := a.enforce("New", gatherOptions(opts...)); err != nil {
		return nil, err
	}

	return a, nil
}

// NewFromInts builds an Adjacency from 0/1 integer rows.
//
// Errors: ErrNonSquare, ErrNonBinary, ErrAsymmetry / ErrNonZeroDiagonal (when requested).
// Complexity: O(n²).
func NewFromInts(rows [][]int, opts ...Option) (*Adjacency, error) {
	if err := ValidateSquare(rows); err != nil {
		return nil, fmt.Errorf("NewFromInts: %w", err)
	}
	if err := ValidateBinary(rows); err != nil {
		return nil, fmt.Errorf("NewFromInts: %w", err)
	}

	n := len(rows)
	a := &Adjacency{n: n, bits: make([]bool, n*n)}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a.bits[i*n+j] = rows[i][j] == 1
		}
	}

	if err := a.enforce("NewFromInts", gatherOptions(opts...)); err != nil {
		return nil, err
	}

	return a, nil
}

// NewFromEdges builds an undirected Adjacency on n vertices. Every edge
// {u,v} sets both a[u][v] and a[v][u]; duplicates are idempotent and a
// pair with u == v sets the diagonal.
//
// Errors: ErrBadShape (n < 0), ErrOutOfRange, ErrNonZeroDiagonal (when requested).
// Complexity: O(n² + E).
func NewFromEdges(n int, edges [][2]int, opts ...Option) (*Adjacency, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewFromEdges: n=%d: %w", n, ErrBadShape)
	}

	a := &Adjacency{n: n, bits: make([]bool, n*n)}
	for k, e := range edges {
		u, v := e[0], e[1]
		if !a.inRange(u) || !a.inRange(v) {
			return nil, fmt.Errorf("NewFromEdges: edge %d (%d,%d) with n=%d: %w", k, u, v, n, ErrOutOfRange)
		}
		a.bits[a.indexOf(u, v)] = true
		a.bits[a.indexOf(v, u)] = true
	}

	if err := a.enforce("NewFromEdges", gatherOptions(opts...)); err != nil {
		return nil, err
	}

	return a, nil
}

// enforce applies the optional construction policy.
func (a *Adjacency) enforce(op string, o Options) error {
	if o.requireSymmetric && !a.IsSymmetric() {
		return fmt.Errorf("%s: %w", op, ErrAsymmetry)
	}
	if o.requireZeroDiagonal && a.HasLoops() {
		return fmt.Errorf("%s: %w", op, ErrNonZeroDiagonal)
	}

	return nil
}

// IsAdjacent reports the raw cell a[u][v].
//
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: O(1).
func (a *Adjacency) IsAdjacent(u, v int) (bool, error) {
	if a == nil {
		return false, fmt.Errorf("IsAdjacent: %w", ErrNilMatrix)
	}
	if !a.inRange(u) || !a.inRange(v) {
		return false, fmt.Errorf("IsAdjacent: (%d,%d) with n=%d: %w", u, v, a.n, ErrOutOfRange)
	}

	return a.bits[a.indexOf(u, v)], nil
}

// linked is the undirected view read from the lower triangle.
// u != v and both indices are in range.
func (a *Adjacency) linked(u, v int) bool {
	if u < v {
		u, v = v, u
	}

	return a.bits[a.indexOf(u, v)]
}

// Neighbors returns the vertices adjacent to v in ascending order.
// Self-loops are not reported.
//
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: O(n).
func (a *Adjacency) Neighbors(v int) ([]int, error) {
	if a == nil {
		return nil, fmt.Errorf("Neighbors: %w", ErrNilMatrix)
	}
	if !a.inRange(v) {
		return nil, fmt.Errorf("Neighbors: v=%d with n=%d: %w", v, a.n, ErrOutOfRange)
	}

	out := make([]int, 0)
	for u := 0; u < a.n; u++ {
		if u != v && a.linked(u, v) {
			out = append(out, u)
		}
	}

	return out, nil
}

// Degree returns len(Neighbors(v)).
// Complexity: O(n).
func (a *Adjacency) Degree(v int) (int, error) {
	nb, err := a.Neighbors(v)
	if err != nil {
		return 0, fmt.Errorf("Degree: %w", err)
	}

	return len(nb), nil
}

// Edges lists every undirected edge once as {u,v} with u < v, sorted by
// (u, v).
// Complexity: O(n²).
func (a *Adjacency) Edges() [][2]int {
	if a == nil {
		return nil
	}
	out := make([][2]int, 0)
	for u := 0; u < a.n; u++ {
		for v := u + 1; v < a.n; v++ {
			if a.bits[a.indexOf(v, u)] {
				out = append(out, [2]int{u, v})
			}
		}
	}

	return out
}

// EdgeCount returns len(Edges()) without allocating.
// Complexity: O(n²).
func (a *Adjacency) EdgeCount() int {
	if a == nil {
		return 0
	}
	m := 0
	for v := 1; v < a.n; v++ {
		for u := 0; u < v; u++ {
			if a.bits[a.indexOf(v, u)] {
				m++
			}
		}
	}

	return m
}

// Row returns a copy of row v.
//
// Errors: ErrNilMatrix, ErrOutOfRange.
func (a *Adjacency) Row(v int) ([]bool, error) {
	if a == nil {
		return nil, fmt.Errorf("Row: %w", ErrNilMatrix)
	}
	if !a.inRange(v) {
		return nil, fmt.Errorf("Row: v=%d with n=%d: %w", v, a.n, ErrOutOfRange)
	}
	out := make([]bool, a.n)
	copy(out, a.bits[v*a.n:(v+1)*a.n])

	return out, nil
}

// Rows returns a deep copy of the matrix as boolean rows.
func (a *Adjacency) Rows() [][]bool {
	n := a.Size()
	out := make([][]bool, n)
	for i := 0; i < n; i++ {
		out[i] = make([]bool, n)
		copy(out[i], a.bits[i*n:(i+1)*n])
	}

	return out
}

// IsSymmetric reports whether a[i][j] == a[j][i] for all i, j.
// Complexity: O(n²).
func (a *Adjacency) IsSymmetric() bool {
	n := a.Size()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if a.bits[a.indexOf(i, j)] != a.bits[a.indexOf(j, i)] {
				return false
			}
		}
	}

	return true
}

// HasLoops reports whether any diagonal cell is set.
// Complexity: O(n).
func (a *Adjacency) HasLoops() bool {
	n := a.Size()
	for i := 0; i < n; i++ {
		if a.bits[a.indexOf(i, i)] {
			return true
		}
	}

	return false
}

// Equal reports whether both matrices have the same size and cells.
// Two nil matrices are equal; nil equals the empty graph.
func (a *Adjacency) Equal(b *Adjacency) bool {
	if a.Size() != b.Size() {
		return false
	}
	for k := 0; k < a.Size()*a.Size(); k++ {
		if a.bits[k] != b.bits[k] {
			return false
		}
	}

	return true
}

// String renders the matrix as 0/1 rows separated by newlines.
// Deterministic; intended for logs and test failure messages.
func (a *Adjacency) String() string {
	n := a.Size()
	var sb strings.Builder
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			if a.bits[a.indexOf(i, j)] {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		if i < n-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
