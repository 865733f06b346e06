// Package matrix provides the immutable adjacency model consumed by the
// coloring search.
//
// The matrix package provides:
//
//   - Adjacency: a square, row-major boolean matrix with O(1) cell lookups
//     and O(V²) memory. It is constructed once and never mutated afterwards;
//     every getter that exposes rows returns a copy.
//   - Constructors from boolean rows, 0/1 integer rows, and edge lists.
//   - Central validators (ValidateSquare, ValidateBinary, ValidateSymmetric,
//     ValidateZeroDiagonal) shared by constructors and input readers.
//
// Shape policy:
//
//	Only the shape (square, non-negative size) and, for integer input, the
//	0/1 alphabet are enforced by default. Symmetry and a zero diagonal are the
//	caller's invariant; opt in with WithRequireSymmetric and
//	WithRequireZeroDiagonal.
//
// Undirected view:
//
//	The lower triangle (a[v][u] for u < v) is authoritative. Neighbors,
//	Degree, Edges and EdgeCount all read it, which is exactly the part of the
//	matrix the coloring search consults. IsAdjacent returns the raw cell.
//
// Errors:
//
//	ErrBadShape        - negative size.
//	ErrNonSquare       - a row length differs from the row count.
//	ErrNonBinary       - integer cell outside {0,1}.
//	ErrOutOfRange      - vertex index outside [0, n).
//	ErrAsymmetry       - a[i][j] != a[j][i] under WithRequireSymmetric.
//	ErrNonZeroDiagonal - a[i][i] set under WithRequireZeroDiagonal.
//	ErrNilMatrix       - nil *Adjacency receiver or argument.
package matrix
