// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All constructors and queries MUST return these sentinels and tests
// MUST check them via errors.Is. No public method panics on user input.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Context is attached at the call site with
// fmt.Errorf("Op: ...: %w", ErrX); callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> alphabet -> index -> symmetry -> diagonal.

var (
	// ErrBadShape is returned when a requested size is negative.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNonSquare signals that a row length differs from the number of rows.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNonBinary signals an integer cell outside {0,1}.
	ErrNonBinary = errors.New("matrix: cell is not 0 or 1")

	// ErrOutOfRange indicates that a vertex index is outside [0, n).
	// Public indexers MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrAsymmetry signals a[i][j] != a[j][i] when symmetry is required.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

	// ErrNonZeroDiagonal signals a self-loop when a zero diagonal is required.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")

	// ErrNilMatrix indicates that a nil *Adjacency was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
