// SPDX-License-Identifier: MIT

// Package matrix: central validators for raw integer matrices.
//
// Purpose:
//   - Provide a single source of truth for shape and alphabet checks used by
//     constructors and input readers (mtxio).
//   - Return ONLY sentinel errors defined in errors.go, wrapped with a tag.
//   - Never panic on user input.
package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSquare checks that every row has len(rows) cells.
// An empty (or nil) matrix is square.
//
// Errors: ErrNonSquare.
// Complexity: O(n).
func ValidateSquare(rows [][]int) error {
	n := len(rows)
	for i := range rows {
		if len(rows[i]) != n {
			return validatorErrorf(fmt.Sprintf("ValidateSquare: row %d", i), ErrNonSquare)
		}
	}

	return nil
}

// ValidateBinary checks that every cell is 0 or 1.
//
// Errors: ErrNonBinary.
// Complexity: O(total cells).
func ValidateBinary(rows [][]int) error {
	for i := range rows {
		for j, x := range rows[i] {
			if x != 0 && x != 1 {
				return validatorErrorf(fmt.Sprintf("ValidateBinary: (%d,%d)=%d", i, j, x), ErrNonBinary)
			}
		}
	}

	return nil
}

// ValidateSymmetric checks a[i][j] == a[j][i] over the upper triangle.
// The matrix must already be square.
//
// Errors: ErrNonSquare, ErrAsymmetry.
// Complexity: O(n²).
func ValidateSymmetric(rows [][]int) error {
	if err := ValidateSquare(rows); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	n := len(rows)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rows[i][j] != rows[j][i] {
				return validatorErrorf(fmt.Sprintf("ValidateSymmetric: (%d,%d)", i, j), ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateZeroDiagonal checks that a[i][i] == 0 for all i.
//
// Errors: ErrNonSquare, ErrNonZeroDiagonal.
// Complexity: O(n).
func ValidateZeroDiagonal(rows [][]int) error {
	if err := ValidateSquare(rows); err != nil {
		return validatorErrorf("ValidateZeroDiagonal", err)
	}
	for i := range rows {
		if rows[i][i] != 0 {
			return validatorErrorf(fmt.Sprintf("ValidateZeroDiagonal: (%d,%d)", i, i), ErrNonZeroDiagonal)
		}
	}

	return nil
}
