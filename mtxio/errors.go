// SPDX-License-Identifier: MIT
package mtxio

import "errors"

var (
	// ErrEmptyInput: no non-blank row was found.
	ErrEmptyInput = errors.New("mtxio: empty input")

	// ErrBadToken: a cell is not "0" or "1".
	ErrBadToken = errors.New("mtxio: cell must be 0 or 1")

	// ErrRowLength: a row does not hold n cells.
	ErrRowLength = errors.New("mtxio: wrong row length")

	// ErrRowCount: the number of rows differs from n.
	ErrRowCount = errors.New("mtxio: wrong number of rows")

	// ErrTooManyVertices: n exceeds WithMaxVertices.
	ErrTooManyVertices = errors.New("mtxio: too many vertices")
)
