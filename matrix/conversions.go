// SPDX-License-Identifier: MIT

// Package matrix: conversions to plain Go values for I/O adapters.
package matrix

// Ints returns the matrix as 0/1 integer rows (deep copy).
// Complexity: O(n²).
func (a *Adjacency) Ints() [][]int {
	n := a.Size()
	out := make([][]int, n)
	for i := 0; i < n; i++ {
		out[i] = make([]int, n)
		for j := 0; j < n; j++ {
			if a.bits[a.indexOf(i, j)] {
				out[i][j] = 1
			}
		}
	}

	return out
}

// Induced returns the subgraph induced by the given vertices, relabeled
// 0..len(vs)-1 in the order given.
//
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: O(k²) for k = len(vs).
func (a *Adjacency) Induced(vs []int) (*Adjacency, error) {
	if a == nil {
		return nil, validatorErrorf("Induced", ErrNilMatrix)
	}
	k := len(vs)
	for _, v := range vs {
		if !a.inRange(v) {
			return nil, validatorErrorf("Induced", ErrOutOfRange)
		}
	}
	out := &Adjacency{n: k, bits: make([]bool, k*k)}
	for i, u := range vs {
		for j, v := range vs {
			out.bits[i*k+j] = a.bits[a.indexOf(u, v)]
		}
	}

	return out, nil
}
