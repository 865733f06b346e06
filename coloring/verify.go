// SPDX-License-Identifier: MIT
package coloring

import (
	"fmt"

	"github.com/katalvlaran/fourcolor/matrix"
)

// Verify checks that colors is a proper coloring of g: one non-empty label
// per vertex, and distinct labels on every pair u != v where either a[u][v]
// or a[v][u] is set. Diagonal cells are ignored.
//
// Errors: ErrGraphNil, ErrLengthMismatch, ErrUnassigned, ErrConflict.
// Complexity: O(n²).
func Verify(g *matrix.Adjacency, colors []Color) error {
	if g == nil {
		return fmt.Errorf("Verify: %w", ErrGraphNil)
	}
	n := g.Size()
	if len(colors) != n {
		return fmt.Errorf("Verify: %d colors for %d vertices: %w", len(colors), n, ErrLengthMismatch)
	}
	for v, c := range colors {
		if c == "" {
			return fmt.Errorf("Verify: vertex %d: %w", v, ErrUnassigned)
		}
	}

	rows := g.Rows()
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if (rows[u][v] || rows[v][u]) && colors[u] == colors[v] {
				return fmt.Errorf("Verify: vertices %d and %d both %q: %w", u, v, colors[u], ErrConflict)
			}
		}
	}

	return nil
}
