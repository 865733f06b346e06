// SPDX-License-Identifier: MIT
// Package: fourcolor/builder
//
// impl_complete.go: implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Adds n vertices labeled by cfg.idFn.
//   • Emits every pair {i,j}, i<j, in lexicographic order.
//
// Complexity: O(n) vertices + O(n²) edges.
// Coloring note: χ(K_n) = n, the tight boundary for palette size.

package builder

import "fmt"

const (
	methodComplete = "Complete"
	minCompleteN   = 1
)

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minCompleteN {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteN, ErrTooFewVertices)
		}
		base := d.addVertices(n, cfg.idFn)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := d.addEdge(base+i, base+j); err != nil {
					return fmt.Errorf("%s: %w", methodComplete, err)
				}
			}
		}

		return nil
	}
}
