// SPDX-License-Identifier: MIT
// Package: fourcolor/builder
//
// impl_cycle.go: implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits i-(i+1) for i = 0..n-2, then the closing edge (n-1)-0.
//
// Complexity: O(n).
// Coloring note: even cycles are 2-colorable, odd cycles need 3.

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		base := d.addVertices(n, cfg.idFn)
		for i := 0; i < n; i++ {
			if err := d.addEdge(base+i, base+(i+1)%n); err != nil {
				return fmt.Errorf("%s: %w", methodCycle, err)
			}
		}

		return nil
	}
}
