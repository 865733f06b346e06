// SPDX-License-Identifier: MIT
// Package: fourcolor/builder
//
// impl_wheel.go: implementation of Wheel(n) constructor.
//
// Canonical definition:
//   • Wₙ = Cₙ₋₁ + "Center": a rim cycle of size n-1 plus a hub.
//   • Therefore n ≥ 4 (the rim must be a valid cycle).
//
// Contract:
//   • Rim first (local indices 0..n-2, built by Cycle), hub last (n-1).
//   • Emits spokes hub-rim in rim order.
//
// Complexity: O(n).
// Coloring note: an odd rim (even n) forces 4 colors; W₆ is the smallest
// wheel that is not 3-colorable.

package builder

import "fmt"

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds a wheel Wₙ = Cₙ₋₁ + "Center".
func Wheel(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		rim := d.size()
		if err := Cycle(n-1)(d, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}
		hub := d.addVertex(centerVertexID)
		for i := 0; i < n-1; i++ {
			if err := d.addEdge(hub, rim+i); err != nil {
				return fmt.Errorf("%s: %w", methodWheel, err)
			}
		}

		return nil
	}
}
