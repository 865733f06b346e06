// SPDX-License-Identifier: MIT
// Package: fourcolor/builder
//
// impl_star.go: implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • The hub comes first (local index 0, label "Center"); leaves follow
//     labeled by cfg.idFn.
//   • Emits hub-leaf spokes in leaf order.
//
// Complexity: O(n).

package builder

import "fmt"

const (
	methodStar     = "Star"
	minStarNodes   = 2
	centerVertexID = "Center"
)

// Star returns a Constructor that builds the star K_{1,n-1}.
func Star(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		hub := d.addVertex(centerVertexID)
		first := d.addVertices(n-1, cfg.idFn)
		for i := 0; i < n-1; i++ {
			if err := d.addEdge(hub, first+i); err != nil {
				return fmt.Errorf("%s: %w", methodStar, err)
			}
		}

		return nil
	}
}
