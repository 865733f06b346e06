// SPDX-License-Identifier: MIT
// Package: fourcolor/builder
//
// impl_platonic.go: implementation of PlatonicSolid(name, withCenter).
//
// Contract:
//   • Unknown name → ErrOptionViolation.
//   • Shell vertices first (local 0..V-1, labeled by cfg.idFn), then the shell
//     edges in the order platonicShell assembles them.
//   • withCenter: append a hub "Center" (local index V) with spokes to every
//     shell vertex in index order.
//
// Complexity: O(V+E) per solid (constant-size datasets).

package builder

import "fmt"

const methodPlatonicSolid = "PlatonicSolid"

// PlatonicSolid returns a Constructor that builds the chosen Platonic shell,
// optionally stellated with a central hub.
func PlatonicSolid(name PlatonicName, withCenter bool) Constructor {
	return func(d *draft, cfg builderConfig) error {
		sh, ok := platonicShell(name)
		if !ok {
			return fmt.Errorf("%s: unknown solid %q: %w", methodPlatonicSolid, name, ErrOptionViolation)
		}
		n := sh.n

		base := d.addVertices(n, cfg.idFn)
		for _, e := range sh.edges {
			if err := d.addEdge(base+e[0], base+e[1]); err != nil {
				return fmt.Errorf("%s: %w", methodPlatonicSolid, err)
			}
		}

		if withCenter {
			hub := d.addVertex(centerVertexID)
			for i := 0; i < n; i++ {
				if err := d.addEdge(hub, base+i); err != nil {
					return fmt.Errorf("%s: %w", methodPlatonicSolid, err)
				}
			}
		}

		return nil
	}
}
