// SPDX-License-Identifier: MIT
// Package: fourcolor/builder
//
// impl_glue.go: Isolated(k) and Connect(pairs...) constructors.
//
// These two let callers assemble fixtures the topology constructors do not
// cover: subdivisions, bridges between components, hand-drawn maps.
//
// Contract:
//   • Isolated: k ≥ 1 (else ErrTooFewVertices); appends k edge-free vertices.
//   • Connect: every endpoint must already exist and u != v
//     (else ErrVertexRange); indices are absolute. Duplicates are idempotent.

package builder

import "fmt"

const (
	methodIsolated = "Isolated"
	methodConnect  = "Connect"
)

// Isolated returns a Constructor that appends k vertices without edges.
func Isolated(k int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if k < 1 {
			return fmt.Errorf("%s: k=%d < min=1: %w", methodIsolated, k, ErrTooFewVertices)
		}
		d.addVertices(k, cfg.idFn)

		return nil
	}
}

// Connect returns a Constructor that adds the given undirected edges
// between existing vertices.
func Connect(pairs ...[2]int) Constructor {
	return func(d *draft, _ builderConfig) error {
		for _, p := range pairs {
			if err := d.addEdge(p[0], p[1]); err != nil {
				return fmt.Errorf("%s: %w", methodConnect, err)
			}
		}

		return nil
	}
}
