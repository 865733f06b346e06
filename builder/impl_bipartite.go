// SPDX-License-Identifier: MIT
// Package: fourcolor/builder
//
// impl_bipartite.go: implementation of CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left side first (labels leftPrefix+i), right side after (rightPrefix+j).
//   • Emits L_i-R_j for i asc, then j asc.
//
// Complexity: O(n1+n2) vertices + O(n1*n2) edges.
// Planarity note: K_{3,3} is the smallest triangle-free non-planar graph.

package builder

import (
	"fmt"
	"strconv"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartition            = 1
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n1 < minPartition || n2 < minPartition {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartition, ErrTooFewVertices)
		}
		left := d.size()
		for i := 0; i < n1; i++ {
			d.addVertex(cfg.leftPrefix + strconv.Itoa(i))
		}
		right := d.size()
		for j := 0; j < n2; j++ {
			d.addVertex(cfg.rightPrefix + strconv.Itoa(j))
		}
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if err := d.addEdge(left+i, right+j); err != nil {
					return fmt.Errorf("%s: %w", methodCompleteBipartite, err)
				}
			}
		}

		return nil
	}
}
