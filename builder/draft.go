// SPDX-License-Identifier: MIT
// Package: fourcolor/builder
//
// draft.go: the mutable graph under construction.
//
// A draft only grows: vertices are appended, edges are added once. It is
// frozen into an immutable *matrix.Adjacency by BuildLabeled.

package builder

import "fmt"

// draft accumulates vertices (by label) and undirected edges.
type draft struct {
	labels []string
	edges  [][2]int
	seen   map[[2]int]struct{}
}

func newDraft() *draft {
	return &draft{seen: make(map[[2]int]struct{})}
}

// size returns the number of vertices allocated so far.
func (d *draft) size() int { return len(d.labels) }

// addVertex appends a vertex and returns its index.
func (d *draft) addVertex(label string) int {
	d.labels = append(d.labels, label)

	return len(d.labels) - 1
}

// addVertices appends k vertices labeled by idFn of their absolute index
// and returns the index of the first one.
func (d *draft) addVertices(k int, idFn IDFn) int {
	base := d.size()
	for i := 0; i < k; i++ {
		d.addVertex(idFn(base + i))
	}

	return base
}

// addEdge records the undirected edge {u,v}. Duplicates are ignored.
func (d *draft) addEdge(u, v int) error {
	if u < 0 || v < 0 || u >= d.size() || v >= d.size() || u == v {
		return fmt.Errorf("addEdge(%d,%d) with %d vertices: %w", u, v, d.size(), ErrVertexRange)
	}
	if u > v {
		u, v = v, u
	}
	key := [2]int{u, v}
	if _, dup := d.seen[key]; dup {
		return nil
	}
	d.seen[key] = struct{}{}
	d.edges = append(d.edges, key)

	return nil
}
