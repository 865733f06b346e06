// SPDX-License-Identifier: MIT
package planarity

import (
	"fmt"
	"sort"

	"github.com/emirpasic/gods/queues/arrayqueue"
	"github.com/emirpasic/gods/sets/treeset"

	"github.com/katalvlaran/fourcolor/matrix"
)

// reducer holds the shrinking simple graph. Neighbor sets are ordered so
// that every pass is deterministic.
type reducer struct {
	alive []bool
	nbr   []*treeset.Set // nbr[v] = neighbors of v (ints)
}

func newReducer(g *matrix.Adjacency) *reducer {
	n := g.Size()
	r := &reducer{alive: make([]bool, n), nbr: make([]*treeset.Set, n)}
	for v := 0; v < n; v++ {
		r.alive[v] = true
		r.nbr[v] = treeset.NewWithIntComparator()
	}
	for _, e := range g.Edges() {
		r.link(e[0], e[1])
	}

	return r
}

func (r *reducer) link(u, v int) {
	r.nbr[u].Add(v)
	r.nbr[v].Add(u)
}

func (r *reducer) linked(u, v int) bool {
	return r.nbr[u].Contains(v)
}

// drop removes v and returns its former neighbors.
func (r *reducer) drop(v int) []int {
	out := make([]int, 0, r.nbr[v].Size())
	for _, x := range r.nbr[v].Values() {
		u := x.(int)
		r.nbr[u].Remove(v)
		out = append(out, u)
	}
	r.nbr[v].Clear()
	r.alive[v] = false

	return out
}

// reduce peels degree ≤ 1 vertices and smooths degree-2 vertices until
// every remaining vertex has degree ≥ 3.
func (r *reducer) reduce() {
	queue := arrayqueue.New()
	for v := range r.alive {
		queue.Enqueue(v)
	}
	for !queue.Empty() {
		x, _ := queue.Dequeue()
		v := x.(int)
		if !r.alive[v] || r.nbr[v].Size() > 2 {
			continue
		}
		former := r.drop(v)
		if len(former) == 2 && !r.linked(former[0], former[1]) {
			r.link(former[0], former[1])
		}
		for _, u := range former {
			queue.Enqueue(u)
		}
	}
}

// components returns the alive components, each ascending, ordered by
// their smallest vertex.
func (r *reducer) components() [][]int {
	seen := make([]bool, len(r.alive))
	var out [][]int
	for s := range r.alive {
		if !r.alive[s] || seen[s] {
			continue
		}
		comp := []int{}
		queue := arrayqueue.New()
		queue.Enqueue(s)
		seen[s] = true
		for !queue.Empty() {
			x, _ := queue.Dequeue()
			v := x.(int)
			comp = append(comp, v)
			for _, y := range r.nbr[v].Values() {
				u := y.(int)
				if !seen[u] {
					seen[u] = true
					queue.Enqueue(u)
				}
			}
		}
		sort.Ints(comp)
		out = append(out, comp)
	}

	return out
}

// edgesAndTriangle counts the edges of comp and reports whether it holds
// a triangle.
func (r *reducer) edgesAndTriangle(comp []int) (int, bool) {
	deg := 0
	triangle := false
	for _, v := range comp {
		deg += r.nbr[v].Size()
		if triangle {
			continue
		}
		vals := r.nbr[v].Values()
		for i := 0; i < len(vals) && !triangle; i++ {
			for j := i + 1; j < len(vals); j++ {
				if r.linked(vals[i].(int), vals[j].(int)) {
					triangle = true

					break
				}
			}
		}
	}

	return deg / 2, triangle
}

// Check reports whether g is certainly non-planar.
//
// Errors: ErrGraphNil.
// Complexity: O(V² + V·E).
func Check(g *matrix.Adjacency) (Report, error) {
	if g == nil {
		return Report{}, fmt.Errorf("Check: %w", ErrGraphNil)
	}

	r := newReducer(g)
	r.reduce()

	total := Report{Verdict: MaybePlanar, Reason: ReasonNone}
	for _, comp := range r.components() {
		v := len(comp)
		e, triangle := r.edgesAndTriangle(comp)
		total.Vertices += v
		total.Edges += e
		if v < 3 {
			continue
		}
		if bound := 3*v - 6; e > bound {
			return Report{Verdict: NonPlanar, Reason: ReasonEulerBound, Component: comp, Vertices: v, Edges: e, Bound: bound}, nil
		}
		if bound := 2*v - 4; !triangle && e > bound {
			return Report{Verdict: NonPlanar, Reason: ReasonTriangleFreeBound, Component: comp, Vertices: v, Edges: e, Bound: bound}, nil
		}
	}

	return total, nil
}
