// SPDX-License-Identifier: MIT
package coloring

import (
	"context"
	"fmt"
	"time"

	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/katalvlaran/fourcolor/matrix"
)

// unassigned marks a vertex without a color in the search buffer.
const unassigned = -1

// pollMask sets the polling period: one check per 4096 node events.
const pollMask = 4095

// engine holds all hot search state. One engine per Solve call.
type engine struct {
	n int // vertices
	k int // palette size

	// Lower triangle prefetched into a dense buffer: adj[v*n+i], i < v.
	adj []bool

	// Assignment buffer: palette index per vertex or unassigned.
	colors []int

	stats Stats

	// Abort policy
	ctx         context.Context
	useDeadline bool
	deadline    time.Time
	steps       int
}

// newEngine prefetches g and resets the assignment to unassigned.
func newEngine(g *matrix.Adjacency, k int, o Options) *engine {
	n := g.Size()
	e := &engine{
		n:      n,
		k:      k,
		adj:    make([]bool, n*n),
		colors: make([]int, n),
		ctx:    o.Ctx,
	}
	for v, row := range g.Rows() {
		copy(e.adj[v*n:v*n+v], row[:v])
	}
	for v := range e.colors {
		e.colors[v] = unassigned
	}
	if o.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(o.TimeLimit)
	}

	return e
}

// admissible reports whether color c on v clashes with no earlier neighbor.
// Stops at the first conflict.
func (e *engine) admissible(v, c int) bool {
	row := e.adj[v*e.n : v*e.n+v]
	for i, linked := range row {
		if linked && e.colors[i] == c {
			return false
		}
	}

	return true
}

// place assigns c to v and updates the counters.
func (e *engine) place(v, c int) {
	e.colors[v] = c
	e.stats.Assignments++
	if v+1 > e.stats.MaxDepth {
		e.stats.MaxDepth = v + 1
	}
}

// revert undoes the assignment of v after its subtree failed.
func (e *engine) revert(v int) {
	e.colors[v] = unassigned
	e.stats.Backtracks++
}

// poll performs a sparse abort test.
func (e *engine) poll() error {
	if e.ctx == nil && !e.useDeadline {
		return nil
	}
	e.steps++
	if e.steps&pollMask != 0 {
		return nil
	}

	return e.check()
}

// check tests the context and the deadline right now.
func (e *engine) check() error {
	if e.ctx != nil {
		if err := e.ctx.Err(); err != nil {
			return fmt.Errorf("Solve: %w: %w", ErrCanceled, err)
		}
	}
	if e.useDeadline && time.Now().After(e.deadline) {
		return fmt.Errorf("Solve: %w", ErrTimeLimit)
	}

	return nil
}

// recurse colors vertices v..n-1; true means every vertex is colored.
func (e *engine) recurse(v int) (bool, error) {
	if v == e.n {
		return true, nil
	}
	if err := e.poll(); err != nil {
		return false, err
	}

	for c := 0; c < e.k; c++ {
		e.stats.Nodes++
		if !e.admissible(v, c) {
			continue
		}
		e.place(v, c)
		ok, err := e.recurse(v + 1)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
		e.revert(v)
	}

	return false, nil
}

// frame is one level of the iterative search: the vertex and the next
// palette index to try.
type frame struct {
	v    int
	next int
}

// iterate walks the same tree as recurse with an explicit stack.
func (e *engine) iterate() (bool, error) {
	stack := arraystack.New()
	stack.Push(&frame{v: 0})

	for !stack.Empty() {
		top, _ := stack.Peek()
		f := top.(*frame)
		if f.v == e.n {
			return true, nil
		}
		if f.next == 0 {
			if err := e.poll(); err != nil {
				return false, err
			}
		}
		// Back from a failed child.
		if e.colors[f.v] != unassigned {
			e.revert(f.v)
		}

		descended := false
		for f.next < e.k {
			c := f.next
			f.next++
			e.stats.Nodes++
			if !e.admissible(f.v, c) {
				continue
			}
			e.place(f.v, c)
			stack.Push(&frame{v: f.v + 1})
			descended = true

			break
		}
		if !descended {
			stack.Pop()
		}
	}

	return false, nil
}
