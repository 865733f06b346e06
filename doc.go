// Package fourcolor colors graphs given as 0/1 adjacency matrices with a
// small fixed palette, four colors by default, using a plain depth-first
// backtracking search.
//
// What is in the box?
//
//	matrix/       : the immutable adjacency matrix and its validators
//	coloring/     : the backtracking search (recursive and iterative), palettes, Verify
//	planarity/    : a cheap Euler-bound pre-filter that can prove non-planarity
//	builder/      : graph fixtures: complete, cycle, wheel, grid, platonic solids, ...
//	mtxio/        : reading matrices from files and terminals, writing them back
//	render/       : DOT and SVG drawings of a colored graph
//	satcheck/     : an independent SAT verdict for cross-checking the search
//	pipeline/     : gate → search → verify → cross-check, with logs and metrics
//	api/          : the HTTP service
//	cmd/fourcolor/: the command-line program
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    3───2
//
// The square above is colored red, green, red, green: vertex 0 takes the
// first color, vertex 1 the first color not used by a neighbour, and so on.
// A graph that needs more colors than the palette holds is reported as
// infeasible, which is an ordinary result and not an error.
//
//	go run ./cmd/fourcolor -input matrix.txt
package fourcolor
