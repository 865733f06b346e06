// Package coloring decides whether a graph can be vertex-colored with the
// labels of a palette so that no two adjacent vertices share a label, and
// returns the first valid assignment found.
//
// What:
//
//   - Solve runs a depth-first backtracking search over vertices 0..n-1 in
//     index order. For vertex v each palette color is tried in palette order;
//     a color is admissible when no earlier vertex i < v with
//     adjacency[v][i] set already carries it. The first admissible color is
//     assigned and the search descends; a failed subtree reverts v to
//     unassigned and the next color is tried. Exhausting every color at the
//     root yields an infeasible Result (not an error).
//   - Verify checks any assignment against the full matrix.
//
// Why:
//
//   - The result is deterministic: the same matrix and palette always give
//     the same assignment and the same Stats.
//   - Only the lower triangle is read. Symmetry and a zero diagonal are the
//     caller's invariant (see matrix.WithRequireSymmetric).
//
// Strategies:
//
//	Recursive  - direct recursion, call depth n (default).
//	Iterative  - explicit frame stack; identical branch order, Result and Stats.
//
// Cancellation:
//
//	Without WithContext or WithTimeLimit the search runs to completion.
//	With them the search polls sparsely (every 4096 node events) and aborts
//	with ErrCanceled or ErrTimeLimit.
//
// Complexity:
//
//   - Time: O(K^n · n) worst case.
//   - Memory: O(n²) for the prefetched triangle, O(n) for the assignment.
package coloring
