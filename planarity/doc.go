// Package planarity is a cheap, sound pre-filter that can prove a graph
// non-planar before a coloring search is attempted.
//
// Every planar graph is 4-colorable, so a caller may refuse to search a
// graph that is certainly not planar. The converse does not hold: Check
// never claims planarity, it reports MaybePlanar when no bound is violated.
//
// Method:
//
//  1. Take the undirected simple view (lower triangle, loops dropped).
//  2. Reduce: delete vertices of degree ≤ 1 and smooth degree-2 vertices
//     (replace u–v–w by u–w, or drop v when u–w already exists). The result
//     is a minor of the input, so if it is non-planar so is the input.
//  3. Per connected component with V ≥ 3 apply Euler's bounds:
//     E ≤ 3V − 6, and E ≤ 2V − 4 when the component has no triangle.
//
// K5 fails the first bound, K3,3 the second, and any subdivision of either
// is reduced back to them by step 2.
//
// Limitation: this is not a full planarity test. Non-planar graphs that
// satisfy both bounds after reduction are reported MaybePlanar and pass the
// gate. The Petersen graph (V=10, E=15, no triangle, bound 16) is the
// smallest well-known example; it contains a K3,3 minor that only edge
// contraction would expose.
//
// Complexity: O(V² + V·E) time, O(V + E) memory.
package planarity
