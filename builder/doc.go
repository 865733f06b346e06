// Package builder provides deterministic graph fixtures for the coloring
// search, emitted as *matrix.Adjacency values.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – Build(opts, cons...):        run constructors, return the adjacency.
//     – BuildLabeled(opts, cons...): the same plus one label per vertex.
//   - Topology constructors (Constructor):
//     – Complete, Cycle, Path, Star, Wheel, Grid, CompleteBipartite,
//     PlatonicSolid, RandomSparse, Isolated, Connect.
//   - Configuration primitives:
//     – BuilderOption:   mutates builderConfig before use.
//     – builderConfig:   RNG, label scheme, bipartite prefixes.
//   - Label schemes (IDFn): DefaultIDFn, ExcelColumnIDFn, SymbolNumberIDFn.
//
// Composition:
//
//	Every constructor appends its vertices after the ones already present, so
//	Build(nil, Cycle(3), Complete(4)) is the disjoint union C3 + K4 with K4 on
//	vertices 3..6. Connect adds edges between existing vertices by absolute
//	index and is how fixtures are glued together.
//
// Guarantees:
//
//   - Determinism: the same constructors, order, and seed give the same matrix.
//   - Symmetric output with a zero diagonal; duplicate edges are idempotent.
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     constructors themselves return sentinel errors.
package builder
