// SPDX-License-Identifier: MIT
// Package: fourcolor/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w` ("Cycle: n=2 < min=3: %w").
//   • Constructors MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols, side
// sizes) is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1] (RandomSparse).
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor needs an RNG
// (WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrOptionViolation indicates an unknown enumerated parameter (e.g. an
// unknown PlatonicName).
var ErrOptionViolation = errors.New("builder: invalid option value")

// ErrVertexRange indicates that Connect referenced a vertex that does not
// exist yet, or asked for a self-loop.
var ErrVertexRange = errors.New("builder: vertex out of range")

// ErrConstructFailed indicates an internal construction failure (nil
// constructor, missing dataset, or the final matrix was rejected).
var ErrConstructFailed = errors.New("builder: construction failed")
