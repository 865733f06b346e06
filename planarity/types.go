// SPDX-License-Identifier: MIT
package planarity

import (
	"errors"
	"fmt"
)

// ErrGraphNil is returned when a nil *matrix.Adjacency is passed.
var ErrGraphNil = errors.New("planarity: graph is nil")

// Verdict is the outcome of Check.
type Verdict int

const (
	// MaybePlanar: no necessary condition is violated.
	MaybePlanar Verdict = iota
	// NonPlanar: the graph certainly has no planar embedding.
	NonPlanar
)

// String returns "maybe-planar" or "non-planar".
func (v Verdict) String() string {
	switch v {
	case MaybePlanar:
		return "maybe-planar"
	case NonPlanar:
		return "non-planar"
	default:
		return fmt.Sprintf("Verdict(%d)", int(v))
	}
}

// Reason names the violated bound.
type Reason int

const (
	// ReasonNone accompanies MaybePlanar.
	ReasonNone Reason = iota
	// ReasonEulerBound: E > 3V − 6.
	ReasonEulerBound
	// ReasonTriangleFreeBound: triangle-free and E > 2V − 4.
	ReasonTriangleFreeBound
)

// String returns a stable identifier for logs and JSON.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonEulerBound:
		return "euler-bound"
	case ReasonTriangleFreeBound:
		return "triangle-free-bound"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// Report explains a verdict.
//
// For NonPlanar, Component lists the original vertex indices (ascending) of
// the reduced component that broke the bound; Vertices and Edges are its
// reduced counts and Bound is the limit that Edges exceeded.
// For MaybePlanar, Component is nil, Vertices and Edges describe the whole
// reduced graph and Bound is 0.
type Report struct {
	Verdict   Verdict
	Reason    Reason
	Component []int
	Vertices  int
	Edges     int
	Bound     int
}
