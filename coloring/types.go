// SPDX-License-Identifier: MIT
package coloring

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Strategy selects how the depth-first search keeps its state.
type Strategy int

const (
	// Recursive uses direct recursion; call depth equals the vertex count.
	Recursive Strategy = iota
	// Iterative keeps (vertex, next color) frames on an explicit stack.
	Iterative
)

// String returns "recursive" or "iterative".
func (s Strategy) String() string {
	switch s {
	case Recursive:
		return "recursive"
	case Iterative:
		return "iterative"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps a case-insensitive name to a Strategy.
// The empty string selects Recursive.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "recursive":
		return Recursive, nil
	case "iterative":
		return Iterative, nil
	default:
		return 0, fmt.Errorf("ParseStrategy: %q: %w", name, ErrUnknownStrategy)
	}
}

// Stats are deterministic search counters. Both strategies produce
// identical values for the same input.
type Stats struct {
	// Nodes counts (vertex, color) candidates examined.
	Nodes int64
	// Assignments counts admissible colors placed on a vertex.
	Assignments int64
	// Backtracks counts assignments reverted after their subtree failed.
	Backtracks int64
	// MaxDepth is the largest number of simultaneously assigned vertices.
	MaxDepth int
}

// Result is the outcome of Solve.
//
// Feasible == true: Colors and Indices have length n (empty, non-nil for
// n = 0). Feasible == false: both are nil. The slices belong to the caller.
type Result struct {
	Feasible bool
	Colors   []Color
	Indices  []int
	Stats    Stats
}

// Outcome classifies a finished search for observers.
type Outcome string

const (
	OutcomeFeasible   Outcome = "feasible"
	OutcomeInfeasible Outcome = "infeasible"
	OutcomeAborted    Outcome = "aborted"
)

// SearchReport is delivered to the Observer after every search that started.
type SearchReport struct {
	Strategy Strategy
	Vertices int
	Colors   int
	Outcome  Outcome
	Stats    Stats
	Elapsed  time.Duration
	Err      error
}

// Observer receives a report after each search.
// Implementations must be safe for concurrent use when Solve is called
// concurrently with the same observer.
type Observer interface {
	ObserveSearch(SearchReport)
}

// Option configures Solve.
type Option func(*Options)

// Options holds the effective Solve configuration.
type Options struct {
	// Strategy selects the search state keeping; default Recursive.
	Strategy Strategy

	// Ctx, if non-nil, is polled between branch steps; its end aborts the
	// search with ErrCanceled.
	Ctx context.Context

	// TimeLimit > 0 aborts the search with ErrTimeLimit once exceeded.
	TimeLimit time.Duration

	// Logger receives debug events; default zap.NewNop().
	Logger *zap.Logger

	// Observer, if non-nil, receives a SearchReport.
	Observer Observer
}

// DefaultOptions returns Recursive, no context, no limit, a no-op logger.
func DefaultOptions() Options {
	return Options{
		Strategy: Recursive,
		Logger:   zap.NewNop(),
	}
}

// WithStrategy selects the search strategy.
// Unknown values are reported by Solve as ErrUnknownStrategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithContext makes the search cancellable through ctx.
// Panics on a nil context.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("coloring: WithContext(nil)")
	}

	return func(o *Options) { o.Ctx = ctx }
}

// WithTimeLimit bounds the search wall time. Zero disables the limit.
// Panics on a negative duration.
func WithTimeLimit(d time.Duration) Option {
	if d < 0 {
		panic("coloring: WithTimeLimit(d<0)")
	}

	return func(o *Options) { o.TimeLimit = d }
}

// WithLogger routes debug events to l. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithObserver registers an observer for SearchReports.
func WithObserver(obs Observer) Option {
	return func(o *Options) { o.Observer = obs }
}
