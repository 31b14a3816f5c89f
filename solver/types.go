// Package solver types and options for exhaustive backtracking search.
package solver

import (
	"context"
	"errors"
	"strings"
)

// errSolutionLimit aborts the recursion once WithMaxSolutions is reached.
// Internal control flow only; Solve never returns it.
var errSolutionLimit = errors.New("solver: solution limit reached")

// Option configures optional behavior of Solve.
type Option func(*Options)

// Options holds configurable parameters for a search run.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context aborts the search with ctx.Err().
	Ctx context.Context

	// OnSolution, if non-nil, is invoked for each solution as it is
	// discovered, before the search continues. Returning an error aborts
	// the run with that error (wrapped).
	OnSolution func(Solution) error

	// MaxSolutions, if positive, stops the search after that many solutions.
	// Zero means run to exhaustion.
	MaxSolutions int
}

// DefaultOptions returns Options with a background context, no hook, and no
// solution cap.
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		OnSolution:   nil,
		MaxSolutions: 0,
	}
}

// WithContext returns an Option that sets the context for the run.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnSolution returns an Option that installs fn as the per-solution hook.
func WithOnSolution(fn func(Solution) error) Option {
	return func(o *Options) {
		o.OnSolution = fn
	}
}

// WithMaxSolutions returns an Option that stops the search after n solutions.
// Non-positive n means no cap.
func WithMaxSolutions(n int) Option {
	return func(o *Options) {
		o.MaxSolutions = n
	}
}

// Solution is one complete valid arrangement: tile names listed in the
// topology's print order.
type Solution struct {
	Names []string
}

// String renders the solution as a bracketed, comma-separated row,
// e.g. "[P9,P7,P2,P1,P8,P6,P5,P4,P3]".
func (s Solution) String() string {
	return "[" + strings.Join(s.Names, ",") + "]"
}

// Result captures the outcome of a search run.
type Result struct {
	// Solutions holds every reported solution in discovery order.
	Solutions []Solution

	// Visited counts search-tree nodes examined (including pruned ones).
	Visited int

	// Pruned counts nodes rejected by the partial-validity check, each
	// cutting its entire subtree.
	Pruned int
}
