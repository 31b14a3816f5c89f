package solver

import (
	"errors"
	"fmt"

	"github.com/lvkoski/kolmio/board"
)

// walker encapsulates one search run: fixed options plus the accumulating
// result. A dedicated struct keeps the hot recursion free of repeated
// option plumbing.
type walker struct {
	opts Options
	res  *Result
}

// Solve enumerates all valid complete arrangements of catalog on topo.
//
// The traversal is depth-first and deterministic: children are derived in
// catalog order, siblings in rotation-then-replacement order, so repeated
// runs over the same inputs yield the same Result in the same order.
//
// Returns the (possibly partial) Result together with the first error from
// the context or the OnSolution hook; board construction errors are passed
// through unchanged. Reaching the WithMaxSolutions cap is a normal stop,
// not an error.
//
// Complexity: bounded by slots × catalog × 3 rotations per level; the prune
// step cuts the vast majority of branches in practice.
func Solve(topo *board.Topology, catalog board.Catalog, opts ...Option) (*Result, error) {
	// 1. Apply options.
	sopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&sopts)
	}

	// 2. Build the empty root state; input validation lives in board.
	root, err := board.NewState(topo, catalog)
	if err != nil {
		return nil, err
	}

	// 3. Recurse. The solution cap surfaces as an internal sentinel.
	w := &walker{opts: sopts, res: &Result{}}
	if err = w.visit(root); err != nil && !errors.Is(err, errSolutionLimit) {
		return w.res, err
	}

	return w.res, nil
}

// visit handles one search-tree node: prune, report, expand.
func (w *walker) visit(s *board.State) error {
	// 1. Cancellation check.
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}
	w.res.Visited++

	// 2. Prune: an already-violated partial board cannot be completed;
	// abandon it together with its whole subtree.
	if !s.Satisfied(true) {
		w.res.Pruned++

		return nil
	}

	// 3. Report a complete valid board, then keep searching: later
	// rotations and replacements of the last tile may yield more.
	if s.Satisfied(false) {
		if err := w.report(s); err != nil {
			return err
		}
	}

	// 4. Expand: first child places a fresh tile; each sibling advances the
	// last-placed tile one move. Note siblings derive from the previous
	// child, not from s, so the deck cursor carries forward.
	for child := s.First(); child != nil; child = child.Next() {
		if err := w.visit(child); err != nil {
			return err
		}
	}

	return nil
}

// report records s as a solution and feeds the hook, enforcing the cap.
func (w *walker) report(s *board.State) error {
	sol := Solution{Names: s.Names()}
	w.res.Solutions = append(w.res.Solutions, sol)
	if w.opts.OnSolution != nil {
		if err := w.opts.OnSolution(sol); err != nil {
			return fmt.Errorf("solver: OnSolution hook: %w", err)
		}
	}
	if w.opts.MaxSolutions > 0 && len(w.res.Solutions) >= w.opts.MaxSolutions {
		return errSolutionLimit
	}

	return nil
}
