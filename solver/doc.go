// Package solver enumerates every valid arrangement of a tile catalog on a
// board topology by exhaustive depth-first backtracking with partial-validity
// pruning.
//
// What:
//
//   - Solve walks the tree of board.State nodes. At each node it applies
//     three steps in strict order:
//  1. Prune: a state whose filled adjacencies already violate the matching
//     rule is abandoned — no children, no report.
//  2. Report: a state that satisfies every adjacency with every slot filled
//     is recorded and, if installed, handed to the OnSolution hook.
//  3. Expand: the first child places a fresh tile in the next slot; each
//     following sibling advances the last-placed tile one move (rotate,
//     then replace) until the branch is exhausted.
//
// Why:
//   - The prune step is what makes the search tractable: any already-broken
//     partial board is cut with its whole subtree.
//   - Every recursive call owns a fresh State copy, so the search needs no
//     undo logic and no locking; the run is single-threaded and, over a
//     fixed catalog and topology, fully deterministic.
//
// Key Types & Options:
//
//   - Option / DefaultOptions: WithContext (cancellation), WithOnSolution
//     (eager per-solution hook), WithMaxSolutions (stop after N).
//   - Solution: tile names in the topology's print order; String renders
//     the bracketed comma-separated row.
//   - Result: solutions in discovery order plus Visited/Pruned diagnostics.
//
// Errors:
//
//   - board construction sentinels   invalid topology/catalog, passed through
//   - context.Canceled / DeadlineExceeded   run cancelled via WithContext
//   - hook errors                    propagated, wrapped, from OnSolution
//
// Deck exhaustion and rotation exhaustion are not errors; they are the
// ordinary ends of a branch.
package solver
