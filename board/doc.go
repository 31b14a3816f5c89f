// Package board models a triangular tile-matching puzzle: a fixed board of
// triangular slots, a catalog of three-edged tiles, and the copy-on-transition
// search state a solver drives through placement, rotation, and replacement
// moves.
//
// What:
//
//   - EdgeLabel: two-character edge code (category + role, e.g. "FH" for
//     fox-head). Two labels match when categories agree and roles differ —
//     a head must meet a body of the same animal.
//   - Tile: an immutable named tile with three edge labels in clockwise
//     order. Tiles are value types: every copy owns its edge array, so
//     rotating one placement can never disturb another.
//   - Catalog: the validated, ordered deck of distinct tiles.
//   - Topology: the validated, immutable adjacency table of the board —
//     which slot pairs share an edge, which local edge index each side
//     compares, and the order slots are printed in.
//   - PlacedTile: a tile bound to a slot with a 0/120/240° rotation.
//   - State: one node of the search tree. Transitions (First, Next) derive
//     fresh deep copies; a State handed to a caller is never mutated again.
//
// Why:
//   - Keep the search engine (package solver) free of puzzle bookkeeping:
//     everything it needs is Satisfied, First, and Next.
//   - Copy-on-transition trades a little allocation for zero aliasing bugs;
//     at nine slots and nine tiles the whole tree is tiny.
//
// Expected control-flow outcomes are booleans or nil, never errors:
// an exhausted deck, a fully rotated tile, and a comparison against an
// unplaced tile are all ordinary, designed branches of the search.
//
// Errors (construction only):
//
//   - ErrEmptyCatalog, ErrDuplicateTileName, ErrEmptyTileName,
//     ErrBadEdgeLabel                                         catalog input
//   - ErrNoSlots, ErrSlotRange, ErrSelfAdjacency, ErrEdgeRange,
//     ErrDuplicateAdjacency, ErrBadPrintOrder                 topology input
//   - ErrTopologyNil, ErrCatalogTooSmall                      state input
package board
