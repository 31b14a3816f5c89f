// Package megakolmio holds the classic nine-card triangular puzzle as
// compiled-in data: a large triangle of nine slots and a deck of nine cards
// whose edges carry fox/deer/raccoon head and body halves.
//
// Board slot numbering (slot 0 is the middle inverted triangle, filled
// first; seeding the middle rather than the apex makes early adjacency
// violations surface sooner):
//
//	                / \
//	               /   \
//	              /  6  \
//	             ---------
//	           / \       / \
//	          /   \  0  /   \
//	         /  2  \   /  1  \
//	        ------------------
//	      / \       / \       / \
//	     /   \  3  /   \  5  /   \
//	    /  7  \   /  4  \   /  8  \
//	   --------------------------------
//
// Local edge numbering: upward triangles count 0 (left), 1 (right), 2
// (bottom); downward triangles the same after the 180° flip, so a shared
// boundary carries the same index on both sides.
//
// Deck and Board return freshly built values on every call; callers may
// mutate what they receive without affecting later calls.
package megakolmio

import (
	"github.com/lvkoski/kolmio/board"
)

// Slots is the number of positions on the classic board.
const Slots = 9

// Deck returns the fixed nine-card catalog. Edge codes combine a category
// ('F' fox, 'D' deer, 'R' raccoon) with a role ('H' head, 'B' body).
func Deck() board.Catalog {
	c, err := board.NewCatalog(
		board.Tile{Name: "P1", Edges: [3]board.EdgeLabel{"FH", "FB", "DH"}},
		board.Tile{Name: "P2", Edges: [3]board.EdgeLabel{"DH", "FB", "RB"}},
		board.Tile{Name: "P3", Edges: [3]board.EdgeLabel{"DH", "FB", "FH"}},
		board.Tile{Name: "P4", Edges: [3]board.EdgeLabel{"DH", "DB", "FB"}},
		board.Tile{Name: "P5", Edges: [3]board.EdgeLabel{"DH", "RB", "DB"}},
		board.Tile{Name: "P6", Edges: [3]board.EdgeLabel{"RB", "FB", "RH"}},
		board.Tile{Name: "P7", Edges: [3]board.EdgeLabel{"FB", "RH", "FH"}},
		board.Tile{Name: "P8", Edges: [3]board.EdgeLabel{"RH", "DH", "RB"}},
		board.Tile{Name: "P9", Edges: [3]board.EdgeLabel{"FB", "DB", "DH"}},
	)
	if err != nil {
		panic("megakolmio: invalid deck data: " + err.Error())
	}

	return c
}

// Board returns the fixed nine-slot topology: the adjacency table keyed to
// the slot numbering above, and the top-to-bottom, left-to-right print
// order. Both sides of each boundary read the same local edge index.
func Board() *board.Topology {
	t, err := board.NewTopology(
		Slots,
		[]board.Adjacency{
			{A: 0, B: 1, EdgeA: 0, EdgeB: 0},
			{A: 0, B: 2, EdgeA: 1, EdgeB: 1},
			{A: 0, B: 6, EdgeA: 2, EdgeB: 2},
			{A: 1, B: 5, EdgeA: 2, EdgeB: 2},
			{A: 2, B: 3, EdgeA: 2, EdgeB: 2},
			{A: 3, B: 4, EdgeA: 0, EdgeB: 0},
			{A: 3, B: 7, EdgeA: 1, EdgeB: 1},
			{A: 4, B: 5, EdgeA: 1, EdgeB: 1},
			{A: 5, B: 8, EdgeA: 0, EdgeB: 0},
		},
		[]int{6, 2, 0, 1, 7, 3, 4, 5, 8},
	)
	if err != nil {
		panic("megakolmio: invalid board data: " + err.Error())
	}

	return t
}
