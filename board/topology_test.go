package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvkoski/kolmio/board"
)

// pairTopology builds the smallest interesting board: two slots sharing one
// edge, compared at local index 2 on the first side and 0 on the second.
func pairTopology(t *testing.T) *board.Topology {
	t.Helper()
	topo, err := board.NewTopology(
		2,
		[]board.Adjacency{{A: 0, B: 1, EdgeA: 2, EdgeB: 0}},
		[]int{0, 1},
	)
	require.NoError(t, err)

	return topo
}

func TestNewTopology_Valid(t *testing.T) {
	topo := pairTopology(t)
	assert.Equal(t, 2, topo.Slots())
	assert.Equal(t, []int{0, 1}, topo.PrintOrder())

	adj := topo.Adjacencies()
	require.Len(t, adj, 1)
	assert.Equal(t, board.Adjacency{A: 0, B: 1, EdgeA: 2, EdgeB: 0}, adj[0])
}

func TestNewTopology_Errors(t *testing.T) {
	valid := []board.Adjacency{{A: 0, B: 1, EdgeA: 0, EdgeB: 0}}

	_, err := board.NewTopology(0, nil, nil)
	assert.ErrorIs(t, err, board.ErrNoSlots)

	_, err = board.NewTopology(2, []board.Adjacency{{A: 0, B: 2}}, []int{0, 1})
	assert.ErrorIs(t, err, board.ErrSlotRange)

	_, err = board.NewTopology(2, []board.Adjacency{{A: 1, B: 1}}, []int{0, 1})
	assert.ErrorIs(t, err, board.ErrSelfAdjacency)

	_, err = board.NewTopology(2, []board.Adjacency{{A: 0, B: 1, EdgeA: 3}}, []int{0, 1})
	assert.ErrorIs(t, err, board.ErrEdgeRange)

	_, err = board.NewTopology(2, []board.Adjacency{{A: 0, B: 1, EdgeB: -1}}, []int{0, 1})
	assert.ErrorIs(t, err, board.ErrEdgeRange)

	dup := []board.Adjacency{
		{A: 0, B: 1, EdgeA: 0, EdgeB: 0},
		{A: 1, B: 0, EdgeA: 1, EdgeB: 1},
	}
	_, err = board.NewTopology(2, dup, []int{0, 1})
	assert.ErrorIs(t, err, board.ErrDuplicateAdjacency)

	_, err = board.NewTopology(2, valid, []int{0})
	assert.ErrorIs(t, err, board.ErrBadPrintOrder)

	_, err = board.NewTopology(2, valid, []int{0, 0})
	assert.ErrorIs(t, err, board.ErrBadPrintOrder)

	_, err = board.NewTopology(2, valid, []int{0, 2})
	assert.ErrorIs(t, err, board.ErrBadPrintOrder)
}

func TestTopology_SharedEdge(t *testing.T) {
	topo := pairTopology(t)

	ea, eb, ok := topo.SharedEdge(0, 1)
	require.True(t, ok)
	assert.Equal(t, 2, ea)
	assert.Equal(t, 0, eb)

	// Registered order only: the reversed query does not resolve.
	_, _, ok = topo.SharedEdge(1, 0)
	assert.False(t, ok)

	// Unregistered pair.
	_, _, ok = topo.SharedEdge(0, 0)
	assert.False(t, ok)
}

func TestTopology_AccessorsReturnCopies(t *testing.T) {
	topo := pairTopology(t)

	po := topo.PrintOrder()
	po[0] = 99
	assert.Equal(t, []int{0, 1}, topo.PrintOrder(), "print order must be immutable")

	adj := topo.Adjacencies()
	adj[0].EdgeA = 99
	assert.Equal(t, 2, topo.Adjacencies()[0].EdgeA, "adjacencies must be immutable")
}

func TestNewTopology_CopiesInput(t *testing.T) {
	in := []board.Adjacency{{A: 0, B: 1, EdgeA: 1, EdgeB: 1}}
	order := []int{1, 0}
	topo, err := board.NewTopology(2, in, order)
	require.NoError(t, err)

	in[0].EdgeA = 0
	order[0] = 0
	assert.Equal(t, 1, topo.Adjacencies()[0].EdgeA)
	assert.Equal(t, []int{1, 0}, topo.PrintOrder())
}
