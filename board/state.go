package board

import (
	"sort"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/samber/lo"
)

// State is one node of the search tree: a partially filled board over a
// fixed Topology and Catalog.
//
// States are copy-on-transition: First and Next return fresh, fully
// independent copies, and a State is never mutated after being handed out.
// Slots fill in index order; slot filled-1 is always the most recent move.
//
// Invariants maintained across every transition:
//   - the used-name set equals the names in non-empty slots;
//   - the filled count equals the number of non-empty slots and the index
//     of the next free slot.
type State struct {
	topo    *Topology
	catalog Catalog // shared, read-only
	filled  int
	cursor  int // catalog index where the next unused-tile scan resumes
	slots   []*PlacedTile
	used    *hashset.Set // tile names currently on the board
}

// NewState returns an empty board over topo and catalog.
// The catalog must hold at least as many tiles as the board has slots, so a
// full board is reachable. Returns ErrTopologyNil or ErrCatalogTooSmall.
func NewState(topo *Topology, catalog Catalog) (*State, error) {
	if topo == nil {
		return nil, ErrTopologyNil
	}
	if len(catalog) < topo.Slots() {
		return nil, ErrCatalogTooSmall
	}

	return &State{
		topo:    topo,
		catalog: catalog,
		slots:   make([]*PlacedTile, topo.Slots()),
		used:    hashset.New(),
	}, nil
}

// Clone returns an independent deep copy: placements and the used-name set
// are copied, topology and catalog are shared read-only.
// Complexity: O(S) time and memory.
func (s *State) Clone() *State {
	c := &State{
		topo:    s.topo,
		catalog: s.catalog,
		filled:  s.filled,
		cursor:  s.cursor,
		slots:   make([]*PlacedTile, len(s.slots)),
		used:    hashset.New(s.used.Values()...),
	}
	var p *PlacedTile
	for i := range s.slots {
		if p = s.slots[i]; p != nil {
			cp := *p // copies the tile and its edge array
			c.slots[i] = &cp
		}
	}

	return c
}

// drawNext scans the catalog from the current cursor for the first tile not
// already on the board, leaving the cursor on its index. Reports ok=false
// when the remaining deck is exhausted.
func (s *State) drawNext() (Tile, bool) {
	for i := s.cursor; i < len(s.catalog); i++ {
		if !s.used.Contains(s.catalog[i].Name) {
			s.cursor = i

			return s.catalog[i], true
		}
	}

	return Tile{}, false
}

// placeNext draws the next unused tile and places it in the next free slot
// at rotation 0. Reports false when the board is full or the deck exhausted.
func (s *State) placeNext() bool {
	if s.filled == len(s.slots) {
		return false
	}
	t, ok := s.drawNext()
	if !ok {
		return false
	}
	p := &PlacedTile{Tile: t, Slot: s.filled}
	s.slots[p.Slot] = p
	s.used.Add(t.Name)
	s.filled++

	return true
}

// replace swaps the tile held by placement p for the next unused catalog
// tile, continuing the deck scan from the current cursor so tiles already
// tried in this slot are skipped. Rotation resets to 0; the slot keeps its
// assignment. Reports false when the deck is exhausted.
func (s *State) replace(p *PlacedTile) bool {
	// Draw before touching the used set: the outgoing tile must still be
	// marked used, or the scan would hand the same tile straight back.
	t, ok := s.drawNext()
	if !ok {
		return false
	}
	s.used.Remove(p.Tile.Name)
	s.used.Add(t.Name)
	p.Tile = t
	p.Rotation = 0

	return true
}

// First derives the first child state: a copy with the first unused catalog
// tile (deck scan restarting at 0) placed in the next free slot at rotation
// 0. Returns nil when the board is already full or no tile remains — this
// state has no children.
func (s *State) First() *State {
	c := s.Clone()
	c.cursor = 0
	if !c.placeNext() {
		return nil
	}

	return c
}

// Next derives the following sibling of this state: a copy in which the most
// recently placed tile is advanced one move — rotated another 120° if an
// orientation remains, otherwise swapped for the next unused catalog tile.
// Returns nil when rotations and deck are both exhausted — the branch is
// fully explored. Calling Next on an empty board returns nil.
func (s *State) Next() *State {
	if s.filled == 0 {
		return nil
	}
	c := s.Clone()
	p := c.slots[c.filled-1]
	if p.Rotate() {
		return c
	}
	if !c.replace(p) {
		return nil
	}

	return c
}

// Satisfied reports whether every registered adjacency holds on this board.
// A pair with an empty side is treated as satisfied when partialOK is true
// (empty slots are ignored) and as a violation otherwise; a pair with both
// sides filled must match the head/body rule. With partialOK=false, true
// means the board is a complete solution.
// Complexity: O(A).
func (s *State) Satisfied(partialOK bool) bool {
	var a, b *PlacedTile
	for _, adj := range s.topo.adj {
		a, b = s.slots[adj.A], s.slots[adj.B]
		if a == nil || b == nil {
			if partialOK {
				continue
			}

			return false
		}
		if !a.Matches(b, s.topo) {
			return false
		}
	}

	return true
}

// Filled returns the number of occupied slots, which is also the index of
// the next slot to fill.
func (s *State) Filled() int { return s.filled }

// At returns a copy of the placement at slot, or nil if the slot is empty
// or out of range. Mutating the copy does not affect the state.
func (s *State) At(slot int) *PlacedTile {
	if slot < 0 || slot >= len(s.slots) || s.slots[slot] == nil {
		return nil
	}
	cp := *s.slots[slot]

	return &cp
}

// Names returns the tile names in the topology's print order; empty slots
// yield "". On a complete board this is the reported solution row.
func (s *State) Names() []string {
	return lo.Map(s.topo.printOrder, func(slot int, _ int) string {
		if p := s.slots[slot]; p != nil {
			return p.Tile.Name
		}

		return ""
	})
}

// UsedNames returns the names currently on the board, sorted. Primarily a
// diagnostics and test hook for the used-set invariant.
func (s *State) UsedNames() []string {
	vals := s.used.Values()
	names := make([]string, 0, len(vals))
	for _, v := range vals {
		names = append(names, v.(string))
	}
	sort.Strings(names)

	return names
}
