package board

// NoSlot marks a PlacedTile not (yet) bound to any board slot.
const NoSlot = -1

// Rotation angles of a triangular tile, in degrees.
const (
	// RotationStep is the angle of one clockwise rotation of a triangle.
	RotationStep = 120
	// fullTurn is the angle at which a tile is back in its starting orientation.
	fullTurn = 360
)

// PlacedTile binds a Tile to a board slot with a rotation state.
//
// Slot never changes once assigned; Rotation only advances in 120° steps and
// returns to 0 only when the tile itself is swapped for another. The embedded
// Tile is owned by value, so rotating this placement shifts a private copy of
// the edge labels and can never affect another placement of the same catalog
// tile.
type PlacedTile struct {
	Tile     Tile
	Rotation int
	Slot     int
}

// Rotate advances the tile one 120° step, cyclically shifting the edge
// labels so that each edge index now holds what its predecessor held.
// Reports false, without rotating, once all three orientations have been
// visited; the caller should swap the tile instead. Three successful
// rotations restore the original edge order.
// Complexity: O(1).
func (p *PlacedTile) Rotate() bool {
	if p.Rotation+RotationStep >= fullTurn {
		return false
	}
	p.Rotation += RotationStep
	// Shift clockwise: last edge label moves to the front.
	last := p.Tile.Edges[EdgeCount-1]
	copy(p.Tile.Edges[1:], p.Tile.Edges[:EdgeCount-1])
	p.Tile.Edges[0] = last

	return true
}

// Matches reports whether this placement fits other across their shared
// boundary in topo: the labels at each side's shared edge index must pair a
// head with a body of the same category. A placement without a slot, or a
// pair the topology does not register (in registered order), never matches.
// Pure predicate, no side effects.
// Complexity: O(1).
func (p *PlacedTile) Matches(other *PlacedTile, topo *Topology) bool {
	if p == nil || other == nil || topo == nil {
		return false
	}
	if p.Slot == NoSlot || other.Slot == NoSlot {
		return false
	}
	ea, eb, ok := topo.SharedEdge(p.Slot, other.Slot)
	if !ok {
		return false
	}

	return p.Tile.Edges[ea].Matches(other.Tile.Edges[eb])
}
