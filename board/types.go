// Package board core types and sentinel errors: edge labels, tiles, and the
// tile catalog. Board topology lives in topology.go, search state in state.go.
package board

import (
	"errors"
)

// Sentinel errors for board construction.
var (
	// ErrEmptyCatalog indicates a catalog with no tiles.
	ErrEmptyCatalog = errors.New("board: catalog must contain at least one tile")
	// ErrDuplicateTileName indicates two catalog tiles share a name.
	ErrDuplicateTileName = errors.New("board: catalog tile names must be unique")
	// ErrEmptyTileName indicates a catalog tile with no name.
	ErrEmptyTileName = errors.New("board: catalog tile must have a name")
	// ErrBadEdgeLabel indicates an edge label that is not a two-character code.
	ErrBadEdgeLabel = errors.New("board: edge label must be a two-character category+role code")

	// ErrNoSlots indicates a topology with no slots.
	ErrNoSlots = errors.New("board: topology must have at least one slot")
	// ErrSlotRange indicates a slot index outside [0, slots).
	ErrSlotRange = errors.New("board: slot index out of range")
	// ErrSelfAdjacency indicates an adjacency pairing a slot with itself.
	ErrSelfAdjacency = errors.New("board: adjacency must join two distinct slots")
	// ErrEdgeRange indicates a local edge index outside [0, 3).
	ErrEdgeRange = errors.New("board: edge index out of range")
	// ErrDuplicateAdjacency indicates the same slot pair registered twice.
	ErrDuplicateAdjacency = errors.New("board: adjacency registered twice for the same slot pair")
	// ErrBadPrintOrder indicates a print order that is not a permutation of all slots.
	ErrBadPrintOrder = errors.New("board: print order must be a permutation of all slots")

	// ErrTopologyNil indicates a nil *Topology passed to NewState.
	ErrTopologyNil = errors.New("board: topology is nil")
	// ErrCatalogTooSmall indicates a catalog with fewer tiles than the board has slots.
	ErrCatalogTooSmall = errors.New("board: catalog smaller than the board")
)

// EdgeCount is the number of edges of a triangular tile.
const EdgeCount = 3

// labelLen is the length of a well-formed edge label (category byte + role byte).
const labelLen = 2

// EdgeLabel is a two-character edge code: category then role.
// In the classic deck categories are 'F' (fox), 'D' (deer), 'R' (raccoon)
// and roles are 'H' (head), 'B' (body), but any bytes are admitted so long
// as the code is two characters.
type EdgeLabel string

// Category returns the first byte of the label (the animal).
func (l EdgeLabel) Category() byte { return l[0] }

// Role returns the second byte of the label (head or body).
func (l EdgeLabel) Role() byte { return l[1] }

// Valid reports whether the label is a well-formed two-character code.
func (l EdgeLabel) Valid() bool { return len(l) == labelLen }

// Matches reports whether two touching edges fit together: same category,
// different role (a head meets a body). Malformed labels never match.
// Complexity: O(1).
func (l EdgeLabel) Matches(o EdgeLabel) bool {
	if !l.Valid() || !o.Valid() {
		return false
	}

	return l.Category() == o.Category() && l.Role() != o.Role()
}

// Tile is a named triangular tile with three edge labels in clockwise order.
// Tile is a value type: assignment copies the edge array, so no two
// placements ever share edge storage.
type Tile struct {
	// Name identifies the tile within a catalog; unique per catalog.
	Name string
	// Edges holds the three edge labels in clockwise order.
	Edges [EdgeCount]EdgeLabel
}

// Catalog is the ordered deck of tiles a board is filled from.
// Construct with NewCatalog to guarantee unique names and valid labels.
type Catalog []Tile

// NewCatalog validates tiles and returns them as a Catalog.
// Returns ErrEmptyCatalog, ErrDuplicateTileName, or ErrBadEdgeLabel on bad input.
// The input slice is copied; callers keep ownership of theirs.
// Complexity: O(n) time and memory.
func NewCatalog(tiles ...Tile) (Catalog, error) {
	// 1. Must have at least one tile.
	if len(tiles) == 0 {
		return nil, ErrEmptyCatalog
	}

	// 2. Names unique and non-empty, labels well-formed.
	seen := make(map[string]struct{}, len(tiles))
	var t Tile
	for _, t = range tiles {
		if t.Name == "" {
			return nil, ErrEmptyTileName
		}
		if _, dup := seen[t.Name]; dup {
			return nil, ErrDuplicateTileName
		}
		seen[t.Name] = struct{}{}
		for _, l := range t.Edges {
			if !l.Valid() {
				return nil, ErrBadEdgeLabel
			}
		}
	}

	// 3. Defensive copy.
	c := make(Catalog, len(tiles))
	copy(c, tiles)

	return c, nil
}
