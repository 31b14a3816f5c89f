package board

// Adjacency registers one shared edge between two slots. A and B are the
// slots in canonical registered order; EdgeA and EdgeB are the local edge
// indices (0..2) each side exposes at the shared boundary.
//
// The edge-index assignment is fixed by the physical board geometry and is
// part of the topology data, never derived at runtime.
type Adjacency struct {
	A, B         int
	EdgeA, EdgeB int
}

// Topology is the immutable adjacency structure of a board: slot count,
// the registered adjacencies, and the order slots are reported in.
// Construct with NewTopology; a validated Topology never changes.
type Topology struct {
	slots      int
	adj        []Adjacency
	printOrder []int
	// shared maps the registered (A,B) pair to its adjacency for O(1) lookup.
	shared map[[2]int]Adjacency
}

// NewTopology validates and deep-copies the board description.
//
// Requirements:
//   - slots >= 1;
//   - every adjacency joins two distinct in-range slots with edge indices
//     in [0, EdgeCount), and no unordered slot pair appears twice;
//   - printOrder is a permutation of 0..slots-1.
//
// Returns ErrNoSlots, ErrSlotRange, ErrSelfAdjacency, ErrEdgeRange,
// ErrDuplicateAdjacency, or ErrBadPrintOrder on bad input.
// Complexity: O(A + S) time and memory.
func NewTopology(slots int, adj []Adjacency, printOrder []int) (*Topology, error) {
	// 1. Slot count.
	if slots < 1 {
		return nil, ErrNoSlots
	}

	// 2. Adjacency validation + canonical lookup map.
	shared := make(map[[2]int]Adjacency, len(adj))
	var a Adjacency
	for _, a = range adj {
		if a.A < 0 || a.A >= slots || a.B < 0 || a.B >= slots {
			return nil, ErrSlotRange
		}
		if a.A == a.B {
			return nil, ErrSelfAdjacency
		}
		if a.EdgeA < 0 || a.EdgeA >= EdgeCount || a.EdgeB < 0 || a.EdgeB >= EdgeCount {
			return nil, ErrEdgeRange
		}
		lo, hi := a.A, a.B
		if lo > hi {
			lo, hi = hi, lo
		}
		if _, dup := shared[[2]int{lo, hi}]; dup {
			return nil, ErrDuplicateAdjacency
		}
		// Key both the canonical unordered pair (duplicate detection) and
		// the registered order (lookup); they may coincide.
		shared[[2]int{lo, hi}] = a
		shared[[2]int{a.A, a.B}] = a
	}

	// 3. Print order must cover every slot exactly once.
	if len(printOrder) != slots {
		return nil, ErrBadPrintOrder
	}
	seen := make([]bool, slots)
	var s int
	for _, s = range printOrder {
		if s < 0 || s >= slots || seen[s] {
			return nil, ErrBadPrintOrder
		}
		seen[s] = true
	}

	// 4. Deep-copy inputs; the Topology owns its data.
	t := &Topology{
		slots:      slots,
		adj:        make([]Adjacency, len(adj)),
		printOrder: make([]int, len(printOrder)),
		shared:     shared,
	}
	copy(t.adj, adj)
	copy(t.printOrder, printOrder)

	return t, nil
}

// Slots returns the number of slots on the board.
func (t *Topology) Slots() int { return t.slots }

// Adjacencies returns a copy of the registered adjacencies, in registration
// order. Iteration order is part of the contract: validity checks and
// solution enumeration walk pairs in exactly this order.
func (t *Topology) Adjacencies() []Adjacency {
	out := make([]Adjacency, len(t.adj))
	copy(out, t.adj)

	return out
}

// SharedEdge returns the local edge index each of slots a and b compares at
// their shared boundary. The pair must be queried in registered order;
// reversed or unregistered pairs report ok=false.
// Complexity: O(1).
func (t *Topology) SharedEdge(a, b int) (ea, eb int, ok bool) {
	adj, ok := t.shared[[2]int{a, b}]
	if !ok || adj.A != a || adj.B != b {
		return 0, 0, false
	}

	return adj.EdgeA, adj.EdgeB, true
}

// PrintOrder returns a copy of the slot order used when reporting solutions.
func (t *Topology) PrintOrder() []int {
	out := make([]int, len(t.printOrder))
	copy(out, t.printOrder)

	return out
}
