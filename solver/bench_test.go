package solver_test

import (
	"testing"

	"github.com/lvkoski/kolmio/megakolmio"
	"github.com/lvkoski/kolmio/solver"
)

// BenchmarkSolve_Megakolmio measures the full exhaustive search over the
// classic nine-card puzzle (preset construction excluded).
func BenchmarkSolve_Megakolmio(b *testing.B) {
	topo := megakolmio.Board()
	deck := megakolmio.Deck()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := solver.Solve(topo, deck); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSolve_TwoSlot measures the micro-puzzle, dominated by state
// cloning rather than pruning.
func BenchmarkSolve_TwoSlot(b *testing.B) {
	topo, catalog := twoSlotPuzzle(b)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := solver.Solve(topo, catalog); err != nil {
			b.Fatal(err)
		}
	}
}
