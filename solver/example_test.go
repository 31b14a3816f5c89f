package solver_test

import (
	"fmt"

	"github.com/lvkoski/kolmio/megakolmio"
	"github.com/lvkoski/kolmio/solver"
)

// ExampleSolve finds the first valid arrangement of the classic nine-card
// puzzle and stops.
func ExampleSolve() {
	res, err := solver.Solve(megakolmio.Board(), megakolmio.Deck(),
		solver.WithMaxSolutions(1),
	)
	if err != nil {
		fmt.Println("solve:", err)

		return
	}
	fmt.Println(res.Solutions[0])
	// Output:
	// [P9,P7,P2,P1,P8,P6,P5,P4,P3]
}

// ExampleSolve_streaming reports solutions eagerly through a hook instead of
// collecting them first.
func ExampleSolve_streaming() {
	_, err := solver.Solve(megakolmio.Board(), megakolmio.Deck(),
		solver.WithMaxSolutions(2),
		solver.WithOnSolution(func(sol solver.Solution) error {
			fmt.Println(sol)

			return nil
		}),
	)
	if err != nil {
		fmt.Println("solve:", err)
	}
	// Output:
	// [P9,P7,P2,P1,P8,P6,P5,P4,P3]
	// [P3,P1,P4,P5,P9,P2,P7,P6,P8]
}
