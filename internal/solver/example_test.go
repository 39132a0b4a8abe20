package solver_test

import (
	"fmt"

	"github.com/robalobadob/boggle/apps/go-server/internal/board"
	"github.com/robalobadob/boggle/apps/go-server/internal/lexicon"
	"github.com/robalobadob/boggle/apps/go-server/internal/solver"
)

// ExampleSolve finds words on a 2×2 board where every cell touches every other.
func ExampleSolve() {
	lex := lexicon.New([]string{"act", "acts", "cat", "cats", "scat", "stack", "taco"})
	b := board.Board{
		{"c", "a"},
		{"t", "s"},
	}

	words, _ := solver.Solve(lex, b, solver.WithOrder(solver.OrderScore))
	for _, w := range words {
		fmt.Println(w, solver.Score(w))
	}

	// Output:
	// act 1
	// acts 1
	// cat 1
	// cats 1
	// scat 1
}
