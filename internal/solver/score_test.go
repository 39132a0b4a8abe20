package solver_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/robalobadob/boggle/apps/go-server/internal/solver"
)

// TestScore_Boundaries checks every breakpoint of the step function.
func TestScore_Boundaries(t *testing.T) {
	want := map[int]int{
		0: 0, 1: 0, 2: 0,
		3: 1,
		4: 1, 5: 2, 6: 3,
		7: 5,
		8: 11, 9: 11, 16: 11,
	}
	for n, points := range want {
		word := strings.Repeat("a", n)
		if got := solver.Score(word); got != points {
			t.Errorf("Score(len %d) = %d; want %d", n, got, points)
		}
	}
}

func TestScore_QuCountsTwoLetters(t *testing.T) {
	assert.Equal(t, 1, solver.Score("quit"))
	assert.Equal(t, 2, solver.Score("quest"))
}

func TestTotal(t *testing.T) {
	assert.Equal(t, 0, solver.Total(nil))
	assert.Equal(t, 1+1+11, solver.Total([]string{"cat", "cats", "absolute"}))
}
