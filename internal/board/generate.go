package board

import (
	"math/rand/v2"
	"strings"
)

// dice are the sixteen cubes of the standard English set. "Qu" is a single
// face and lands on the board as the two-letter tile "qu".
var dice = [16][6]string{
	{"a", "a", "e", "e", "g", "n"},
	{"a", "b", "b", "j", "o", "o"},
	{"a", "c", "h", "o", "p", "s"},
	{"a", "f", "f", "k", "p", "s"},
	{"a", "o", "o", "t", "t", "w"},
	{"c", "i", "m", "o", "t", "u"},
	{"d", "e", "i", "l", "r", "x"},
	{"d", "e", "l", "r", "v", "y"},
	{"d", "i", "s", "t", "t", "y"},
	{"e", "e", "g", "h", "n", "w"},
	{"e", "e", "i", "n", "s", "u"},
	{"e", "h", "r", "t", "v", "w"},
	{"e", "i", "o", "s", "s", "t"},
	{"e", "l", "r", "t", "t", "y"},
	{"h", "i", "m", "n", "u", "qu"},
	{"h", "l", "n", "n", "r", "z"},
}

// Generate rolls a rows×cols board. Dice are shuffled into position and
// reused round-robin when the board has more than sixteen cells.
// Non-positive dimensions default to 4.
func Generate(rows, cols int, rng *rand.Rand) Board {
	if rows <= 0 {
		rows = 4
	}
	if cols <= 0 {
		cols = 4
	}
	n := rows * cols
	order := make([]int, n)
	for i := range order {
		order[i] = i % len(dice)
	}
	rng.Shuffle(n, func(i, j int) { order[i], order[j] = order[j], order[i] })

	b := make(Board, rows)
	for r := 0; r < rows; r++ {
		b[r] = make([]string, cols)
		for c := 0; c < cols; c++ {
			die := dice[order[r*cols+c]]
			b[r][c] = die[rng.IntN(len(die))]
		}
	}
	return b
}

// NewRand returns a deterministic generator for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Sample returns the 7×7 demonstration board used when no board is given.
func Sample() Board {
	rows := []string{
		"z w p u m o s",
		"p w w n z r w",
		"c d h q d p e",
		"w c u x d n q",
		"r c s d k w q",
		"i c m p r x x",
		"o y g u i x m",
	}
	b := make(Board, len(rows))
	for i, r := range rows {
		b[i] = strings.Fields(r)
	}
	return b
}
