package solver_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/boggle/apps/go-server/internal/board"
	"github.com/robalobadob/boggle/apps/go-server/internal/lexicon"
	"github.com/robalobadob/boggle/apps/go-server/internal/solver"
)

//----------------------------------------------------------------------------//
// helpers
//----------------------------------------------------------------------------//

// traceable reports whether word can be spelled on b along a simple path of
// adjacent cells.
func traceable(b board.Board, word string) bool {
	used := make([][]bool, len(b))
	for i := range used {
		used[i] = make([]bool, len(b[i]))
	}
	var walk func(r, c int, rest string) bool
	walk = func(r, c int, rest string) bool {
		tile := b[r][c]
		if len(rest) < len(tile) || rest[:len(tile)] != tile {
			return false
		}
		rest = rest[len(tile):]
		if rest == "" {
			return true
		}
		used[r][c] = true
		defer func() { used[r][c] = false }()
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				nr, nc := r+dr, c+dc
				if (dr == 0 && dc == 0) || !b.InBounds(nr, nc) || used[nr][nc] {
					continue
				}
				if walk(nr, nc, rest) {
					return true
				}
			}
		}
		return false
	}
	for r := range b {
		for c := range b[r] {
			if walk(r, c, word) {
				return true
			}
		}
	}
	return false
}

// bruteForce enumerates every simple path on b and keeps the lexicon words.
func bruteForce(lex *lexicon.Lexicon, b board.Board) []string {
	seen := map[string]struct{}{}
	used := make([][]bool, len(b))
	for i := range used {
		used[i] = make([]bool, len(b[i]))
	}
	var walk func(r, c int, sofar string)
	walk = func(r, c int, sofar string) {
		sofar += b[r][c]
		if lex.Contains(sofar) {
			seen[sofar] = struct{}{}
		}
		used[r][c] = true
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				nr, nc := r+dr, c+dc
				if b.InBounds(nr, nc) && !used[nr][nc] {
					walk(nr, nc, sofar)
				}
			}
		}
		used[r][c] = false
	}
	for r := range b {
		for c := range b[r] {
			walk(r, c, "")
		}
	}
	out := make([]string, 0, len(seen))
	for w := range seen {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

func mustSolve(t *testing.T, lex *lexicon.Lexicon, b board.Board, opts ...solver.Option) []string {
	t.Helper()
	words, err := solver.Solve(lex, b, opts...)
	require.NoError(t, err)
	return words
}

//----------------------------------------------------------------------------//
// End-to-end examples
//----------------------------------------------------------------------------//

func TestSolve_SingleCellNoOneLetterWords(t *testing.T) {
	lex := lexicon.New([]string{"ab", "cat"})
	assert.Empty(t, mustSolve(t, lex, board.Board{{"a"}}))
}

func TestSolve_SingleCellOneLetterWord(t *testing.T) {
	lex := lexicon.New([]string{"a", "ab"})
	assert.Equal(t, []string{"a"}, mustSolve(t, lex, board.Board{{"a"}}))
}

func TestSolve_Cat(t *testing.T) {
	lex := lexicon.New([]string{"cat"})
	b := board.Board{{"c", "a"}, {"t", "s"}}
	assert.Equal(t, []string{"cat"}, mustSolve(t, lex, b))
}

func TestSolve_SmallBoard(t *testing.T) {
	lex := lexicon.New([]string{"act", "acts", "cast", "cat", "cats", "sat", "scat", "taco", "tact"})
	b := board.Board{{"c", "a"}, {"t", "s"}}
	// "taco" needs an o; "tact" needs two t's.
	assert.Equal(t, []string{"act", "acts", "cast", "cat", "cats", "sat", "scat"}, mustSolve(t, lex, b))
}

func TestSolve_NoCellReuse(t *testing.T) {
	lex := lexicon.New([]string{"aa", "aaa", "aba"})
	assert.Equal(t, []string{"aa"}, mustSolve(t, lex, board.Board{{"a", "a"}}))
	assert.Empty(t, mustSolve(t, lex, board.Board{{"a", "b"}}), "aba would need the a twice")
}

func TestSolve_VisitedMarksDoNotLeakAcrossSiblings(t *testing.T) {
	// From the centre "x", one sibling branch visits "a" then "b"; the other
	// must still be free to visit "b" then "a".
	lex := lexicon.New([]string{"xab", "xba"})
	b := board.Board{{"x", "a"}, {"b", "y"}}
	assert.Equal(t, []string{"xab", "xba"}, mustSolve(t, lex, b))
}

func TestSolve_NoWraparound(t *testing.T) {
	lex := lexicon.New([]string{"ac", "ca"})
	assert.Empty(t, mustSolve(t, lex, board.Board{{"a", "b", "c"}}))
}

func TestSolve_DiagonalAdjacency(t *testing.T) {
	lex := lexicon.New([]string{"ad", "da", "bc"})
	b := board.Board{{"a", "b"}, {"c", "d"}}
	assert.Equal(t, []string{"ad", "bc", "da"}, mustSolve(t, lex, b))
}

func TestSolve_MultiLetterTile(t *testing.T) {
	lex := lexicon.New([]string{"quest", "quit", "qest"})
	b := board.Board{
		{"qu", "i", "t"},
		{"e", "s", "x"},
	}
	assert.Equal(t, []string{"quest", "quit"}, mustSolve(t, lex, b))
}

func TestSolve_UnprefixedLetterStopsEarly(t *testing.T) {
	lex := lexicon.New([]string{"cat", "dog"})
	b := board.Board{{"z", "z"}, {"z", "z"}}
	assert.Empty(t, mustSolve(t, lex, b))
}

func TestSolve_MinLength(t *testing.T) {
	lex := lexicon.New([]string{"at", "cat", "cats"})
	b := board.Board{{"c", "a"}, {"t", "s"}}
	assert.Equal(t, []string{"at", "cat", "cats"}, mustSolve(t, lex, b))
	assert.Equal(t, []string{"cat", "cats"}, mustSolve(t, lex, b, solver.WithMinLength(3)))
}

//----------------------------------------------------------------------------//
// Errors
//----------------------------------------------------------------------------//

func TestSolve_InvalidBoards(t *testing.T) {
	lex := lexicon.New([]string{"cat"})
	cases := []struct {
		name string
		b    board.Board
	}{
		{"Empty", board.Board{}},
		{"Jagged", board.Board{{"c", "a"}, {"t"}}},
		{"Uppercase", board.Board{{"c", "A"}, {"t", "s"}}},
		{"NonAlpha", board.Board{{"c", "?"}, {"t", "s"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			words, err := solver.Solve(lex, tc.b)
			assert.Nil(t, words)
			if !errors.Is(err, board.ErrInvalidBoard) {
				t.Errorf("Solve(%v) error = %v; want %v", tc.b, err, board.ErrInvalidBoard)
			}
		})
	}
}

func TestSolve_NilLexicon(t *testing.T) {
	_, err := solver.Solve(nil, board.Board{{"a"}})
	assert.ErrorIs(t, err, lexicon.ErrDictionaryUnavailable)
}

func TestSolver_DictionaryUnavailable(t *testing.T) {
	s := solver.New(lexicon.FromPath("/definitely/not/here/wordlist.txt"))
	words, err := s.Solve(board.Board{{"c", "a"}, {"t", "s"}})
	assert.Nil(t, words)
	assert.ErrorIs(t, err, lexicon.ErrDictionaryUnavailable)
}

func TestSolver_InvalidBoardBeforeDictionary(t *testing.T) {
	loaded := false
	s := solver.New(lexicon.NewProvider(func() (*lexicon.Lexicon, error) {
		loaded = true
		return lexicon.New([]string{"cat"}), nil
	}))
	_, err := s.Solve(board.Board{})
	assert.ErrorIs(t, err, board.ErrInvalidBoard)
	assert.False(t, loaded, "an invalid board must not trigger a dictionary load")
}

func TestSolver_UsesInjectedLexicon(t *testing.T) {
	s := solver.New(lexicon.Static(lexicon.New([]string{"cat", "sat"})))
	words, err := s.Solve(board.Board{{"c", "a"}, {"t", "s"}}, solver.WithOrder(solver.OrderScore))
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "sat"}, words)
}

//----------------------------------------------------------------------------//
// Properties
//----------------------------------------------------------------------------//

func TestSolve_PropertiesOnGeneratedBoards(t *testing.T) {
	lex, err := lexicon.Embedded()
	require.NoError(t, err)

	for seed := uint64(1); seed <= 20; seed++ {
		b := board.Generate(4, 4, board.NewRand(seed))

		words := mustSolve(t, lex, b)
		for i, w := range words {
			assert.True(t, lex.Contains(w), "%q is not a lexicon word", w)
			assert.True(t, traceable(b, w), "%q cannot be traced on\n%s", w, b)
			if i > 0 {
				assert.Less(t, words[i-1], w, "lexicographic output must be strictly ascending")
			}
		}

		scored := mustSolve(t, lex, b, solver.WithOrder(solver.OrderScore))
		require.ElementsMatch(t, words, scored)
		for i := 1; i < len(scored); i++ {
			prev, cur := solver.Score(scored[i-1]), solver.Score(scored[i])
			assert.GreaterOrEqual(t, prev, cur)
			if prev == cur {
				assert.Less(t, scored[i-1], scored[i])
			}
		}
	}
}

func TestSolve_MatchesBruteForce(t *testing.T) {
	lex, err := lexicon.Embedded()
	require.NoError(t, err)

	boards := []board.Board{
		{{"c", "a", "t"}, {"o", "r", "s"}, {"d", "e", "n"}},
		{{"s", "t", "a"}, {"r", "e", "p"}, {"o", "n", "t"}},
		{{"qu", "i", "t"}, {"e", "s", "a"}, {"z", "o", "n"}},
	}
	for seed := uint64(100); seed < 105; seed++ {
		boards = append(boards, board.Generate(3, 3, board.NewRand(seed)))
	}
	for _, b := range boards {
		want := bruteForce(lex, b)
		got := mustSolve(t, lex, b)
		if len(want) == 0 {
			assert.Empty(t, got)
			continue
		}
		assert.Equal(t, want, got, "board:\n%s", b)
	}
}

func TestSolve_NoDuplicates(t *testing.T) {
	// Every cell is "a": "aa" is reachable along many paths.
	lex := lexicon.New([]string{"aa", "aaa"})
	b := board.Board{{"a", "a"}, {"a", "a"}}
	assert.Equal(t, []string{"aa", "aaa"}, mustSolve(t, lex, b))
}

func TestSolve_Deterministic(t *testing.T) {
	lex, err := lexicon.Embedded()
	require.NoError(t, err)
	b := board.Generate(5, 5, board.NewRand(7))

	first := mustSolve(t, lex, b, solver.WithOrder(solver.OrderScore))
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, mustSolve(t, lex, b, solver.WithOrder(solver.OrderScore)))
	}
}

func TestSolve_DoesNotMutateBoard(t *testing.T) {
	lex := lexicon.New([]string{"cat", "cats"})
	b := board.Board{{"c", "a"}, {"t", "s"}}
	before := b.Clone()
	mustSolve(t, lex, b)
	assert.Equal(t, before, b)
}

func TestSolve_SampleBoard(t *testing.T) {
	lex := lexicon.New([]string{"cup", "cups", "dew", "pew", "sup", "up", "zoo"})
	words := mustSolve(t, lex, board.Sample())
	for _, w := range words {
		assert.True(t, traceable(board.Sample(), w), w)
	}
	assert.NotContains(t, words, "zoo")
}
