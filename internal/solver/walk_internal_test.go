package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/boggle/apps/go-server/internal/board"
	"github.com/robalobadob/boggle/apps/go-server/internal/lexicon"
)

func allFree(w *walker) bool {
	for _, v := range w.visited {
		if v {
			return false
		}
	}
	return true
}

func TestWordsFrom_ReleasesVisitedCells(t *testing.T) {
	lex := lexicon.New([]string{"cat", "cats", "scat"})
	w := newWalker(lex, board.Board{{"c", "a"}, {"t", "s"}})

	found, err := w.wordsFrom(0, 0)
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{"cat": {}, "cats": {}}, found)
	assert.True(t, allFree(w))
}

func TestWordsFrom_OutOfBoundsIsAnomaly(t *testing.T) {
	lex := lexicon.New([]string{"cat"})
	w := newWalker(lex, board.Board{{"c", "a"}, {"t", "s"}})

	found, err := w.wordsFrom(5, 5)
	assert.Nil(t, found)
	assert.ErrorIs(t, err, ErrBranchAnomaly)
}

func TestWordsFrom_AnomalyMidPathRestoresMask(t *testing.T) {
	// A ragged grid never passes Validate; feed it straight to the walker so
	// the search steps off the short second row part-way down a path.
	lex := lexicon.New([]string{"ab", "abc", "abcd"})
	w := newWalker(lex, board.Board{{"a", "b"}, {"c"}})

	found, err := w.wordsFrom(0, 0)
	assert.Nil(t, found)
	assert.ErrorIs(t, err, ErrBranchAnomaly)
	assert.True(t, allFree(w), "visited cells must be released on the error path")
}

func TestWordsFrom_PanicIsAnomaly(t *testing.T) {
	w := newWalker(nil, board.Board{{"a"}})

	found, err := w.wordsFrom(0, 0)
	assert.Nil(t, found)
	assert.ErrorIs(t, err, ErrBranchAnomaly)
}

func TestSolve_AnomalousStartCellsAreDropped(t *testing.T) {
	// Start cells whose search strays off the short last row are dropped;
	// "da" never gets near that row and survives.
	lex := lexicon.New([]string{"da", "zqq"})
	b := board.Board{
		{"d", "a", "x"},
		{"q", "q", "q"},
		{"z"},
	}
	assert.Equal(t, []string{"da"}, solve(lex, b, nil))
}
