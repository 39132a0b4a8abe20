// apps/go-server/internal/solver/walk.go
//
// Depth-first word discovery from one starting cell.
//
// Pruning:
//   - Find the first lexicon word >= candidate. If there is none, nothing
//     built by extending candidate can be a word.
//   - If candidate is not a prefix of that word, no extension can match
//     any word either. For "qam" the lower bound is "qanat": stop.
//   - If candidate equals that word, record it and keep going; longer words
//     may share the prefix.
//
// The visited mask is only ever changed through acquire, whose release is
// deferred, so a cell is freed on every exit path including panics.

package solver

import (
	"errors"
	"fmt"

	"github.com/robalobadob/boggle/apps/go-server/internal/board"
	"github.com/robalobadob/boggle/apps/go-server/internal/lexicon"
)

// ErrBranchAnomaly marks a starting cell whose search touched a cell
// outside the board or panicked. It never reaches Solve's caller.
var ErrBranchAnomaly = errors.New("solver: branch anomaly")

// walker holds the state of one board search.
type walker struct {
	lex     *lexicon.Lexicon
	grid    board.Board
	rows    int
	cols    int
	visited []bool // row-major, true while the cell is on the current path
}

func newWalker(lex *lexicon.Lexicon, b board.Board) *walker {
	return &walker{
		lex:     lex,
		grid:    b,
		rows:    b.Rows(),
		cols:    b.Cols(),
		visited: make([]bool, b.Rows()*b.Cols()),
	}
}

// wordsFrom returns every word reachable on a simple path starting at (row,col).
func (w *walker) wordsFrom(row, col int) (found map[string]struct{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			found, err = nil, fmt.Errorf("%w: %v", ErrBranchAnomaly, r)
		}
	}()
	found = make(map[string]struct{})
	if err := w.extend(row, col, "", found); err != nil {
		return nil, err
	}
	return found, nil
}

// extend appends the tile at (row,col) to sofar and explores onward.
func (w *walker) extend(row, col int, sofar string, found map[string]struct{}) error {
	if !w.grid.InBounds(row, col) || row*w.cols+col >= len(w.visited) {
		return fmt.Errorf("%w: cell (%d,%d) outside %dx%d board", ErrBranchAnomaly, row, col, w.rows, w.cols)
	}
	candidate := sofar + w.grid[row][col]

	word, prefix := w.lex.Lookup(candidate)
	if !prefix {
		return nil
	}
	if word {
		found[candidate] = struct{}{}
	}

	release := w.acquire(row, col)
	defer release()

	minR, maxR := max(0, row-1), min(w.rows-1, row+1)
	minC, maxC := max(0, col-1), min(w.cols-1, col+1)
	for r := minR; r <= maxR; r++ {
		for c := minC; c <= maxC; c++ {
			if w.visited[r*w.cols+c] {
				continue
			}
			if err := w.extend(r, c, candidate, found); err != nil {
				return err
			}
		}
	}
	return nil
}

// acquire marks (row,col) as used by the current path and returns the
// function that frees it again.
func (w *walker) acquire(row, col int) (release func()) {
	i := row*w.cols + col
	w.visited[i] = true
	return func() { w.visited[i] = false }
}
