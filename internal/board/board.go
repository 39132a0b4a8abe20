// Package board defines the letter grid searched by the solver, together
// with the checks every grid must pass before a search may start.
package board

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidBoard indicates a board that is empty, jagged, or holds a
// cell that is not a lowercase a–z string.
var ErrInvalidBoard = errors.New("bad board")

// Board is a rectangular grid of lowercase tiles. Board[row][col].
// A tile is usually one letter but may be longer ("qu").
type Board [][]string

// Validate checks shape and content. It never mutates b.
//
// Fails when:
//   - b has no rows, or a row has no cells;
//   - a row's length differs from the first row's;
//   - a cell does not match ^[a-z]+$.
func Validate(b Board) error {
	if len(b) == 0 {
		return fmt.Errorf("%w: no rows", ErrInvalidBoard)
	}
	width := len(b[0])
	if width == 0 {
		return fmt.Errorf("%w: row 0 is empty", ErrInvalidBoard)
	}
	for r, row := range b {
		if len(row) != width {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidBoard, r, len(row), width)
		}
		for c, cell := range row {
			if !isTile(cell) {
				return fmt.Errorf("%w: cell (%d,%d) = %q is not lowercase a-z", ErrInvalidBoard, r, c, cell)
			}
		}
	}
	return nil
}

// Rows returns the number of rows.
func (b Board) Rows() int { return len(b) }

// Cols returns the row width. Only meaningful on a validated board.
func (b Board) Cols() int {
	if len(b) == 0 {
		return 0
	}
	return len(b[0])
}

// InBounds reports whether (row,col) lies on the board.
func (b Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.Rows() && col >= 0 && col < len(b[row])
}

// Clone deep-copies b.
func (b Board) Clone() Board {
	out := make(Board, len(b))
	for i, row := range b {
		out[i] = append([]string(nil), row...)
	}
	return out
}

// String renders the board one row per line with cells left-aligned in
// columns wide enough for the longest tile.
func (b Board) String() string {
	width := 1
	for _, row := range b {
		for _, cell := range row {
			width = max(width, len(cell))
		}
	}
	var sb strings.Builder
	for _, row := range b {
		for c, cell := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(cell)
			if c < len(row)-1 {
				sb.WriteString(strings.Repeat(" ", width-len(cell)))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// isTile reports whether s is a non-empty run of lowercase ASCII letters.
func isTile(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
