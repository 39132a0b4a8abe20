// apps/go-server/internal/game/engine.go
//
// Game engine for a single Boggle round.
// Responsibilities:
//   - Create rounds from a board and its full solution list.
//   - Validate and score claimed words (length, on board, not repeated).
//   - Track state transitions: playing → finished.
//
// Notes:
//   - Solutions come from the solver package; the engine never searches.
//   - Words shorter than MinWordLength are rejected even if the lexicon has them.

package game

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/robalobadob/boggle/apps/go-server/internal/board"
	"github.com/robalobadob/boggle/apps/go-server/internal/solver"
)

// MinWordLength is the shortest word a player may claim.
const MinWordLength = 3

var (
	ErrFinished     = errors.New("game finished")
	ErrTooShort     = errors.New("word too short")
	ErrAlreadyFound = errors.New("already found")
	ErrNotFound     = errors.New("not on board")
)

// New constructs a round over a copy of b. solutions is the solver's output for b.
func New(b board.Board, solutions []string) *Game {
	sol := make(map[string]int, len(solutions))
	for _, w := range solutions {
		if len(w) >= MinWordLength {
			sol[w] = solver.Score(w)
		}
	}
	return &Game{
		ID:        uuid.NewString(),
		Board:     b.Clone(),
		Solutions: sol,
		Found:     []string{},
		StartedAt: time.Now().UTC(),
	}
}

// Submit claims word for the player and returns the points it earned.
//
// Validation rules:
//   - Game must not be finished.
//   - Word must be at least MinWordLength letters.
//   - Word must not have been claimed already.
//   - Word must be one of the board's solutions.
func (g *Game) Submit(word string) (int, error) {
	if g.Finished {
		return 0, ErrFinished
	}
	word = strings.ToLower(strings.TrimSpace(word))
	if len(word) < MinWordLength {
		return 0, ErrTooShort
	}
	for _, f := range g.Found {
		if f == word {
			return 0, ErrAlreadyFound
		}
	}
	points, ok := g.Solutions[word]
	if !ok {
		return 0, ErrNotFound
	}
	g.Found = append(g.Found, word)
	g.Score += points
	return points, nil
}

// Finish ends the round (idempotent) and reports what was found and missed.
func (g *Game) Finish() Summary {
	g.Finished = true

	found := make(map[string]struct{}, len(g.Found))
	for _, w := range g.Found {
		found[w] = struct{}{}
	}
	missed := make([]string, 0, len(g.Solutions)-len(g.Found))
	for w := range g.Solutions {
		if _, ok := found[w]; !ok {
			missed = append(missed, w)
		}
	}
	solver.Sort(missed, solver.OrderScore)

	return Summary{
		GameID:   g.ID,
		Found:    append([]string(nil), g.Found...),
		Missed:   missed,
		Score:    g.Score,
		MaxScore: g.MaxScore(),
		Elapsed:  time.Since(g.StartedAt).Milliseconds(),
	}
}

// MaxScore is the score for finding every solution.
func (g *Game) MaxScore() int {
	total := 0
	for _, p := range g.Solutions {
		total += p
	}
	return total
}

// State reports "playing" or "finished".
func (g *Game) State() string {
	if g.Finished {
		return "finished"
	}
	return "playing"
}
