// apps/go-server/internal/game/types.go
//
// Core type definitions for a Boggle game session.
// Defines:
//   - Game:    state for a single in-progress or finished round.
//   - Summary: the end-of-round report (found, missed, score, max score).

package game

import (
	"time"

	"github.com/robalobadob/boggle/apps/go-server/internal/board"
)

// Game holds the state of a single Boggle round.
type Game struct {
	ID        string         // Unique game identifier (uuid).
	Board     board.Board    // Tiles for this round.
	Solutions map[string]int // Every findable word and its points.
	Found     []string       // Words the player has claimed, in claim order.
	Score     int            // Sum of points for Found.
	StartedAt time.Time      // When the round began.
	Finished  bool           // True once Finish has been called.
	Owner     string         // Player key of whoever started the round.
	Daily     bool           // Daily Challenge round; only the daily routes may touch it.
}

// Summary describes a finished round.
type Summary struct {
	GameID   string   `json:"gameId"`
	Found    []string `json:"found"`
	Missed   []string `json:"missed"`
	Score    int      `json:"score"`
	MaxScore int      `json:"maxScore"`
	Elapsed  int64    `json:"elapsedMs"`
}
