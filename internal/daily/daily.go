// Package daily derives the board everyone plays on a given UTC date and
// records how each player did on it.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/robalobadob/boggle/apps/go-server/internal/board"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Seed returns a deterministic seed for a date using HMAC(salt, YYYY-MM-DD).
func Seed(date time.Time, salt string) uint64 {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes are plenty of entropy for a PRNG seed
	return binary.BigEndian.Uint64(sum[:8])
}

// Board rolls the board for date. Same date and salt, same board.
func Board(date time.Time, salt string, rows, cols int) board.Board {
	return board.Generate(rows, cols, board.NewRand(Seed(date, salt)))
}
