// apps/go-server/internal/httpserver/routes_game.go
//
// Timed-round endpoints. The server solves the board when a round starts,
// keeps the round in the in-memory store while it is played, and writes the
// result to the games table when it finishes.
//   - POST /game/new    → {gameId, board, possible, maxScore}
//   - POST /game/word   → {points, score, found}
//   - POST /game/finish → game.Summary

package httpserver

import (
	"encoding/json"
	"errors"
	"math/rand/v2"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/boggle/apps/go-server/internal/board"
	"github.com/robalobadob/boggle/apps/go-server/internal/game"
	"github.com/robalobadob/boggle/apps/go-server/internal/solver"
	"github.com/robalobadob/boggle/apps/go-server/internal/store"
)

type newGameReq struct {
	Rows  int         `json:"rows"`
	Cols  int         `json:"cols"`
	Board board.Board `json:"board"` // optional; a random board is dealt when empty
}
type newGameRes struct {
	GameID   string      `json:"gameId"`
	Board    board.Board `json:"board"`
	Possible int         `json:"possible"`
	MaxScore int         `json:"maxScore"`
}

type wordReq struct {
	GameID string `json:"gameId"`
	Word   string `json:"word"`
}
type wordRes struct {
	Points int      `json:"points"`
	Score  int      `json:"score"`
	Found  []string `json:"found"`
	State  string   `json:"state"`
}

type finishReq struct {
	GameID string `json:"gameId"`
}

// startRound solves b and registers a new round owned by the caller.
func (s *Server) startRound(w http.ResponseWriter, r *http.Request, b board.Board, daily bool) (*game.Game, bool) {
	words, err := s.solver.Solve(b, solver.WithMinLength(game.MinWordLength))
	if err != nil {
		s.writeSolveError(w, err)
		return nil, false
	}
	g := game.New(b, words)
	g.Owner = s.player(w, r)
	g.Daily = daily
	if err := s.store.Save(r.Context(), g); err != nil {
		writeError(w, http.StatusInternalServerError, "store_error", "")
		return nil, false
	}
	return g, true
}

// handleNewGame deals (or accepts) a board and starts a round.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_json", "")
			return
		}
	}
	b := req.Board
	if len(b) == 0 {
		if req.Rows < 0 || req.Cols < 0 || req.Rows > maxBoardSide || req.Cols > maxBoardSide {
			writeError(w, http.StatusBadRequest, "bad_size", "rows and cols must be 1-10")
			return
		}
		b = board.Generate(req.Rows, req.Cols, board.NewRand(rand.Uint64()))
	} else if !boardSizeOK(w, b) {
		return
	}

	g, ok := s.startRound(w, r, b, false)
	if !ok {
		return
	}
	if err := s.history.Start(r.Context(), g.ID, s.owner(w, r), g.Board.String(), g.MaxScore()); err != nil {
		log.Warn().Err(err).Str("gameId", g.ID).Msg("record game start")
	}
	writeJSON(w, http.StatusOK, newGameRes{
		GameID:   g.ID,
		Board:    g.Board,
		Possible: len(g.Solutions),
		MaxScore: g.MaxScore(),
	})
}

// handleWord claims a word in a running round.
func (s *Server) handleWord(w http.ResponseWriter, r *http.Request) {
	var req wordReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.GameID == "" {
		writeError(w, http.StatusBadRequest, "bad_json", "")
		return
	}
	g, ok := s.loadGame(w, r, req.GameID)
	if !ok {
		return
	}
	if g.Daily {
		writeError(w, http.StatusConflict, "daily_round", "use /daily/word")
		return
	}
	s.submitWord(w, g, req.Word)
}

// submitWord claims word in g and writes the result.
func (s *Server) submitWord(w http.ResponseWriter, g *game.Game, word string) {
	s.gameMu.Lock()
	points, err := g.Submit(word)
	res := wordRes{Points: points, Score: g.Score, Found: append([]string(nil), g.Found...), State: g.State()}
	s.gameMu.Unlock()

	if err != nil {
		writeSubmitError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handleFinish ends a round, records it, and returns the summary.
func (s *Server) handleFinish(w http.ResponseWriter, r *http.Request) {
	var req finishReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.GameID == "" {
		writeError(w, http.StatusBadRequest, "bad_json", "")
		return
	}
	g, ok := s.loadGame(w, r, req.GameID)
	if !ok {
		return
	}
	if g.Daily {
		writeError(w, http.StatusConflict, "daily_round", "use /daily/finish")
		return
	}

	s.gameMu.Lock()
	sum := g.Finish()
	s.gameMu.Unlock()

	if err := s.history.Finish(r.Context(), g.ID, s.owner(w, r), sum.Score, len(sum.Found)); err != nil {
		log.Warn().Err(err).Str("gameId", g.ID).Msg("record game finish")
	}
	_ = s.store.Delete(r.Context(), g.ID)
	writeJSON(w, http.StatusOK, sum)
}

// loadGame fetches one of the caller's rounds. Rounds owned by someone
// else are reported as not found.
func (s *Server) loadGame(w http.ResponseWriter, r *http.Request, id string) (*game.Game, bool) {
	g, err := s.store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "game_not_found", "")
		} else {
			writeError(w, http.StatusInternalServerError, "store_error", "")
		}
		return nil, false
	}
	if !s.ownsRound(r, g) {
		writeError(w, http.StatusNotFound, "game_not_found", "")
		return nil, false
	}
	return g, true
}

// boardSizeOK rejects caller-supplied boards wider or taller than maxBoardSide.
func boardSizeOK(w http.ResponseWriter, b board.Board) bool {
	if len(b) > maxBoardSide {
		writeError(w, http.StatusBadRequest, "board_too_large", "at most 10 rows")
		return false
	}
	for _, row := range b {
		if len(row) > maxBoardSide {
			writeError(w, http.StatusBadRequest, "board_too_large", "at most 10 columns")
			return false
		}
	}
	return true
}

// writeSubmitError maps game.Submit failures to responses.
func writeSubmitError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, game.ErrFinished):
		writeError(w, http.StatusConflict, "game_finished", "")
	case errors.Is(err, game.ErrTooShort):
		writeError(w, http.StatusBadRequest, "too_short", "")
	case errors.Is(err, game.ErrAlreadyFound):
		writeError(w, http.StatusBadRequest, "already_found", "")
	case errors.Is(err, game.ErrNotFound):
		writeError(w, http.StatusBadRequest, "not_on_board", "")
	default:
		writeError(w, http.StatusInternalServerError, "submit_failed", "")
	}
}
