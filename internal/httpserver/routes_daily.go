// apps/go-server/internal/httpserver/routes_daily.go
//
// HTTP routes for the "Daily Challenge" mode.
// Exposes endpoints under /daily:
//   - POST /daily/new         → start today's round (creates or reuses session)
//   - POST /daily/word        → claim a word in today's round
//   - POST /daily/finish      → end today's round and record the result
//   - GET  /daily/leaderboard → top 20 results for today (or ?date=YYYY-MM-DD)
//
// Everyone gets the same board for a date (seeded from date + salt).
// Each player can finish once per day (enforced by DB + in-memory session).
// Daily rounds are flagged on the game so the /game routes refuse them.

package httpserver

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/boggle/apps/go-server/internal/board"
	"github.com/robalobadob/boggle/apps/go-server/internal/daily"
	"github.com/robalobadob/boggle/apps/go-server/internal/game"
)

// dailyServer wraps dependencies for /daily endpoints.
type dailyServer struct {
	srv      *Server
	store    *daily.Store
	sessions map[string]dailySession // keyed by player|date
	mu       sync.Mutex              // guards sessions
	now      func() time.Time
}

// dailySession links a player's day to the round they are playing.
type dailySession struct {
	GameID string
	Date   string
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	dd := &dailyServer{
		srv:      s,
		store:    daily.NewStore(s.db),
		sessions: make(map[string]dailySession),
		now:      time.Now,
	}
	s.daily = dd
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", dd.handleNew)
		r.Post("/word", dd.handleWord)
		r.Post("/finish", dd.handleFinish)
		r.Get("/leaderboard", dd.handleLeaderboard)
	})
}

// today returns today's date key and board.
func (d *dailyServer) today() (string, board.Board) {
	now := d.now().UTC()
	cfg := d.srv.cfg
	return daily.DateKey(now), daily.Board(now, cfg.DailySalt, cfg.DailyRows, cfg.DailyCols)
}

// session looks up the caller's game id for date.
func (d *dailyServer) session(player, date string) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	sess, ok := d.sessions[player+"|"+date]
	return sess.GameID, ok
}

// pruneBefore drops sessions (and their rounds) from days other than today.
func (d *dailyServer) pruneBefore(r *http.Request, today string) {
	var stale []string
	d.mu.Lock()
	for key, sess := range d.sessions {
		if sess.Date != today {
			stale = append(stale, sess.GameID)
			delete(d.sessions, key)
		}
	}
	d.mu.Unlock()
	for _, id := range stale {
		_ = d.srv.store.Delete(r.Context(), id)
	}
}

// -----------------------------------------------------------------------------
// /daily/new

type dailyNewRes struct {
	GameID   string      `json:"gameId,omitempty"`
	Date     string      `json:"date"`
	Board    board.Board `json:"board,omitempty"`
	Possible int         `json:"possible,omitempty"`
	Played   bool        `json:"played"`
}

// handleNew creates or reuses today's session.
// - If the player already has a DB row for today → Played=true.
// - Otherwise create/reuse an in-memory round and return its id.
func (d *dailyServer) handleNew(w http.ResponseWriter, r *http.Request) {
	pid := d.srv.player(w, r)
	date, b := d.today()
	d.pruneBefore(r, date)

	played, err := d.store.AlreadyPlayed(r.Context(), pid, date)
	if err != nil {
		log.Error().Err(err).Msg("daily already played")
		writeError(w, http.StatusInternalServerError, "db_error", "")
		return
	}
	if played {
		writeJSON(w, http.StatusOK, dailyNewRes{Date: date, Played: true})
		return
	}

	// One round per player per day: an existing session is resumed, never replaced.
	if id, ok := d.session(pid, date); ok {
		g, err := d.srv.store.Get(r.Context(), id)
		if err != nil {
			writeError(w, http.StatusConflict, "session_unavailable", "")
			return
		}
		writeJSON(w, http.StatusOK, dailyNewRes{GameID: g.ID, Date: date, Board: g.Board, Possible: len(g.Solutions)})
		return
	}

	g, ok := d.srv.startRound(w, r, b, true)
	if !ok {
		return
	}
	d.mu.Lock()
	if prev, raced := d.sessions[pid+"|"+date]; raced {
		// a concurrent request registered first; keep its round
		d.mu.Unlock()
		_ = d.srv.store.Delete(r.Context(), g.ID)
		if g, err = d.srv.store.Get(r.Context(), prev.GameID); err != nil {
			writeError(w, http.StatusConflict, "session_unavailable", "")
			return
		}
	} else {
		d.sessions[pid+"|"+date] = dailySession{GameID: g.ID, Date: date}
		d.mu.Unlock()
	}

	writeJSON(w, http.StatusOK, dailyNewRes{GameID: g.ID, Date: date, Board: g.Board, Possible: len(g.Solutions)})
}

// -----------------------------------------------------------------------------
// /daily/word

// handleWord claims a word in the caller's daily round.
func (d *dailyServer) handleWord(w http.ResponseWriter, r *http.Request) {
	var p wordReq
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil || p.GameID == "" {
		writeError(w, http.StatusBadRequest, "bad_json", "")
		return
	}
	pid := d.srv.player(w, r)
	date, _ := d.today()
	if id, ok := d.session(pid, date); !ok || id != p.GameID {
		writeError(w, http.StatusConflict, "no_session", "")
		return
	}
	g, ok := d.srv.loadGame(w, r, p.GameID)
	if !ok {
		return
	}
	d.srv.submitWord(w, g, p.Word)
}

// -----------------------------------------------------------------------------
// /daily/finish

type dailyFinishRes struct {
	Date string `json:"date"`
	game.Summary
}

// handleFinish ends the caller's daily round and records the result once.
func (d *dailyServer) handleFinish(w http.ResponseWriter, r *http.Request) {
	var p finishReq
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil || p.GameID == "" {
		writeError(w, http.StatusBadRequest, "bad_json", "")
		return
	}
	pid := d.srv.player(w, r)
	date, _ := d.today()
	if id, ok := d.session(pid, date); !ok || id != p.GameID {
		writeError(w, http.StatusConflict, "no_session", "")
		return
	}
	g, ok := d.srv.loadGame(w, r, p.GameID)
	if !ok {
		return
	}

	d.srv.gameMu.Lock()
	sum := g.Finish()
	d.srv.gameMu.Unlock()

	if err := d.store.InsertResult(r.Context(), daily.Result{
		UserID:     pid,
		Date:       date,
		Score:      sum.Score,
		WordsFound: len(sum.Found),
		ElapsedMs:  sum.Elapsed,
	}); err != nil {
		log.Error().Err(err).Str("player", pid).Msg("daily insert result")
		writeError(w, http.StatusInternalServerError, "db_error", "")
		return
	}

	d.mu.Lock()
	delete(d.sessions, pid+"|"+date)
	d.mu.Unlock()
	_ = d.srv.store.Delete(r.Context(), g.ID)

	writeJSON(w, http.StatusOK, dailyFinishRes{Date: date, Summary: sum})
}

// -----------------------------------------------------------------------------
// /daily/leaderboard

// lbRes is returned by /daily/leaderboard.
type lbRes struct {
	Date string        `json:"date"`
	Top  []daily.LBRow `json:"top"`
}

// handleLeaderboard returns the leaderboard for the given date (default today).
func (d *dailyServer) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date, _ = d.today()
	}
	rows, err := d.store.Leaderboard(r.Context(), date, 20)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "db_error", "")
		return
	}
	writeJSON(w, http.StatusOK, lbRes{Date: date, Top: rows})
}
