// apps/go-server/internal/history/history.go
//
// Persistent record of played rounds.
// Responsibilities:
//   - One games row per round, owned by a user or an anonymous cookie id.
//   - On finish, store the score and bump the owner's aggregate stats.
//   - Move anonymous rounds onto an account after signup/login.

package history

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// ErrNoOwner is returned when neither a user nor an anonymous id is set.
var ErrNoOwner = errors.New("history: round has no owner")

// Owner identifies who played a round. Exactly one field should be set;
// UserID wins if both are.
type Owner struct {
	UserID      string
	AnonymousID string
}

func (o Owner) clause() (string, any, error) {
	switch {
	case o.UserID != "":
		return `user_id=?`, o.UserID, nil
	case o.AnonymousID != "":
		return `anonymous_id=?`, o.AnonymousID, nil
	}
	return "", nil, ErrNoOwner
}

// GameRow is a round as listed in a player's history.
type GameRow struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	Score      int    `json:"score"`
	MaxScore   int    `json:"maxScore"`
	WordsFound int    `json:"wordsFound"`
	StartedAt  string `json:"startedAt"`
	FinishedAt string `json:"finishedAt,omitempty"`
}

// Stats are a user's aggregates.
type Stats struct {
	GamesPlayed int `json:"gamesPlayed"`
	BestScore   int `json:"bestScore"`
	TotalScore  int `json:"totalScore"`
}

// Store reads and writes the games table.
type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Start records a new round.
func (s *Store) Start(ctx context.Context, gameID string, owner Owner, boardText string, maxScore int) error {
	var userID, anonID any
	switch {
	case owner.UserID != "":
		userID = owner.UserID
	case owner.AnonymousID != "":
		anonID = owner.AnonymousID
	default:
		return ErrNoOwner
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO games (id, user_id, anonymous_id, board, started_at, status, max_score)
		 VALUES (?,?,?,?,?,'playing',?)`,
		gameID, userID, anonID, boardText, time.Now().UTC().Format(time.RFC3339), maxScore)
	return err
}

// Finish stores the final score and, for accounts, bumps their stats.
func (s *Store) Finish(ctx context.Context, gameID string, owner Owner, score, wordsFound int) error {
	where, arg, err := owner.clause()
	if err != nil {
		return err
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`UPDATE games SET status='finished', finished_at=?, score=?, words_found=?
		 WHERE id=? AND status='playing' AND `+where,
		time.Now().UTC().Format(time.RFC3339), score, wordsFound, gameID, arg)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// unknown or already finished round: nothing to count
		return tx.Commit()
	}
	if owner.UserID != "" {
		if _, err := tx.ExecContext(ctx,
			`UPDATE users SET games_played = games_played + 1,
			                  total_score  = total_score + ?,
			                  best_score   = MAX(best_score, ?)
			 WHERE id=?`, score, score, owner.UserID); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Mine lists a user's most recent rounds. limit <= 0 means 50.
func (s *Store) Mine(ctx context.Context, userID string, limit int) ([]GameRow, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, status, score, max_score, words_found, started_at, COALESCE(finished_at,'')
		 FROM games WHERE user_id=? ORDER BY started_at DESC, rowid DESC LIMIT ?`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []GameRow{}
	for rows.Next() {
		var gr GameRow
		if err := rows.Scan(&gr.ID, &gr.Status, &gr.Score, &gr.MaxScore, &gr.WordsFound, &gr.StartedAt, &gr.FinishedAt); err != nil {
			return nil, err
		}
		out = append(out, gr)
	}
	return out, rows.Err()
}

// UserStats loads aggregates for userID.
func (s *Store) UserStats(ctx context.Context, userID string) (Stats, error) {
	var st Stats
	err := s.db.QueryRowContext(ctx,
		`SELECT games_played, best_score, total_score FROM users WHERE id=?`, userID,
	).Scan(&st.GamesPlayed, &st.BestScore, &st.TotalScore)
	return st, err
}

// ClaimAnonymous transfers anonymous rounds to a user account.
func (s *Store) ClaimAnonymous(ctx context.Context, anonID, userID string) error {
	if anonID == "" || userID == "" {
		return nil
	}
	_, err := s.db.ExecContext(ctx,
		`UPDATE games SET user_id=?, anonymous_id=NULL WHERE anonymous_id=?`, userID, anonID)
	return err
}
