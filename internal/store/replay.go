package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// ScoreSet is the aggregate score block of a replay.
type ScoreSet struct {
	Overall       int `json:"overall"`
	Communication int `json:"communication"`
	Reasoning     int `json:"reasoning"`
	Readiness     int `json:"readiness"`
}

// ReplayAnalysis is the qualitative breakdown of a session.
type ReplayAnalysis struct {
	StrongMoments       []string `json:"strongMoments"`
	HesitationPoints    []string `json:"hesitationPoints"`
	MissedOpportunities []string `json:"missedOpportunities"`
}

// SessionReplay is the full record of one practice session.
type SessionReplay struct {
	ID              string         `json:"id"`
	Date            time.Time      `json:"date"`
	Role            string         `json:"role"`
	Industry        string         `json:"industry"`
	Mode            string         `json:"mode"`
	Questions       []string       `json:"questions"`
	Answers         []string       `json:"answers"`
	FollowUps       []string       `json:"followUpQuestions"`
	FollowUpAnswers []string       `json:"followUpAnswers"`
	Feedback        []string       `json:"feedback"`
	Scores          ScoreSet       `json:"scores"`
	Analysis        ReplayAnalysis `json:"analysis"`
}

// ReplayRepo is the append-only, capped full-session log.
type ReplayRepo interface {
	// Append stores a replay and evicts beyond the cap.
	Append(ctx context.Context, r SessionReplay) error

	// List returns replays newest first, at most the configured cap.
	List(ctx context.Context) ([]SessionReplay, error)
}

type replayRepo struct {
	db  *sql.DB
	cap int
}

func (r *replayRepo) Append(ctx context.Context, replay SessionReplay) error {
	data, err := json.Marshal(replay)
	if err != nil {
		return fmt.Errorf("encode replay %s: %w", replay.ID, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replay append: %w", err)
	}

	// seq gives a strict append order independent of wall-clock ties.
	_, err = tx.ExecContext(ctx,
		`INSERT INTO session_replays (id, seq, date, data)
		 VALUES (?, COALESCE((SELECT MAX(seq) FROM session_replays), 0) + 1, ?, ?)`,
		replay.ID, replay.Date.UTC().Format(time.RFC3339), string(data))
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("insert replay %s: %w", replay.ID, err)
	}

	_, err = tx.ExecContext(ctx,
		`DELETE FROM session_replays WHERE seq NOT IN (
			SELECT seq FROM session_replays ORDER BY seq DESC LIMIT ?
		)`, r.cap)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prune replays: %w", err)
	}

	return tx.Commit()
}

func (r *replayRepo) List(ctx context.Context) ([]SessionReplay, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT data FROM session_replays ORDER BY seq DESC LIMIT ?`, r.cap)
	if err != nil {
		return nil, fmt.Errorf("query replays: %w", err)
	}
	defer rows.Close()

	var replays []SessionReplay
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scan replay row: %w", err)
		}
		var replay SessionReplay
		if err := json.Unmarshal([]byte(data), &replay); err != nil {
			return nil, fmt.Errorf("decode replay: %w", err)
		}
		replays = append(replays, replay)
	}
	return replays, rows.Err()
}
