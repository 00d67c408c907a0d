package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// MaxEntries is the default bound on both the score history and the session
// replay logs. Appends beyond the cap evict the oldest entries.
const MaxEntries = 20

// HistoryEntry is one row of the score history log.
type HistoryEntry struct {
	Date          time.Time
	Mode          string
	Score         int
	Communication int
	Reasoning     int
	Readiness     int
}

// HistoryRepo is the append-only, capped score history log.
type HistoryRepo interface {
	// Append records an entry and evicts beyond the cap.
	Append(ctx context.Context, e HistoryEntry) error

	// List returns entries newest first, at most the configured cap.
	List(ctx context.Context) ([]HistoryEntry, error)
}

type historyRepo struct {
	db  *sql.DB
	cap int
}

func (r *historyRepo) Append(ctx context.Context, e HistoryEntry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin history append: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO history (date, mode, score, communication, reasoning, readiness)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.Date.UTC().Format(time.RFC3339), e.Mode, e.Score, e.Communication, e.Reasoning, e.Readiness)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("insert history entry: %w", err)
	}

	// Evict everything older than the newest cap rows.
	_, err = tx.ExecContext(ctx,
		`DELETE FROM history WHERE id NOT IN (
			SELECT id FROM history ORDER BY id DESC LIMIT ?
		)`, r.cap)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prune history: %w", err)
	}

	return tx.Commit()
}

func (r *historyRepo) List(ctx context.Context) ([]HistoryEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT date, mode, score, communication, reasoning, readiness
		 FROM history ORDER BY id DESC LIMIT ?`, r.cap)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		var date string
		if err := rows.Scan(&date, &e.Mode, &e.Score, &e.Communication, &e.Reasoning, &e.Readiness); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		e.Date, err = time.Parse(time.RFC3339, date)
		if err != nil {
			return nil, fmt.Errorf("parse history date %q: %w", date, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
