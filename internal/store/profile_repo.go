package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrNoProfile is returned when no profile row exists yet.
var ErrNoProfile = errors.New("no profile stored")

// ProfileRepo stores the single user profile record as raw JSON. Shape
// validation lives in the profile package.
type ProfileRepo interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, raw []byte) error
}

type profileRepo struct {
	db *sql.DB
}

func (r *profileRepo) Load(ctx context.Context) ([]byte, error) {
	var data string
	err := r.db.QueryRowContext(ctx, `SELECT data FROM profile WHERE id = 1`).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoProfile
	}
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return []byte(data), nil
}

func (r *profileRepo) Save(ctx context.Context, raw []byte) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO profile (id, data) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET data = excluded.data`,
		string(raw))
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}
