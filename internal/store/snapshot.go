package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// sessionRepo implements SessionRepo. The table holds at most one row.
type sessionRepo struct {
	db *sql.DB
}

func (r *sessionRepo) SaveSession(ctx context.Context, data []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO session_snapshot (id, updated_at, data)
		VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			updated_at = excluded.updated_at,
			data = excluded.data`,
		time.Now().UTC(), string(data),
	)
	if err != nil {
		return fmt.Errorf("save session snapshot: %w", err)
	}
	return nil
}

func (r *sessionRepo) LoadSession(ctx context.Context) ([]byte, error) {
	var data string
	err := r.db.QueryRowContext(ctx,
		"SELECT data FROM session_snapshot WHERE id = 1").Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session snapshot: %w", err)
	}
	return []byte(data), nil
}

func (r *sessionRepo) ClearSession(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM session_snapshot WHERE id = 1")
	if err != nil {
		return fmt.Errorf("clear session snapshot: %w", err)
	}
	return nil
}
