package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// attemptRepo implements AttemptRepo with raw SQL.
type attemptRepo struct {
	db *sql.DB
}

func (r *attemptRepo) Save(ctx context.Context, a *Attempt) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO attempts
			(id, created_at, url, title, quiz_json, answers_json, score, total)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.CreatedAt, a.URL, a.Title, a.QuizJSON, a.AnswersJSON, a.Score, a.Total,
	)
	if err != nil {
		return fmt.Errorf("insert attempt: %w", err)
	}
	return nil
}

const attemptColumns = "id, created_at, url, title, quiz_json, answers_json, score, total"

func (r *attemptRepo) List(ctx context.Context, limit int) ([]*Attempt, error) {
	query := "SELECT " + attemptColumns + " FROM attempts ORDER BY created_at DESC, id DESC"
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var attempts []*Attempt
	for rows.Next() {
		a := &Attempt{}
		if err := rows.Scan(&a.ID, &a.CreatedAt, &a.URL, &a.Title,
			&a.QuizJSON, &a.AnswersJSON, &a.Score, &a.Total); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}

func (r *attemptRepo) Get(ctx context.Context, id string) (*Attempt, error) {
	a := &Attempt{}
	err := r.db.QueryRowContext(ctx,
		"SELECT "+attemptColumns+" FROM attempts WHERE id = ?", id,
	).Scan(&a.ID, &a.CreatedAt, &a.URL, &a.Title,
		&a.QuizJSON, &a.AnswersJSON, &a.Score, &a.Total)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get attempt: %w", err)
	}
	return a, nil
}
