package postgres

import (
	"context"
	"fmt"
	"time"

	"solerelief/internal/domain"
)

// CreateExerciseCompletion stores in, stamped with the current time.
func (d *DB) CreateExerciseCompletion(ctx context.Context, in domain.NewExerciseCompletion) (*domain.ExerciseCompletion, error) {
	c := in.Build(newID(), d.now().UTC())
	_, err := d.sql.ExecContext(ctx,
		"INSERT INTO exercise_completions(id, user_id, exercise_id, completed_at, duration) VALUES($1, $2, $3, $4, $5);",
		c.ID, c.UserID, c.ExerciseID, c.CompletedAt, c.Duration,
	)
	if err != nil {
		return nil, fmt.Errorf("insert exercise completion: %w", err)
	}
	return &c, nil
}

// ListExerciseCompletions returns userID's completions, newest first. A
// non-empty day keeps only completions on that UTC calendar day.
func (d *DB) ListExerciseCompletions(ctx context.Context, userID, day string) ([]domain.ExerciseCompletion, error) {
	q := "SELECT id, user_id, exercise_id, completed_at, duration FROM exercise_completions WHERE user_id=$1"
	args := []any{userID}
	if day != "" {
		start, err := time.Parse(domain.DayLayout, day)
		if err != nil {
			return nil, err
		}
		q += " AND completed_at >= $2 AND completed_at < $3"
		args = append(args, start, start.AddDate(0, 0, 1))
	}
	q += " ORDER BY completed_at DESC, seq;"

	rows, err := d.sql.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := []domain.ExerciseCompletion{}
	for rows.Next() {
		var c domain.ExerciseCompletion
		if err := rows.Scan(&c.ID, &c.UserID, &c.ExerciseID, &c.CompletedAt, &c.Duration); err != nil {
			return nil, err
		}
		c.CompletedAt = c.CompletedAt.UTC()
		out = append(out, c)
	}
	return out, rows.Err()
}
