package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"solerelief/internal/domain"
)

const progressColumns = "id, user_id, date, pain_level, exercises_completed, walking_steps, notes, created_at"

func scanProgress(sc scanner) (domain.ProgressEntry, error) {
	var e domain.ProgressEntry
	err := sc.Scan(&e.ID, &e.UserID, &e.Date, &e.PainLevel, &e.ExercisesCompleted,
		&e.WalkingSteps, &e.Notes, &e.CreatedAt)
	return e, err
}

// ListProgressEntries returns userID's entries, newest date first. Entries
// sharing a date keep creation order. A limit <= 0 returns every entry.
func (d *DB) ListProgressEntries(ctx context.Context, userID string, limit int) ([]domain.ProgressEntry, error) {
	q := "SELECT " + progressColumns + " FROM progress_entries WHERE user_id=$1 ORDER BY date DESC, seq"
	args := []any{userID}
	if limit > 0 {
		q += " LIMIT $2"
		args = append(args, limit)
	}

	rows, err := d.sql.QueryContext(ctx, q+";", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := []domain.ProgressEntry{}
	for rows.Next() {
		e, err := scanProgress(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// GetProgressEntryByDate returns the earliest-created entry for userID on
// date, or nil if there is none.
func (d *DB) GetProgressEntryByDate(ctx context.Context, userID, date string) (*domain.ProgressEntry, error) {
	e, err := scanProgress(d.sql.QueryRowContext(ctx,
		"SELECT "+progressColumns+" FROM progress_entries WHERE user_id=$1 AND date=$2 ORDER BY seq LIMIT 1;",
		userID, date))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// CreateProgressEntry stores in under a new id.
func (d *DB) CreateProgressEntry(ctx context.Context, in domain.NewProgressEntry) (*domain.ProgressEntry, error) {
	e := in.Build(newID(), d.now().UTC())
	_, err := d.sql.ExecContext(ctx,
		"INSERT INTO progress_entries("+progressColumns+") VALUES($1, $2, $3, $4, $5, $6, $7, $8);",
		e.ID, e.UserID, e.Date, e.PainLevel, e.ExercisesCompleted, e.WalkingSteps, e.Notes, e.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert progress entry: %w", err)
	}
	return &e, nil
}

// UpdateProgressEntry applies patch to the entry with id. It returns nil if
// none exists.
func (d *DB) UpdateProgressEntry(ctx context.Context, id string, patch domain.ProgressEntryPatch) (*domain.ProgressEntry, error) {
	var out *domain.ProgressEntry
	err := d.inTx(ctx, func(tx *sql.Tx) error {
		e, err := scanProgress(tx.QueryRowContext(ctx,
			"SELECT "+progressColumns+" FROM progress_entries WHERE id=$1 FOR UPDATE;", id))
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		patch.Apply(&e)
		_, err = tx.ExecContext(ctx,
			`UPDATE progress_entries SET user_id=$2, date=$3, pain_level=$4, exercises_completed=$5,
			walking_steps=$6, notes=$7 WHERE id=$1;`,
			e.ID, e.UserID, e.Date, e.PainLevel, e.ExercisesCompleted, e.WalkingSteps, e.Notes,
		)
		if err != nil {
			return fmt.Errorf("update progress entry: %w", err)
		}
		out = &e
		return nil
	})
	return out, err
}
