package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"solerelief/internal/domain"
)

const exerciseColumns = "id, name, description, instructions, image_url, video_url, category, duration, difficulty, tags, is_core"

func scanExercise(sc scanner) (domain.Exercise, error) {
	var e domain.Exercise
	err := sc.Scan(&e.ID, &e.Name, &e.Description, &e.Instructions, &e.ImageURL, &e.VideoURL,
		&e.Category, &e.Duration, &e.Difficulty, pq.Array(&e.Tags), &e.IsCore)
	if e.Tags == nil {
		e.Tags = []string{}
	}
	return e, err
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertExercise(ctx context.Context, ex execer, e domain.Exercise) error {
	_, err := ex.ExecContext(ctx,
		"INSERT INTO exercises("+exerciseColumns+") VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);",
		e.ID, e.Name, e.Description, e.Instructions, e.ImageURL, e.VideoURL,
		string(e.Category), e.Duration, string(e.Difficulty), pq.Array(e.Tags), e.IsCore,
	)
	if err != nil {
		return fmt.Errorf("insert exercise: %w", err)
	}
	return nil
}

// ListExercises returns the exercises matching filter in creation order.
// Category, difficulty and the core flag are filtered in SQL; the text query
// is applied afterwards.
func (d *DB) ListExercises(ctx context.Context, filter domain.ExerciseFilter) ([]domain.Exercise, error) {
	var (
		where []string
		args  []any
	)
	if filter.Category != "" {
		args = append(args, string(filter.Category))
		where = append(where, fmt.Sprintf("category=$%d", len(args)))
	}
	if filter.Difficulty != "" {
		args = append(args, string(filter.Difficulty))
		where = append(where, fmt.Sprintf("difficulty=$%d", len(args)))
	}
	if filter.IsCore != nil {
		args = append(args, *filter.IsCore)
		where = append(where, fmt.Sprintf("is_core=$%d", len(args)))
	}

	q := "SELECT " + exerciseColumns + " FROM exercises"
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY seq;"

	rows, err := d.sql.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := []domain.Exercise{}
	for rows.Next() {
		e, err := scanExercise(rows)
		if err != nil {
			return nil, err
		}
		if filter.Matches(e) {
			out = append(out, e)
		}
	}
	return out, rows.Err()
}

// GetExercise returns the exercise with id, or nil if none exists.
func (d *DB) GetExercise(ctx context.Context, id string) (*domain.Exercise, error) {
	e, err := scanExercise(d.sql.QueryRowContext(ctx,
		"SELECT "+exerciseColumns+" FROM exercises WHERE id=$1;", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// CreateExercise stores in under a new id.
func (d *DB) CreateExercise(ctx context.Context, in domain.NewExercise) (*domain.Exercise, error) {
	e := in.Build(newID())
	if err := insertExercise(ctx, d.sql, e); err != nil {
		return nil, err
	}
	return &e, nil
}

// UpdateExercise applies patch to the exercise with id. It returns nil if
// none exists.
func (d *DB) UpdateExercise(ctx context.Context, id string, patch domain.ExercisePatch) (*domain.Exercise, error) {
	var out *domain.Exercise
	err := d.inTx(ctx, func(tx *sql.Tx) error {
		e, err := scanExercise(tx.QueryRowContext(ctx,
			"SELECT "+exerciseColumns+" FROM exercises WHERE id=$1 FOR UPDATE;", id))
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		patch.Apply(&e)
		_, err = tx.ExecContext(ctx,
			`UPDATE exercises SET name=$2, description=$3, instructions=$4, image_url=$5, video_url=$6,
			category=$7, duration=$8, difficulty=$9, tags=$10, is_core=$11 WHERE id=$1;`,
			e.ID, e.Name, e.Description, e.Instructions, e.ImageURL, e.VideoURL,
			string(e.Category), e.Duration, string(e.Difficulty), pq.Array(e.Tags), e.IsCore,
		)
		if err != nil {
			return fmt.Errorf("update exercise: %w", err)
		}
		out = &e
		return nil
	})
	return out, err
}
