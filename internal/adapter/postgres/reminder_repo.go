package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"solerelief/internal/domain"
)

const reminderColumns = "id, user_id, type, title, message, time, days, is_active, created_at"

func scanReminder(sc scanner) (domain.Reminder, error) {
	var r domain.Reminder
	err := sc.Scan(&r.ID, &r.UserID, &r.Type, &r.Title, &r.Message, &r.Time,
		pq.Array(&r.Days), &r.IsActive, &r.CreatedAt)
	return r, err
}

func insertReminder(ctx context.Context, ex execer, r domain.Reminder) error {
	_, err := ex.ExecContext(ctx,
		"INSERT INTO reminders("+reminderColumns+") VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9);",
		r.ID, r.UserID, string(r.Type), r.Title, r.Message, r.Time, pq.Array(r.Days), r.IsActive, r.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert reminder: %w", err)
	}
	return nil
}

// ListReminders returns userID's reminders in creation order.
func (d *DB) ListReminders(ctx context.Context, userID string) ([]domain.Reminder, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT "+reminderColumns+" FROM reminders WHERE user_id=$1 ORDER BY seq;", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := []domain.Reminder{}
	for rows.Next() {
		r, err := scanReminder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// CreateReminder stores in under a new id.
func (d *DB) CreateReminder(ctx context.Context, in domain.NewReminder) (*domain.Reminder, error) {
	r := in.Build(newID(), d.now().UTC())
	if err := insertReminder(ctx, d.sql, r); err != nil {
		return nil, err
	}
	return &r, nil
}

// UpdateReminder applies patch to the reminder with id. It returns nil if
// none exists.
func (d *DB) UpdateReminder(ctx context.Context, id string, patch domain.ReminderPatch) (*domain.Reminder, error) {
	var out *domain.Reminder
	err := d.inTx(ctx, func(tx *sql.Tx) error {
		r, err := scanReminder(tx.QueryRowContext(ctx,
			"SELECT "+reminderColumns+" FROM reminders WHERE id=$1 FOR UPDATE;", id))
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		patch.Apply(&r)
		_, err = tx.ExecContext(ctx,
			"UPDATE reminders SET user_id=$2, type=$3, title=$4, message=$5, time=$6, days=$7, is_active=$8 WHERE id=$1;",
			r.ID, r.UserID, string(r.Type), r.Title, r.Message, r.Time, pq.Array(r.Days), r.IsActive,
		)
		if err != nil {
			return fmt.Errorf("update reminder: %w", err)
		}
		out = &r
		return nil
	})
	return out, err
}

// DeleteReminder removes the reminder with id and reports whether it existed.
func (d *DB) DeleteReminder(ctx context.Context, id string) (bool, error) {
	res, err := d.sql.ExecContext(ctx, "DELETE FROM reminders WHERE id=$1;", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
