package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"solerelief/internal/domain"
)

const profileColumns = "id, name, injury_date, severity_level, goals, preferred_reminder_times, created_at"

func scanProfile(sc scanner) (domain.UserProfile, error) {
	var u domain.UserProfile
	err := sc.Scan(&u.ID, &u.Name, &u.InjuryDate, &u.SeverityLevel,
		pq.Array(&u.Goals), pq.Array(&u.PreferredReminderTimes), &u.CreatedAt)
	if u.Goals == nil {
		u.Goals = []string{}
	}
	if u.PreferredReminderTimes == nil {
		u.PreferredReminderTimes = []string{}
	}
	return u, err
}

func insertProfile(ctx context.Context, ex execer, u domain.UserProfile) error {
	_, err := ex.ExecContext(ctx,
		"INSERT INTO user_profiles("+profileColumns+") VALUES($1, $2, $3, $4, $5, $6, $7);",
		u.ID, u.Name, u.InjuryDate, string(u.SeverityLevel),
		pq.Array(u.Goals), pq.Array(u.PreferredReminderTimes), u.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

// GetUserProfile returns the profile with id, or nil if none exists.
func (d *DB) GetUserProfile(ctx context.Context, id string) (*domain.UserProfile, error) {
	u, err := scanProfile(d.sql.QueryRowContext(ctx,
		"SELECT "+profileColumns+" FROM user_profiles WHERE id=$1;", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateUserProfile stores in under a new id.
func (d *DB) CreateUserProfile(ctx context.Context, in domain.NewUserProfile) (*domain.UserProfile, error) {
	u := in.Build(newID(), d.now().UTC())
	if err := insertProfile(ctx, d.sql, u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateUserProfile applies patch to the profile with id. It returns nil if
// none exists.
func (d *DB) UpdateUserProfile(ctx context.Context, id string, patch domain.UserProfilePatch) (*domain.UserProfile, error) {
	var out *domain.UserProfile
	err := d.inTx(ctx, func(tx *sql.Tx) error {
		u, err := scanProfile(tx.QueryRowContext(ctx,
			"SELECT "+profileColumns+" FROM user_profiles WHERE id=$1 FOR UPDATE;", id))
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		patch.Apply(&u)
		_, err = tx.ExecContext(ctx,
			`UPDATE user_profiles SET name=$2, injury_date=$3, severity_level=$4, goals=$5,
			preferred_reminder_times=$6 WHERE id=$1;`,
			u.ID, u.Name, u.InjuryDate, string(u.SeverityLevel),
			pq.Array(u.Goals), pq.Array(u.PreferredReminderTimes),
		)
		if err != nil {
			return fmt.Errorf("update profile: %w", err)
		}
		out = &u
		return nil
	})
	return out, err
}
