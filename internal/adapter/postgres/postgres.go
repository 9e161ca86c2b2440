// Package postgres implements the entity store on PostgreSQL. It is used
// instead of the in-memory store when a database URL is configured.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"solerelief/internal/domain"
)

var _ domain.Store = (*DB)(nil)

// DB wraps a *sql.DB and implements domain repository interfaces.
type DB struct {
	sql *sql.DB
	now func() time.Time
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// Open connects to PostgreSQL, pings, runs migrations and seeds an empty
// database. The seeded reminders and profile belong to userID.
func Open(connStr, userID string) (*DB, error) {
	s, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	s.SetMaxOpenConns(10)
	s.SetMaxIdleConns(5)
	s.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.PingContext(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}

	d := &DB{sql: s, now: time.Now}
	if err := d.migrate(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	if err := d.seed(ctx, userID); err != nil {
		_ = s.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the underlying database connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

func (d *DB) migrate(ctx context.Context) error {
	// seq records insertion order, which several listings preserve.
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS exercises (
			seq BIGSERIAL UNIQUE,
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL,
			instructions TEXT NOT NULL,
			image_url TEXT NOT NULL,
			video_url TEXT,
			category TEXT NOT NULL CHECK(category IN ('stretching','strengthening','massage')),
			duration INTEGER NOT NULL,
			difficulty TEXT NOT NULL CHECK(difficulty IN ('beginner','intermediate','advanced')),
			tags TEXT[] NOT NULL DEFAULT '{}',
			is_core BOOLEAN NOT NULL DEFAULT FALSE
		);`,
		`CREATE TABLE IF NOT EXISTS reminders (
			seq BIGSERIAL UNIQUE,
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			type TEXT NOT NULL CHECK(type IN ('stretch','walk','check-in')),
			title TEXT NOT NULL,
			message TEXT NOT NULL,
			time TEXT NOT NULL,
			days TEXT[] NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL
		);`,
		"CREATE INDEX IF NOT EXISTS idx_reminders_user_id ON reminders(user_id);",
		`CREATE TABLE IF NOT EXISTS progress_entries (
			seq BIGSERIAL UNIQUE,
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			date TEXT NOT NULL,
			pain_level INTEGER NOT NULL,
			exercises_completed INTEGER NOT NULL DEFAULT 0,
			walking_steps INTEGER NOT NULL DEFAULT 0,
			notes TEXT,
			created_at TIMESTAMPTZ NOT NULL
		);`,
		"CREATE INDEX IF NOT EXISTS idx_progress_entries_user_date ON progress_entries(user_id, date);",
		`CREATE TABLE IF NOT EXISTS exercise_completions (
			seq BIGSERIAL UNIQUE,
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			exercise_id TEXT NOT NULL,
			completed_at TIMESTAMPTZ NOT NULL,
			duration INTEGER
		);`,
		"CREATE INDEX IF NOT EXISTS idx_exercise_completions_user_completed ON exercise_completions(user_id, completed_at);",
		`CREATE TABLE IF NOT EXISTS user_profiles (
			id TEXT PRIMARY KEY,
			name TEXT,
			injury_date TEXT,
			severity_level TEXT NOT NULL CHECK(severity_level IN ('mild','moderate','severe')),
			goals TEXT[] NOT NULL DEFAULT '{}',
			preferred_reminder_times TEXT[] NOT NULL DEFAULT '{}',
			created_at TIMESTAMPTZ NOT NULL
		);`,
	}

	for _, stmt := range stmts {
		if _, err := d.sql.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// seed inserts the built-in data the first time the database is opened.
func (d *DB) seed(ctx context.Context, userID string) error {
	var n int
	if err := d.sql.QueryRowContext(ctx, "SELECT COUNT(1) FROM exercises;").Scan(&n); err != nil {
		return fmt.Errorf("seed: count exercises: %w", err)
	}
	if n > 0 {
		return nil
	}

	return d.inTx(ctx, func(tx *sql.Tx) error {
		for _, in := range domain.SeedExercises() {
			if err := insertExercise(ctx, tx, in.Build(newID())); err != nil {
				return fmt.Errorf("seed: %w", err)
			}
		}
		now := d.now().UTC()
		for _, in := range domain.SeedReminders(userID) {
			if err := insertReminder(ctx, tx, in.Build(newID(), now)); err != nil {
				return fmt.Errorf("seed: %w", err)
			}
		}
		p := domain.SeedProfile().Build(userID, now)
		if err := insertProfile(ctx, tx, p); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		return nil
	})
}

// inTx runs fn in a transaction, committing when it returns nil.
func (d *DB) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := d.sql.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func newID() string {
	return uuid.NewString()
}
