package domain

import (
	"context"
	"time"
)

// ExerciseCompletion records that a user finished an exercise.
type ExerciseCompletion struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	ExerciseID  string    `json:"exerciseId"`
	CompletedAt time.Time `json:"completedAt"`
	Duration    *int      `json:"duration"`
}

// NewExerciseCompletion carries the caller-supplied fields of a completion.
type NewExerciseCompletion struct {
	UserID     string `json:"userId"`
	ExerciseID string `json:"exerciseId"`
	Duration   *int   `json:"duration"`
}

// Build returns the stored form of in.
func (in NewExerciseCompletion) Build(id string, completedAt time.Time) ExerciseCompletion {
	return ExerciseCompletion{
		ID:          id,
		UserID:      in.UserID,
		ExerciseID:  in.ExerciseID,
		CompletedAt: completedAt,
		Duration:    cloneInt(in.Duration),
	}
}

// Clone returns a deep copy of c.
func (c ExerciseCompletion) Clone() ExerciseCompletion {
	out := c
	out.Duration = cloneInt(c.Duration)
	return out
}

// CompletedOn reports whether c falls on the UTC calendar day day.
func (c ExerciseCompletion) CompletedOn(day string) bool {
	return c.CompletedAt.UTC().Format(DayLayout) == day
}

// CompletionRepository is the port for exercise-completion persistence.
// Completions are append-only.
type CompletionRepository interface {
	CreateExerciseCompletion(ctx context.Context, in NewExerciseCompletion) (*ExerciseCompletion, error)
	// ListExerciseCompletions returns a user's completions, newest first.
	// A non-empty day keeps only completions on that UTC calendar day.
	ListExerciseCompletions(ctx context.Context, userID, day string) ([]ExerciseCompletion, error)
}
