package domain

import (
	"context"
	"time"
)

// ProgressEntry is a daily pain and activity log.
type ProgressEntry struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"userId"`
	Date               string    `json:"date"`
	PainLevel          int       `json:"painLevel"`
	ExercisesCompleted int       `json:"exercisesCompleted"`
	WalkingSteps       int       `json:"walkingSteps"`
	Notes              *string   `json:"notes"`
	CreatedAt          time.Time `json:"createdAt"`
}

// NewProgressEntry carries the caller-supplied fields of a progress entry.
// Omitted counters default to zero.
type NewProgressEntry struct {
	UserID             string  `json:"userId"`
	Date               string  `json:"date"`
	PainLevel          int     `json:"painLevel"`
	ExercisesCompleted int     `json:"exercisesCompleted"`
	WalkingSteps       int     `json:"walkingSteps"`
	Notes              *string `json:"notes"`
}

// ProgressEntryPatch is a partial update. Nil fields are left unchanged.
type ProgressEntryPatch struct {
	UserID             *string `json:"userId"`
	Date               *string `json:"date"`
	PainLevel          *int    `json:"painLevel"`
	ExercisesCompleted *int    `json:"exercisesCompleted"`
	WalkingSteps       *int    `json:"walkingSteps"`
	Notes              *string `json:"notes"`
}

// Build returns the stored form of in.
func (in NewProgressEntry) Build(id string, createdAt time.Time) ProgressEntry {
	return ProgressEntry{
		ID:                 id,
		UserID:             in.UserID,
		Date:               in.Date,
		PainLevel:          in.PainLevel,
		ExercisesCompleted: in.ExercisesCompleted,
		WalkingSteps:       in.WalkingSteps,
		Notes:              cloneString(in.Notes),
		CreatedAt:          createdAt,
	}
}

// Apply merges the supplied fields of p over e.
func (p ProgressEntryPatch) Apply(e *ProgressEntry) {
	if p.UserID != nil {
		e.UserID = *p.UserID
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.PainLevel != nil {
		e.PainLevel = *p.PainLevel
	}
	if p.ExercisesCompleted != nil {
		e.ExercisesCompleted = *p.ExercisesCompleted
	}
	if p.WalkingSteps != nil {
		e.WalkingSteps = *p.WalkingSteps
	}
	if p.Notes != nil {
		e.Notes = cloneString(p.Notes)
	}
}

// Clone returns a deep copy of e.
func (e ProgressEntry) Clone() ProgressEntry {
	out := e
	out.Notes = cloneString(e.Notes)
	return out
}

// ProgressRepository is the port for progress-entry persistence.
//
// Several entries may share a (userID, date) pair; GetProgressEntryByDate
// returns the earliest-created one.
type ProgressRepository interface {
	// ListProgressEntries returns a user's entries, newest date first.
	// Entries sharing a date keep creation order. A limit <= 0 returns
	// every entry.
	ListProgressEntries(ctx context.Context, userID string, limit int) ([]ProgressEntry, error)
	GetProgressEntryByDate(ctx context.Context, userID, date string) (*ProgressEntry, error)
	CreateProgressEntry(ctx context.Context, in NewProgressEntry) (*ProgressEntry, error)
	UpdateProgressEntry(ctx context.Context, id string, patch ProgressEntryPatch) (*ProgressEntry, error)
}
