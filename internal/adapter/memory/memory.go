// Package memory implements the in-memory entity store. It is the default
// storage backend; its contents are lost when the process exits.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"solerelief/internal/domain"
)

// DB holds every collection behind a single mutex, so each exported
// operation runs to completion before the next one starts.
type DB struct {
	mu sync.Mutex

	exercises   *table[domain.Exercise]
	reminders   *table[domain.Reminder]
	progress    *table[domain.ProgressEntry]
	completions *table[domain.ExerciseCompletion]
	profiles    *table[domain.UserProfile]

	now func() time.Time
}

// New creates a store populated with the built-in seed data. The seeded
// reminders and profile belong to userID.
func New(userID string) *DB {
	db := NewEmpty()
	db.seed(userID)
	return db
}

// NewEmpty creates a store with no records.
func NewEmpty() *DB {
	return &DB{
		exercises:   newTable[domain.Exercise](),
		reminders:   newTable[domain.Reminder](),
		progress:    newTable[domain.ProgressEntry](),
		completions: newTable[domain.ExerciseCompletion](),
		profiles:    newTable[domain.UserProfile](),
		now:         time.Now,
	}
}

// Ensure interfaces are met.
var _ domain.Store = (*DB)(nil)

func newID() string {
	return uuid.NewString()
}

func (db *DB) seed(userID string) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, in := range domain.SeedExercises() {
		id := newID()
		db.exercises.put(id, in.Build(id))
	}
	now := db.now().UTC()
	for _, in := range domain.SeedReminders(userID) {
		id := newID()
		db.reminders.put(id, in.Build(id, now))
	}
	db.profiles.put(userID, domain.SeedProfile().Build(userID, now))
}

// --- ExerciseRepository ---

// ListExercises returns the exercises matching filter in creation order.
func (db *DB) ListExercises(ctx context.Context, filter domain.ExerciseFilter) ([]domain.Exercise, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := make([]domain.Exercise, 0, db.exercises.len())
	db.exercises.each(func(e domain.Exercise) {
		if filter.Matches(e) {
			result = append(result, e.Clone())
		}
	})
	return result, nil
}

// GetExercise returns the exercise with id, or nil if there is none.
func (db *DB) GetExercise(ctx context.Context, id string) (*domain.Exercise, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	e, ok := db.exercises.get(id)
	if !ok {
		return nil, nil
	}
	ret := e.Clone()
	return &ret, nil
}

// CreateExercise stores a new exercise under a generated id.
func (db *DB) CreateExercise(ctx context.Context, in domain.NewExercise) (*domain.Exercise, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	id := newID()
	e := in.Build(id)
	db.exercises.put(id, e)
	ret := e.Clone()
	return &ret, nil
}

// UpdateExercise merges patch into the stored exercise. It returns nil if
// id is unknown.
func (db *DB) UpdateExercise(ctx context.Context, id string, patch domain.ExercisePatch) (*domain.Exercise, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	e, ok := db.exercises.get(id)
	if !ok {
		return nil, nil
	}
	patch.Apply(&e)
	db.exercises.put(id, e)
	ret := e.Clone()
	return &ret, nil
}

// --- ReminderRepository ---

// ListReminders returns every reminder owned by userID.
func (db *DB) ListReminders(ctx context.Context, userID string) ([]domain.Reminder, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := []domain.Reminder{}
	db.reminders.each(func(r domain.Reminder) {
		if r.UserID == userID {
			result = append(result, r.Clone())
		}
	})
	return result, nil
}

// CreateReminder stores a new reminder.
func (db *DB) CreateReminder(ctx context.Context, in domain.NewReminder) (*domain.Reminder, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	id := newID()
	r := in.Build(id, db.now().UTC())
	db.reminders.put(id, r)
	ret := r.Clone()
	return &ret, nil
}

// UpdateReminder merges patch into the stored reminder.
func (db *DB) UpdateReminder(ctx context.Context, id string, patch domain.ReminderPatch) (*domain.Reminder, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	r, ok := db.reminders.get(id)
	if !ok {
		return nil, nil
	}
	patch.Apply(&r)
	db.reminders.put(id, r)
	ret := r.Clone()
	return &ret, nil
}

// DeleteReminder removes a reminder. It reports false if id is unknown.
func (db *DB) DeleteReminder(ctx context.Context, id string) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.reminders.remove(id), nil
}

// --- ProgressRepository ---

// ListProgressEntries returns userID's entries, newest date first.
func (db *DB) ListProgressEntries(ctx context.Context, userID string, limit int) ([]domain.ProgressEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := []domain.ProgressEntry{}
	db.progress.each(func(e domain.ProgressEntry) {
		if e.UserID == userID {
			result = append(result, e.Clone())
		}
	})

	// Day strings sort lexically in calendar order.
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date > result[j].Date
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// GetProgressEntryByDate returns the first-created entry for userID on
// date, or nil.
func (db *DB) GetProgressEntryByDate(ctx context.Context, userID, date string) (*domain.ProgressEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var found *domain.ProgressEntry
	db.progress.each(func(e domain.ProgressEntry) {
		if found == nil && e.UserID == userID && e.Date == date {
			ret := e.Clone()
			found = &ret
		}
	})
	return found, nil
}

// CreateProgressEntry stores a new progress entry.
func (db *DB) CreateProgressEntry(ctx context.Context, in domain.NewProgressEntry) (*domain.ProgressEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	id := newID()
	e := in.Build(id, db.now().UTC())
	db.progress.put(id, e)
	ret := e.Clone()
	return &ret, nil
}

// UpdateProgressEntry merges patch into the stored entry.
func (db *DB) UpdateProgressEntry(ctx context.Context, id string, patch domain.ProgressEntryPatch) (*domain.ProgressEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	e, ok := db.progress.get(id)
	if !ok {
		return nil, nil
	}
	patch.Apply(&e)
	db.progress.put(id, e)
	ret := e.Clone()
	return &ret, nil
}

// --- CompletionRepository ---

// CreateExerciseCompletion stores a completion stamped with the current time.
func (db *DB) CreateExerciseCompletion(ctx context.Context, in domain.NewExerciseCompletion) (*domain.ExerciseCompletion, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	id := newID()
	c := in.Build(id, db.now().UTC())
	db.completions.put(id, c)
	ret := c.Clone()
	return &ret, nil
}

// ListExerciseCompletions returns userID's completions, newest first,
// optionally restricted to one UTC day.
func (db *DB) ListExerciseCompletions(ctx context.Context, userID, day string) ([]domain.ExerciseCompletion, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := []domain.ExerciseCompletion{}
	db.completions.each(func(c domain.ExerciseCompletion) {
		if c.UserID != userID {
			return
		}
		if day != "" && !c.CompletedOn(day) {
			return
		}
		result = append(result, c.Clone())
	})

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CompletedAt.After(result[j].CompletedAt)
	})
	return result, nil
}

// --- ProfileRepository ---

// GetUserProfile returns the profile with id, or nil.
func (db *DB) GetUserProfile(ctx context.Context, id string) (*domain.UserProfile, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	p, ok := db.profiles.get(id)
	if !ok {
		return nil, nil
	}
	ret := p.Clone()
	return &ret, nil
}

// CreateUserProfile stores a new profile under a generated id.
func (db *DB) CreateUserProfile(ctx context.Context, in domain.NewUserProfile) (*domain.UserProfile, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	id := newID()
	p := in.Build(id, db.now().UTC())
	db.profiles.put(id, p)
	ret := p.Clone()
	return &ret, nil
}

// UpdateUserProfile merges patch into the stored profile.
func (db *DB) UpdateUserProfile(ctx context.Context, id string, patch domain.UserProfilePatch) (*domain.UserProfile, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	p, ok := db.profiles.get(id)
	if !ok {
		return nil, nil
	}
	patch.Apply(&p)
	db.profiles.put(id, p)
	ret := p.Clone()
	return &ret, nil
}
