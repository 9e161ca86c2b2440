package app_test

import (
	"context"
	"time"

	"solerelief/internal/domain"
)

type mockExerciseRepo struct {
	listFn   func(ctx context.Context, f domain.ExerciseFilter) ([]domain.Exercise, error)
	getFn    func(ctx context.Context, id string) (*domain.Exercise, error)
	createFn func(ctx context.Context, in domain.NewExercise) (*domain.Exercise, error)
	updateFn func(ctx context.Context, id string, p domain.ExercisePatch) (*domain.Exercise, error)
}

func (m *mockExerciseRepo) ListExercises(ctx context.Context, f domain.ExerciseFilter) ([]domain.Exercise, error) {
	if m.listFn != nil {
		return m.listFn(ctx, f)
	}
	return nil, nil
}

func (m *mockExerciseRepo) GetExercise(ctx context.Context, id string) (*domain.Exercise, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, nil
}

func (m *mockExerciseRepo) CreateExercise(ctx context.Context, in domain.NewExercise) (*domain.Exercise, error) {
	if m.createFn != nil {
		return m.createFn(ctx, in)
	}
	e := in.Build("ex-1")
	return &e, nil
}

func (m *mockExerciseRepo) UpdateExercise(ctx context.Context, id string, p domain.ExercisePatch) (*domain.Exercise, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, p)
	}
	return nil, nil
}

type mockReminderRepo struct {
	listFn   func(ctx context.Context, userID string) ([]domain.Reminder, error)
	createFn func(ctx context.Context, in domain.NewReminder) (*domain.Reminder, error)
	updateFn func(ctx context.Context, id string, p domain.ReminderPatch) (*domain.Reminder, error)
	deleteFn func(ctx context.Context, id string) (bool, error)
}

func (m *mockReminderRepo) ListReminders(ctx context.Context, userID string) ([]domain.Reminder, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockReminderRepo) CreateReminder(ctx context.Context, in domain.NewReminder) (*domain.Reminder, error) {
	if m.createFn != nil {
		return m.createFn(ctx, in)
	}
	return &domain.Reminder{ID: "r-1", UserID: in.UserID, Title: in.Title}, nil
}

func (m *mockReminderRepo) UpdateReminder(ctx context.Context, id string, p domain.ReminderPatch) (*domain.Reminder, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, p)
	}
	return nil, nil
}

func (m *mockReminderRepo) DeleteReminder(ctx context.Context, id string) (bool, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return false, nil
}

type mockProgressRepo struct {
	listFn   func(ctx context.Context, userID string, limit int) ([]domain.ProgressEntry, error)
	byDateFn func(ctx context.Context, userID, date string) (*domain.ProgressEntry, error)
	createFn func(ctx context.Context, in domain.NewProgressEntry) (*domain.ProgressEntry, error)
	updateFn func(ctx context.Context, id string, p domain.ProgressEntryPatch) (*domain.ProgressEntry, error)
}

func (m *mockProgressRepo) ListProgressEntries(ctx context.Context, userID string, limit int) ([]domain.ProgressEntry, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, limit)
	}
	return nil, nil
}

func (m *mockProgressRepo) GetProgressEntryByDate(ctx context.Context, userID, date string) (*domain.ProgressEntry, error) {
	if m.byDateFn != nil {
		return m.byDateFn(ctx, userID, date)
	}
	return nil, nil
}

func (m *mockProgressRepo) CreateProgressEntry(ctx context.Context, in domain.NewProgressEntry) (*domain.ProgressEntry, error) {
	if m.createFn != nil {
		return m.createFn(ctx, in)
	}
	return &domain.ProgressEntry{ID: "p-1", UserID: in.UserID, Date: in.Date, PainLevel: in.PainLevel}, nil
}

func (m *mockProgressRepo) UpdateProgressEntry(ctx context.Context, id string, p domain.ProgressEntryPatch) (*domain.ProgressEntry, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, p)
	}
	return nil, nil
}

type mockCompletionRepo struct {
	createFn func(ctx context.Context, in domain.NewExerciseCompletion) (*domain.ExerciseCompletion, error)
	listFn   func(ctx context.Context, userID, day string) ([]domain.ExerciseCompletion, error)
}

func (m *mockCompletionRepo) CreateExerciseCompletion(ctx context.Context, in domain.NewExerciseCompletion) (*domain.ExerciseCompletion, error) {
	if m.createFn != nil {
		return m.createFn(ctx, in)
	}
	return &domain.ExerciseCompletion{ID: "c-1", UserID: in.UserID, ExerciseID: in.ExerciseID}, nil
}

func (m *mockCompletionRepo) ListExerciseCompletions(ctx context.Context, userID, day string) ([]domain.ExerciseCompletion, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, day)
	}
	return nil, nil
}

type mockProfileRepo struct {
	getFn    func(ctx context.Context, id string) (*domain.UserProfile, error)
	createFn func(ctx context.Context, in domain.NewUserProfile) (*domain.UserProfile, error)
	updateFn func(ctx context.Context, id string, p domain.UserProfilePatch) (*domain.UserProfile, error)
}

func (m *mockProfileRepo) GetUserProfile(ctx context.Context, id string) (*domain.UserProfile, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, nil
}

func (m *mockProfileRepo) CreateUserProfile(ctx context.Context, in domain.NewUserProfile) (*domain.UserProfile, error) {
	if m.createFn != nil {
		return m.createFn(ctx, in)
	}
	p := in.Build("prof-1", time.Time{})
	return &p, nil
}

func (m *mockProfileRepo) UpdateUserProfile(ctx context.Context, id string, p domain.UserProfilePatch) (*domain.UserProfile, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, p)
	}
	return nil, nil
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
