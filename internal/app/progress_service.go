package app

import (
	"context"

	"solerelief/internal/domain"
)

// ProgressService encapsulates pain and activity logging use cases.
type ProgressService struct {
	repo domain.ProgressRepository
}

// NewProgressService creates a ProgressService backed by the given repository.
func NewProgressService(repo domain.ProgressRepository) *ProgressService {
	return &ProgressService{repo: repo}
}

// ListRecent returns userID's entries, newest date first. limit <= 0 means
// no limit.
func (s *ProgressService) ListRecent(ctx context.Context, userID string, limit int) ([]domain.ProgressEntry, error) {
	return s.repo.ListProgressEntries(ctx, userID, limit)
}

// GetForDay returns userID's entry for day, or nil.
func (s *ProgressService) GetForDay(ctx context.Context, userID, day string) (*domain.ProgressEntry, error) {
	return s.repo.GetProgressEntryByDate(ctx, userID, day)
}

// Record validates and stores a new entry. Entries for a day that already
// has one are accepted; GetForDay keeps returning the earliest.
func (s *ProgressService) Record(ctx context.Context, in domain.NewProgressEntry) (*domain.ProgressEntry, error) {
	err := firstErr(
		required("userId", in.UserID),
		validDay("date", in.Date),
		validPain(in.PainLevel),
		validCount("exercisesCompleted", in.ExercisesCompleted),
		validCount("walkingSteps", in.WalkingSteps),
	)
	if err != nil {
		return nil, err
	}
	return s.repo.CreateProgressEntry(ctx, in)
}

// Update validates the supplied fields and applies them. It returns nil if
// the entry does not exist.
func (s *ProgressService) Update(ctx context.Context, id string, p domain.ProgressEntryPatch) (*domain.ProgressEntry, error) {
	var errs []error
	if p.UserID != nil {
		errs = append(errs, required("userId", *p.UserID))
	}
	if p.Date != nil {
		errs = append(errs, validDay("date", *p.Date))
	}
	if p.PainLevel != nil {
		errs = append(errs, validPain(*p.PainLevel))
	}
	if p.ExercisesCompleted != nil {
		errs = append(errs, validCount("exercisesCompleted", *p.ExercisesCompleted))
	}
	if p.WalkingSteps != nil {
		errs = append(errs, validCount("walkingSteps", *p.WalkingSteps))
	}
	if err := firstErr(errs...); err != nil {
		return nil, err
	}
	return s.repo.UpdateProgressEntry(ctx, id, p)
}

func validPain(n int) error {
	if n < 1 || n > 10 {
		return invalid("painLevel", "must be within [1, 10]")
	}
	return nil
}

func validCount(field string, n int) error {
	if n < 0 {
		return invalid(field, "must be >= 0")
	}
	return nil
}
