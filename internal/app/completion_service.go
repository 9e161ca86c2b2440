package app

import (
	"context"

	"solerelief/internal/domain"
)

// CompletionService records finished exercises.
type CompletionService struct {
	repo domain.CompletionRepository
}

// NewCompletionService creates a CompletionService backed by the given repository.
func NewCompletionService(repo domain.CompletionRepository) *CompletionService {
	return &CompletionService{repo: repo}
}

// Record validates and stores a completion. The completion time is set by
// the store.
func (s *CompletionService) Record(ctx context.Context, in domain.NewExerciseCompletion) (*domain.ExerciseCompletion, error) {
	if err := firstErr(required("userId", in.UserID), required("exerciseId", in.ExerciseID)); err != nil {
		return nil, err
	}
	if in.Duration != nil && *in.Duration < 0 {
		return nil, invalid("duration", "must be >= 0")
	}
	return s.repo.CreateExerciseCompletion(ctx, in)
}

// List returns userID's completions, newest first. A non-empty day keeps
// only completions on that UTC day.
func (s *CompletionService) List(ctx context.Context, userID, day string) ([]domain.ExerciseCompletion, error) {
	if day != "" {
		if err := validDay("date", day); err != nil {
			return nil, err
		}
	}
	return s.repo.ListExerciseCompletions(ctx, userID, day)
}
