package app

import (
	"context"

	"solerelief/internal/domain"
)

// ExerciseService encapsulates the exercise library use cases.
type ExerciseService struct {
	repo domain.ExerciseRepository
}

// NewExerciseService creates an ExerciseService backed by the given repository.
func NewExerciseService(repo domain.ExerciseRepository) *ExerciseService {
	return &ExerciseService{repo: repo}
}

// List returns the exercises matching filter.
func (s *ExerciseService) List(ctx context.Context, filter domain.ExerciseFilter) ([]domain.Exercise, error) {
	return s.repo.ListExercises(ctx, filter)
}

// Get returns a single exercise, or nil if it does not exist.
func (s *ExerciseService) Get(ctx context.Context, id string) (*domain.Exercise, error) {
	return s.repo.GetExercise(ctx, id)
}

// Create validates and stores a new exercise.
func (s *ExerciseService) Create(ctx context.Context, in domain.NewExercise) (*domain.Exercise, error) {
	err := firstErr(
		required("name", in.Name),
		required("description", in.Description),
		required("instructions", in.Instructions),
		required("imageUrl", in.ImageURL),
		validCategory(in.Category),
		validDifficulty(in.Difficulty),
		validDuration(in.Duration),
	)
	if err != nil {
		return nil, err
	}
	if in.Tags == nil {
		in.Tags = []string{}
	}
	return s.repo.CreateExercise(ctx, in)
}

// Update validates the supplied fields and applies them. It returns nil if
// the exercise does not exist.
func (s *ExerciseService) Update(ctx context.Context, id string, p domain.ExercisePatch) (*domain.Exercise, error) {
	var errs []error
	if p.Name != nil {
		errs = append(errs, required("name", *p.Name))
	}
	if p.Description != nil {
		errs = append(errs, required("description", *p.Description))
	}
	if p.Instructions != nil {
		errs = append(errs, required("instructions", *p.Instructions))
	}
	if p.ImageURL != nil {
		errs = append(errs, required("imageUrl", *p.ImageURL))
	}
	if p.Category != nil {
		errs = append(errs, validCategory(*p.Category))
	}
	if p.Difficulty != nil {
		errs = append(errs, validDifficulty(*p.Difficulty))
	}
	if p.Duration != nil {
		errs = append(errs, validDuration(*p.Duration))
	}
	if err := firstErr(errs...); err != nil {
		return nil, err
	}
	return s.repo.UpdateExercise(ctx, id, p)
}

func validCategory(c domain.Category) error {
	if !c.Valid() {
		return invalid("category", "must be stretching, strengthening or massage")
	}
	return nil
}

func validDifficulty(d domain.Difficulty) error {
	if !d.Valid() {
		return invalid("difficulty", "must be beginner, intermediate or advanced")
	}
	return nil
}

func validDuration(n int) error {
	if n <= 0 {
		return invalid("duration", "must be > 0")
	}
	return nil
}
