// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
)

// Category groups exercises by the kind of work they do.
type Category string

// Exercise categories.
const (
	CategoryStretching    Category = "stretching"
	CategoryStrengthening Category = "strengthening"
	CategoryMassage       Category = "massage"
)

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryStretching, CategoryStrengthening, CategoryMassage:
		return true
	}
	return false
}

// Difficulty is the skill level an exercise is aimed at.
type Difficulty string

// Exercise difficulty levels.
const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Valid reports whether d is a known difficulty.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// Exercise is a single entry in the recovery exercise library.
type Exercise struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Instructions string     `json:"instructions"`
	ImageURL     string     `json:"imageUrl"`
	VideoURL     *string    `json:"videoUrl"`
	Category     Category   `json:"category"`
	Duration     int        `json:"duration"`
	Difficulty   Difficulty `json:"difficulty"`
	Tags         []string   `json:"tags"`
	IsCore       bool       `json:"isCore"`
}

// NewExercise carries the caller-supplied fields of an exercise.
type NewExercise struct {
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Instructions string     `json:"instructions"`
	ImageURL     string     `json:"imageUrl"`
	VideoURL     *string    `json:"videoUrl"`
	Category     Category   `json:"category"`
	Duration     int        `json:"duration"`
	Difficulty   Difficulty `json:"difficulty"`
	Tags         []string   `json:"tags"`
	IsCore       bool       `json:"isCore"`
}

// ExercisePatch is a partial update. Nil fields are left unchanged.
type ExercisePatch struct {
	Name         *string     `json:"name"`
	Description  *string     `json:"description"`
	Instructions *string     `json:"instructions"`
	ImageURL     *string     `json:"imageUrl"`
	VideoURL     *string     `json:"videoUrl"`
	Category     *Category   `json:"category"`
	Duration     *int        `json:"duration"`
	Difficulty   *Difficulty `json:"difficulty"`
	Tags         *[]string   `json:"tags"`
	IsCore       *bool       `json:"isCore"`
}

// ExerciseFilter narrows an exercise listing. Every non-empty field must
// match; empty fields impose no constraint.
type ExerciseFilter struct {
	Category   Category
	Difficulty Difficulty
	IsCore     *bool
	// Query is a case-insensitive substring matched against name,
	// description and tags.
	Query string
}

// Apply merges the supplied fields of p over e.
func (p ExercisePatch) Apply(e *Exercise) {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Instructions != nil {
		e.Instructions = *p.Instructions
	}
	if p.ImageURL != nil {
		e.ImageURL = *p.ImageURL
	}
	if p.VideoURL != nil {
		v := *p.VideoURL
		e.VideoURL = &v
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.Duration != nil {
		e.Duration = *p.Duration
	}
	if p.Difficulty != nil {
		e.Difficulty = *p.Difficulty
	}
	if p.Tags != nil {
		e.Tags = cloneStrings(*p.Tags)
	}
	if p.IsCore != nil {
		e.IsCore = *p.IsCore
	}
}

// Matches reports whether e satisfies every constraint in f.
func (f ExerciseFilter) Matches(e Exercise) bool {
	if f.Category != "" && e.Category != f.Category {
		return false
	}
	if f.Difficulty != "" && e.Difficulty != f.Difficulty {
		return false
	}
	if f.IsCore != nil && e.IsCore != *f.IsCore {
		return false
	}
	if f.Query != "" && !matchesQuery(e, f.Query) {
		return false
	}
	return true
}

// Clone returns a deep copy of e.
func (e Exercise) Clone() Exercise {
	out := e
	out.Tags = cloneStrings(e.Tags)
	out.VideoURL = cloneString(e.VideoURL)
	return out
}

// ExerciseRepository is the port for the exercise library.
type ExerciseRepository interface {
	ListExercises(ctx context.Context, filter ExerciseFilter) ([]Exercise, error)
	GetExercise(ctx context.Context, id string) (*Exercise, error)
	CreateExercise(ctx context.Context, in NewExercise) (*Exercise, error)
	UpdateExercise(ctx context.Context, id string, patch ExercisePatch) (*Exercise, error)
}

// Build returns the stored form of in under the given id.
func (in NewExercise) Build(id string) Exercise {
	return Exercise{
		ID:           id,
		Name:         in.Name,
		Description:  in.Description,
		Instructions: in.Instructions,
		ImageURL:     in.ImageURL,
		VideoURL:     cloneString(in.VideoURL),
		Category:     in.Category,
		Duration:     in.Duration,
		Difficulty:   in.Difficulty,
		Tags:         cloneStrings(in.Tags),
		IsCore:       in.IsCore,
	}
}
