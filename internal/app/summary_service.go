package app

import (
	"context"
	"math"
	"time"

	"solerelief/internal/domain"
)

// Pain trends reported by Summary.
const (
	TrendImproving = "improving"
	TrendWorsening = "worsening"
	TrendStable    = "stable"
)

// defaultCoreTarget is the daily goal used when no exercise is marked core.
const defaultCoreTarget = 4

// SummaryService builds the dashboard views over several repositories.
type SummaryService struct {
	exercises   domain.ExerciseRepository
	progress    domain.ProgressRepository
	completions domain.CompletionRepository
}

// NewSummaryService creates a SummaryService backed by the given repositories.
func NewSummaryService(ex domain.ExerciseRepository, pr domain.ProgressRepository, co domain.CompletionRepository) *SummaryService {
	return &SummaryService{exercises: ex, progress: pr, completions: co}
}

// Summary is the home-screen snapshot for one day.
type Summary struct {
	Today          string                `json:"today"`
	CompletedToday int                   `json:"completedToday"`
	CoreTarget     int                   `json:"coreTarget"`
	Percent        int                   `json:"percent"`
	TodayEntry     *domain.ProgressEntry `json:"todayEntry"`
	AveragePain7   *float64              `json:"averagePain7"`
	Trend          *string               `json:"trend"`
}

// PainPoint is one day of the pain chart. PainLevel is nil on days without
// an entry.
type PainPoint struct {
	Day       string `json:"day"`
	PainLevel *int   `json:"painLevel"`
}

// Today returns userID's dashboard for the calendar day today.
func (s *SummaryService) Today(ctx context.Context, userID, today string) (*Summary, error) {
	if err := validDay("today", today); err != nil {
		return nil, err
	}

	done, err := s.completions.ListExerciseCompletions(ctx, userID, today)
	if err != nil {
		return nil, err
	}

	core := true
	coreExercises, err := s.exercises.ListExercises(ctx, domain.ExerciseFilter{IsCore: &core})
	if err != nil {
		return nil, err
	}
	target := len(coreExercises)
	if target == 0 {
		target = defaultCoreTarget
	}

	entry, err := s.progress.GetProgressEntryByDate(ctx, userID, today)
	if err != nil {
		return nil, err
	}

	recent, err := s.progress.ListProgressEntries(ctx, userID, 14)
	if err != nil {
		return nil, err
	}

	return &Summary{
		Today:          today,
		CompletedToday: len(done),
		CoreTarget:     target,
		Percent:        int(math.Round(float64(len(done)) / float64(target) * 100)),
		TodayEntry:     entry,
		AveragePain7:   averagePain(recent, 0, 7),
		Trend:          painTrend(recent),
	}, nil
}

// PainSeries returns one point per day for the last days days ending on
// today, oldest first.
func (s *SummaryService) PainSeries(ctx context.Context, userID string, days int, today time.Time) ([]PainPoint, error) {
	if days <= 0 {
		return nil, invalid("days", "must be > 0")
	}
	if days > 366 {
		days = 366
	}

	entries, err := s.progress.ListProgressEntries(ctx, userID, 0)
	if err != nil {
		return nil, err
	}

	// Entries sharing a date arrive in creation order; keep the first.
	byDay := make(map[string]int, len(entries))
	for _, e := range entries {
		if _, seen := byDay[e.Date]; !seen {
			byDay[e.Date] = e.PainLevel
		}
	}

	points := make([]PainPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		dayStr := today.AddDate(0, 0, -i).Format(domain.DayLayout)

		var pain *int
		if v, ok := byDay[dayStr]; ok {
			pain = &v
		}
		points = append(points, PainPoint{Day: dayStr, PainLevel: pain})
	}
	return points, nil
}

// averagePain averages entries[from:to], clipped to the slice. It returns
// nil when the window is empty.
func averagePain(entries []domain.ProgressEntry, from, to int) *float64 {
	if to > len(entries) {
		to = len(entries)
	}
	if from >= to {
		return nil
	}
	sum := 0
	for _, e := range entries[from:to] {
		sum += e.PainLevel
	}
	avg := float64(sum) / float64(to-from)
	return &avg
}

// painTrend compares the newest week of entries with the week before it.
// Entries must be sorted newest first.
func painTrend(entries []domain.ProgressEntry) *string {
	if len(entries) < 2 {
		return nil
	}
	recent := averagePain(entries, 0, 7)
	older := averagePain(entries, 7, 14)
	if recent == nil || older == nil {
		return nil
	}
	trend := TrendStable
	switch {
	case *recent < *older:
		trend = TrendImproving
	case *recent > *older:
		trend = TrendWorsening
	}
	return &trend
}
