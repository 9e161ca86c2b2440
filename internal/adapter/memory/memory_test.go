package memory

import (
	"context"
	"reflect"
	"sort"
	"testing"
	"time"

	"solerelief/internal/domain"
)

func boolPtr(b bool) *bool { return &b }

func TestSeedState(t *testing.T) {
	db := New(domain.DefaultUserID)
	ctx := context.Background()

	exercises, err := db.ListExercises(ctx, domain.ExerciseFilter{})
	if err != nil {
		t.Fatalf("ListExercises: %v", err)
	}
	if len(exercises) != 8 {
		t.Errorf("expected 8 exercises, got %d", len(exercises))
	}

	profile, err := db.GetUserProfile(ctx, domain.DefaultUserID)
	if err != nil {
		t.Fatalf("GetUserProfile: %v", err)
	}
	if profile == nil {
		t.Fatal("expected seeded profile, got nil")
	}
	if profile.SeverityLevel != domain.SeverityModerate {
		t.Errorf("expected moderate severity, got %q", profile.SeverityLevel)
	}
	if len(profile.Goals) != 3 {
		t.Errorf("expected 3 goals, got %d", len(profile.Goals))
	}

	reminders, _ := db.ListReminders(ctx, domain.DefaultUserID)
	if len(reminders) != 4 {
		t.Errorf("expected 4 reminders, got %d", len(reminders))
	}

	progress, _ := db.ListProgressEntries(ctx, domain.DefaultUserID, 0)
	completions, _ := db.ListExerciseCompletions(ctx, domain.DefaultUserID, "")
	if len(progress) != 0 || len(completions) != 0 {
		t.Errorf("expected no progress or completions, got %d and %d", len(progress), len(completions))
	}
}

func TestListExercisesFilterConjunction(t *testing.T) {
	db := New(domain.DefaultUserID)
	ctx := context.Background()

	got, err := db.ListExercises(ctx, domain.ExerciseFilter{
		Category: domain.CategoryStretching,
		IsCore:   boolPtr(true),
	})
	if err != nil {
		t.Fatalf("ListExercises: %v", err)
	}

	names := make([]string, 0, len(got))
	for _, e := range got {
		names = append(names, e.Name)
	}
	sort.Strings(names)
	want := []string{"Achilles Stretch", "Calf Stretch", "Plantar Fascia Stretch", "Towel Stretch"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("expected %v, got %v", want, names)
	}

	nonCore, _ := db.ListExercises(ctx, domain.ExerciseFilter{IsCore: boolPtr(false)})
	if len(nonCore) != 3 {
		t.Errorf("expected 3 non-core exercises, got %d", len(nonCore))
	}

	intermediate, _ := db.ListExercises(ctx, domain.ExerciseFilter{
		Category:   domain.CategoryStrengthening,
		Difficulty: domain.DifficultyIntermediate,
	})
	if len(intermediate) != 2 {
		t.Errorf("expected 2 intermediate strengthening exercises, got %d", len(intermediate))
	}

	towel, _ := db.ListExercises(ctx, domain.ExerciseFilter{Query: "towel"})
	if len(towel) != 2 {
		t.Errorf("expected 2 towel matches, got %d", len(towel))
	}
}

func TestListExercisesCreationOrder(t *testing.T) {
	db := New(domain.DefaultUserID)
	ctx := context.Background()

	all, _ := db.ListExercises(ctx, domain.ExerciseFilter{})
	if all[0].Name != "Calf Stretch" || all[7].Name != "Achilles Stretch" {
		t.Errorf("unexpected order: first=%q last=%q", all[0].Name, all[7].Name)
	}

	created, _ := db.CreateExercise(ctx, domain.NewExercise{Name: "Ankle Circles", Category: domain.CategoryStretching, Duration: 30})
	all, _ = db.ListExercises(ctx, domain.ExerciseFilter{})
	if all[len(all)-1].ID != created.ID {
		t.Error("expected newly created exercise last")
	}
}

func TestExerciseCreateGetUpdate(t *testing.T) {
	db := New(domain.DefaultUserID)
	ctx := context.Background()

	video := "https://example.com/v"
	in := domain.NewExercise{
		Name:         "Ankle Circles",
		Description:  "Loosen the ankle",
		Instructions: "Rotate slowly",
		ImageURL:     "https://example.com/i.png",
		VideoURL:     &video,
		Category:     domain.CategoryStretching,
		Duration:     30,
		Difficulty:   domain.DifficultyBeginner,
		Tags:         []string{"ankle"},
	}
	created, err := db.CreateExercise(ctx, in)
	if err != nil {
		t.Fatalf("CreateExercise: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}

	got, _ := db.GetExercise(ctx, created.ID)
	if got == nil {
		t.Fatal("expected exercise, got nil")
	}
	if want := in.Build(created.ID); !reflect.DeepEqual(*got, want) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", *got, want)
	}

	same, _ := db.UpdateExercise(ctx, created.ID, domain.ExercisePatch{})
	if !reflect.DeepEqual(same, got) {
		t.Errorf("empty patch changed record: %+v", same)
	}

	dur := 45
	updated, _ := db.UpdateExercise(ctx, created.ID, domain.ExercisePatch{Duration: &dur})
	if updated.Duration != 45 || updated.Name != "Ankle Circles" || updated.ID != created.ID {
		t.Errorf("unexpected update result: %+v", updated)
	}

	missing, _ := db.UpdateExercise(ctx, "nope", domain.ExercisePatch{Duration: &dur})
	if missing != nil {
		t.Error("expected nil for unknown id")
	}
	all, _ := db.ListExercises(ctx, domain.ExerciseFilter{})
	if len(all) != 9 {
		t.Errorf("expected 9 exercises, got %d", len(all))
	}
}

func TestReturnedRecordsAreCopies(t *testing.T) {
	db := New(domain.DefaultUserID)
	ctx := context.Background()

	all, _ := db.ListExercises(ctx, domain.ExerciseFilter{})
	all[0].Tags[0] = "mutated"
	all[0].Name = "mutated"

	again, _ := db.GetExercise(ctx, all[0].ID)
	if again.Name == "mutated" || again.Tags[0] == "mutated" {
		t.Error("store shares memory with returned records")
	}
}

func TestReminderLifecycle(t *testing.T) {
	db := New(domain.DefaultUserID)
	ctx := context.Background()

	created, err := db.CreateReminder(ctx, domain.NewReminder{
		UserID:  "u1",
		Type:    domain.ReminderWalk,
		Title:   "Walk",
		Message: "Go for a walk",
		Time:    "12:30",
		Days:    []string{"monday"},
	})
	if err != nil {
		t.Fatalf("CreateReminder: %v", err)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected createdAt to be set")
	}
	if !created.IsActive {
		t.Error("expected reminder to default to active")
	}

	off := false
	updated, _ := db.UpdateReminder(ctx, created.ID, domain.ReminderPatch{IsActive: &off})
	if updated.IsActive || updated.Title != "Walk" || !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("unexpected update result: %+v", updated)
	}

	list, _ := db.ListReminders(ctx, "u1")
	if len(list) != 1 {
		t.Fatalf("expected 1 reminder for u1, got %d", len(list))
	}

	ok, _ := db.DeleteReminder(ctx, created.ID)
	if !ok {
		t.Error("expected delete to succeed")
	}
	list, _ = db.ListReminders(ctx, "u1")
	if len(list) != 0 {
		t.Errorf("expected 0 reminders after delete, got %d", len(list))
	}
	ok, _ = db.DeleteReminder(ctx, created.ID)
	if ok {
		t.Error("expected second delete to report false")
	}

	seeded, _ := db.ListReminders(ctx, domain.DefaultUserID)
	if len(seeded) != 4 {
		t.Errorf("delete touched other reminders: %d left", len(seeded))
	}
}

func TestProgressOrderingAndLimit(t *testing.T) {
	db := NewEmpty()
	ctx := context.Background()

	for _, day := range []string{"2024-01-01", "2024-01-03", "2024-01-02"} {
		if _, err := db.CreateProgressEntry(ctx, domain.NewProgressEntry{UserID: "u1", Date: day, PainLevel: 5}); err != nil {
			t.Fatalf("CreateProgressEntry: %v", err)
		}
	}
	_, _ = db.CreateProgressEntry(ctx, domain.NewProgressEntry{UserID: "u2", Date: "2024-02-01", PainLevel: 2})

	entries, _ := db.ListProgressEntries(ctx, "u1", 0)
	var days []string
	for _, e := range entries {
		days = append(days, e.Date)
	}
	want := []string{"2024-01-03", "2024-01-02", "2024-01-01"}
	if !reflect.DeepEqual(days, want) {
		t.Errorf("expected %v, got %v", want, days)
	}

	limited, _ := db.ListProgressEntries(ctx, "u1", 1)
	if len(limited) != 1 || limited[0].Date != "2024-01-03" {
		t.Errorf("expected only 2024-01-03, got %+v", limited)
	}
}

func TestProgressByDateReturnsFirstMatch(t *testing.T) {
	db := NewEmpty()
	ctx := context.Background()

	first, _ := db.CreateProgressEntry(ctx, domain.NewProgressEntry{UserID: "u1", Date: "2024-03-01", PainLevel: 7})
	_, _ = db.CreateProgressEntry(ctx, domain.NewProgressEntry{UserID: "u1", Date: "2024-03-01", PainLevel: 3})

	got, _ := db.GetProgressEntryByDate(ctx, "u1", "2024-03-01")
	if got == nil || got.ID != first.ID {
		t.Errorf("expected first entry %s, got %+v", first.ID, got)
	}

	none, _ := db.GetProgressEntryByDate(ctx, "u2", "2024-03-01")
	if none != nil {
		t.Error("expected nil for other user")
	}

	pain := 4
	updated, _ := db.UpdateProgressEntry(ctx, first.ID, domain.ProgressEntryPatch{PainLevel: &pain})
	if updated.PainLevel != 4 || updated.Date != "2024-03-01" || !updated.CreatedAt.Equal(first.CreatedAt) {
		t.Errorf("unexpected update result: %+v", updated)
	}
	if missing, _ := db.UpdateProgressEntry(ctx, "nope", domain.ProgressEntryPatch{PainLevel: &pain}); missing != nil {
		t.Error("expected nil for unknown id")
	}
}

func TestCompletionsByDay(t *testing.T) {
	db := NewEmpty()
	ctx := context.Background()

	day1 := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)

	db.now = func() time.Time { return day1 }
	c1, _ := db.CreateExerciseCompletion(ctx, domain.NewExerciseCompletion{UserID: "u1", ExerciseID: "ex"})
	db.now = func() time.Time { return day2 }
	c2, _ := db.CreateExerciseCompletion(ctx, domain.NewExerciseCompletion{UserID: "u1", ExerciseID: "ex"})

	if !c1.CompletedAt.Equal(day1) {
		t.Errorf("expected completedAt %v, got %v", day1, c1.CompletedAt)
	}

	onDay1, _ := db.ListExerciseCompletions(ctx, "u1", "2024-05-01")
	if len(onDay1) != 1 || onDay1[0].ID != c1.ID {
		t.Errorf("expected only %s on day 1, got %+v", c1.ID, onDay1)
	}

	all, _ := db.ListExerciseCompletions(ctx, "u1", "")
	if len(all) != 2 || all[0].ID != c2.ID {
		t.Errorf("expected newest first, got %+v", all)
	}

	other, _ := db.ListExerciseCompletions(ctx, "u2", "")
	if len(other) != 0 {
		t.Error("expected 0 completions for other user")
	}
}

func TestProfileCreateUpdate(t *testing.T) {
	db := New(domain.DefaultUserID)
	ctx := context.Background()

	created, _ := db.CreateUserProfile(ctx, domain.NewUserProfile{SeverityLevel: domain.SeverityMild})
	if created.ID == "" || created.ID == domain.DefaultUserID {
		t.Fatalf("expected generated id, got %q", created.ID)
	}

	sev := domain.SeveritySevere
	goals := []string{"Run again"}
	updated, _ := db.UpdateUserProfile(ctx, created.ID, domain.UserProfilePatch{SeverityLevel: &sev, Goals: &goals})
	if updated.SeverityLevel != domain.SeveritySevere || len(updated.Goals) != 1 {
		t.Errorf("unexpected update result: %+v", updated)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("createdAt changed on update")
	}

	if missing, _ := db.UpdateUserProfile(ctx, "nope", domain.UserProfilePatch{SeverityLevel: &sev}); missing != nil {
		t.Error("expected nil for unknown id")
	}
	if got, _ := db.GetUserProfile(ctx, "nope"); got != nil {
		t.Error("expected nil for unknown profile")
	}
}

func TestSeedForConfiguredUser(t *testing.T) {
	db := New("alice")
	ctx := context.Background()

	reminders, _ := db.ListReminders(ctx, "alice")
	if len(reminders) != 4 {
		t.Errorf("expected 4 seeded reminders for alice, got %d", len(reminders))
	}
	if p, _ := db.GetUserProfile(ctx, "alice"); p == nil || p.ID != "alice" {
		t.Errorf("expected seeded profile under alice, got %+v", p)
	}
	if p, _ := db.GetUserProfile(ctx, domain.DefaultUserID); p != nil {
		t.Errorf("expected no profile under %s, got %+v", domain.DefaultUserID, p)
	}
}

func TestEmptyPatchLeavesRecordsUnchanged(t *testing.T) {
	db := New(domain.DefaultUserID)
	ctx := context.Background()
	db.now = func() time.Time { return time.Date(2024, 4, 1, 8, 0, 0, 0, time.UTC) }

	notes := "stiff"
	entry, _ := db.CreateProgressEntry(ctx, domain.NewProgressEntry{
		UserID: "u1", Date: "2024-04-01", PainLevel: 6, ExercisesCompleted: 2, WalkingSteps: 900, Notes: &notes,
	})
	reminders, _ := db.ListReminders(ctx, domain.DefaultUserID)
	profile, _ := db.GetUserProfile(ctx, domain.DefaultUserID)

	db.now = func() time.Time { return time.Date(2024, 4, 2, 8, 0, 0, 0, time.UTC) }

	gotReminder, _ := db.UpdateReminder(ctx, reminders[0].ID, domain.ReminderPatch{})
	if !reflect.DeepEqual(gotReminder, &reminders[0]) {
		t.Errorf("empty patch changed reminder:\n got %+v\nwant %+v", gotReminder, reminders[0])
	}

	gotEntry, _ := db.UpdateProgressEntry(ctx, entry.ID, domain.ProgressEntryPatch{})
	if !reflect.DeepEqual(gotEntry, entry) {
		t.Errorf("empty patch changed progress entry:\n got %+v\nwant %+v", gotEntry, entry)
	}

	gotProfile, _ := db.UpdateUserProfile(ctx, profile.ID, domain.UserProfilePatch{})
	if !reflect.DeepEqual(gotProfile, profile) {
		t.Errorf("empty patch changed profile:\n got %+v\nwant %+v", gotProfile, profile)
	}
}

func TestUpdateUnknownIDLeavesCollections(t *testing.T) {
	db := New(domain.DefaultUserID)
	ctx := context.Background()

	_, _ = db.CreateProgressEntry(ctx, domain.NewProgressEntry{UserID: "u1", Date: "2024-04-01", PainLevel: 5})

	title := "Changed"
	if got, err := db.UpdateReminder(ctx, "nope", domain.ReminderPatch{Title: &title}); got != nil || err != nil {
		t.Errorf("expected nil, nil for unknown reminder; got %+v, %v", got, err)
	}
	if list, _ := db.ListReminders(ctx, domain.DefaultUserID); len(list) != 4 {
		t.Errorf("expected 4 reminders, got %d", len(list))
	}
	if db.reminders.len() != 4 {
		t.Errorf("reminder table size changed: %d", db.reminders.len())
	}

	pain := 2
	if got, _ := db.UpdateProgressEntry(ctx, "nope", domain.ProgressEntryPatch{PainLevel: &pain}); got != nil {
		t.Errorf("expected nil for unknown progress entry, got %+v", got)
	}
	if db.progress.len() != 1 {
		t.Errorf("progress table size changed: %d", db.progress.len())
	}

	sev := domain.SeveritySevere
	if got, _ := db.UpdateUserProfile(ctx, "nope", domain.UserProfilePatch{SeverityLevel: &sev}); got != nil {
		t.Errorf("expected nil for unknown profile, got %+v", got)
	}
	if db.profiles.len() != 1 {
		t.Errorf("profile table size changed: %d", db.profiles.len())
	}
}
