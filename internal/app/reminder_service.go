package app

import (
	"context"

	"solerelief/internal/domain"
)

// ReminderService encapsulates reminder use cases.
type ReminderService struct {
	repo domain.ReminderRepository
}

// NewReminderService creates a ReminderService backed by the given repository.
func NewReminderService(repo domain.ReminderRepository) *ReminderService {
	return &ReminderService{repo: repo}
}

// List returns every reminder owned by userID.
func (s *ReminderService) List(ctx context.Context, userID string) ([]domain.Reminder, error) {
	return s.repo.ListReminders(ctx, userID)
}

// Create validates and stores a new reminder.
func (s *ReminderService) Create(ctx context.Context, in domain.NewReminder) (*domain.Reminder, error) {
	err := firstErr(
		required("userId", in.UserID),
		validReminderType(in.Type),
		required("title", in.Title),
		required("message", in.Message),
		validClock("time", in.Time),
		validDays(in.Days),
	)
	if err != nil {
		return nil, err
	}
	return s.repo.CreateReminder(ctx, in)
}

// Update validates the supplied fields and applies them. It returns nil if
// the reminder does not exist.
func (s *ReminderService) Update(ctx context.Context, id string, p domain.ReminderPatch) (*domain.Reminder, error) {
	var errs []error
	if p.UserID != nil {
		errs = append(errs, required("userId", *p.UserID))
	}
	if p.Type != nil {
		errs = append(errs, validReminderType(*p.Type))
	}
	if p.Title != nil {
		errs = append(errs, required("title", *p.Title))
	}
	if p.Message != nil {
		errs = append(errs, required("message", *p.Message))
	}
	if p.Time != nil {
		errs = append(errs, validClock("time", *p.Time))
	}
	if p.Days != nil {
		errs = append(errs, validDays(*p.Days))
	}
	if err := firstErr(errs...); err != nil {
		return nil, err
	}
	return s.repo.UpdateReminder(ctx, id, p)
}

// Delete removes a reminder and reports whether it existed.
func (s *ReminderService) Delete(ctx context.Context, id string) (bool, error) {
	return s.repo.DeleteReminder(ctx, id)
}

func validReminderType(t domain.ReminderType) error {
	if !t.Valid() {
		return invalid("type", "must be stretch, walk or check-in")
	}
	return nil
}

func validDays(days []string) error {
	if len(days) == 0 {
		return invalid("days", "must not be empty")
	}
	for _, d := range days {
		if !domain.IsWeekday(d) {
			return invalid("days", "unknown weekday "+d)
		}
	}
	return nil
}
