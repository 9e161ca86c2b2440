package domain

import (
	"context"
	"time"
)

// ReminderType says what a reminder nudges the user to do.
type ReminderType string

// Reminder types.
const (
	ReminderStretch ReminderType = "stretch"
	ReminderWalk    ReminderType = "walk"
	ReminderCheckIn ReminderType = "check-in"
)

// Valid reports whether t is a known reminder type.
func (t ReminderType) Valid() bool {
	switch t {
	case ReminderStretch, ReminderWalk, ReminderCheckIn:
		return true
	}
	return false
}

// Weekdays lists the day names a reminder may fire on.
var Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// IsWeekday reports whether s is one of Weekdays.
func IsWeekday(s string) bool {
	for _, d := range Weekdays {
		if d == s {
			return true
		}
	}
	return false
}

// Reminder is a recurring nudge shown to a user at a time of day.
type Reminder struct {
	ID        string       `json:"id"`
	UserID    string       `json:"userId"`
	Type      ReminderType `json:"type"`
	Title     string       `json:"title"`
	Message   string       `json:"message"`
	Time      string       `json:"time"`
	Days      []string     `json:"days"`
	IsActive  bool         `json:"isActive"`
	CreatedAt time.Time    `json:"createdAt"`
}

// NewReminder carries the caller-supplied fields of a reminder.
type NewReminder struct {
	UserID   string       `json:"userId"`
	Type     ReminderType `json:"type"`
	Title    string       `json:"title"`
	Message  string       `json:"message"`
	Time     string       `json:"time"`
	Days     []string     `json:"days"`
	IsActive *bool        `json:"isActive"`
}

// ReminderPatch is a partial update. Nil fields are left unchanged.
type ReminderPatch struct {
	UserID   *string       `json:"userId"`
	Type     *ReminderType `json:"type"`
	Title    *string       `json:"title"`
	Message  *string       `json:"message"`
	Time     *string       `json:"time"`
	Days     *[]string     `json:"days"`
	IsActive *bool         `json:"isActive"`
}

// Build returns the stored form of in. IsActive defaults to true.
func (in NewReminder) Build(id string, createdAt time.Time) Reminder {
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	return Reminder{
		ID:        id,
		UserID:    in.UserID,
		Type:      in.Type,
		Title:     in.Title,
		Message:   in.Message,
		Time:      in.Time,
		Days:      cloneStrings(in.Days),
		IsActive:  active,
		CreatedAt: createdAt,
	}
}

// Apply merges the supplied fields of p over r.
func (p ReminderPatch) Apply(r *Reminder) {
	if p.UserID != nil {
		r.UserID = *p.UserID
	}
	if p.Type != nil {
		r.Type = *p.Type
	}
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.Message != nil {
		r.Message = *p.Message
	}
	if p.Time != nil {
		r.Time = *p.Time
	}
	if p.Days != nil {
		r.Days = cloneStrings(*p.Days)
	}
	if p.IsActive != nil {
		r.IsActive = *p.IsActive
	}
}

// Clone returns a deep copy of r.
func (r Reminder) Clone() Reminder {
	out := r
	out.Days = cloneStrings(r.Days)
	return out
}

// ReminderRepository is the port for reminder persistence.
type ReminderRepository interface {
	ListReminders(ctx context.Context, userID string) ([]Reminder, error)
	CreateReminder(ctx context.Context, in NewReminder) (*Reminder, error)
	UpdateReminder(ctx context.Context, id string, patch ReminderPatch) (*Reminder, error)
	DeleteReminder(ctx context.Context, id string) (bool, error)
}
