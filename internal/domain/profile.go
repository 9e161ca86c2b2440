package domain

import (
	"context"
	"time"
)

// Severity describes how bad the user's injury is.
type Severity string

// Injury severities.
const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// Valid reports whether s is a known severity.
func (s Severity) Valid() bool {
	switch s {
	case SeverityMild, SeverityModerate, SeveritySevere:
		return true
	}
	return false
}

// UserProfile personalises the recovery plan. Its ID doubles as the user id.
type UserProfile struct {
	ID                     string    `json:"id"`
	Name                   *string   `json:"name"`
	InjuryDate             *string   `json:"injuryDate"`
	SeverityLevel          Severity  `json:"severityLevel"`
	Goals                  []string  `json:"goals"`
	PreferredReminderTimes []string  `json:"preferredReminderTimes"`
	CreatedAt              time.Time `json:"createdAt"`
}

// NewUserProfile carries the caller-supplied fields of a profile.
type NewUserProfile struct {
	Name                   *string  `json:"name"`
	InjuryDate             *string  `json:"injuryDate"`
	SeverityLevel          Severity `json:"severityLevel"`
	Goals                  []string `json:"goals"`
	PreferredReminderTimes []string `json:"preferredReminderTimes"`
}

// UserProfilePatch is a partial update. Nil fields are left unchanged.
type UserProfilePatch struct {
	Name                   *string   `json:"name"`
	InjuryDate             *string   `json:"injuryDate"`
	SeverityLevel          *Severity `json:"severityLevel"`
	Goals                  *[]string `json:"goals"`
	PreferredReminderTimes *[]string `json:"preferredReminderTimes"`
}

// Build returns the stored form of in.
func (in NewUserProfile) Build(id string, createdAt time.Time) UserProfile {
	return UserProfile{
		ID:                     id,
		Name:                   cloneString(in.Name),
		InjuryDate:             cloneString(in.InjuryDate),
		SeverityLevel:          in.SeverityLevel,
		Goals:                  cloneStrings(in.Goals),
		PreferredReminderTimes: cloneStrings(in.PreferredReminderTimes),
		CreatedAt:              createdAt,
	}
}

// Apply merges the supplied fields of p over u.
func (p UserProfilePatch) Apply(u *UserProfile) {
	if p.Name != nil {
		u.Name = cloneString(p.Name)
	}
	if p.InjuryDate != nil {
		u.InjuryDate = cloneString(p.InjuryDate)
	}
	if p.SeverityLevel != nil {
		u.SeverityLevel = *p.SeverityLevel
	}
	if p.Goals != nil {
		u.Goals = cloneStrings(*p.Goals)
	}
	if p.PreferredReminderTimes != nil {
		u.PreferredReminderTimes = cloneStrings(*p.PreferredReminderTimes)
	}
}

// Clone returns a deep copy of u.
func (u UserProfile) Clone() UserProfile {
	out := u
	out.Name = cloneString(u.Name)
	out.InjuryDate = cloneString(u.InjuryDate)
	out.Goals = cloneStrings(u.Goals)
	out.PreferredReminderTimes = cloneStrings(u.PreferredReminderTimes)
	return out
}

// ProfileRepository is the port for user-profile persistence.
type ProfileRepository interface {
	GetUserProfile(ctx context.Context, id string) (*UserProfile, error)
	CreateUserProfile(ctx context.Context, in NewUserProfile) (*UserProfile, error)
	UpdateUserProfile(ctx context.Context, id string, patch UserProfilePatch) (*UserProfile, error)
}
