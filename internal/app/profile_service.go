package app

import (
	"context"

	"solerelief/internal/domain"
)

// ProfileService encapsulates user-profile use cases.
type ProfileService struct {
	repo domain.ProfileRepository
}

// NewProfileService creates a ProfileService backed by the given repository.
func NewProfileService(repo domain.ProfileRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

// Get returns the profile with id, or nil.
func (s *ProfileService) Get(ctx context.Context, id string) (*domain.UserProfile, error) {
	return s.repo.GetUserProfile(ctx, id)
}

// Create validates and stores a new profile. Severity defaults to mild.
func (s *ProfileService) Create(ctx context.Context, in domain.NewUserProfile) (*domain.UserProfile, error) {
	if in.SeverityLevel == "" {
		in.SeverityLevel = domain.SeverityMild
	}
	err := firstErr(
		validSeverity(in.SeverityLevel),
		validInjuryDate(in.InjuryDate),
		validTimes(in.PreferredReminderTimes),
	)
	if err != nil {
		return nil, err
	}
	return s.repo.CreateUserProfile(ctx, in)
}

// Update validates the supplied fields and applies them. It returns nil if
// the profile does not exist.
func (s *ProfileService) Update(ctx context.Context, id string, p domain.UserProfilePatch) (*domain.UserProfile, error) {
	var errs []error
	if p.SeverityLevel != nil {
		errs = append(errs, validSeverity(*p.SeverityLevel))
	}
	errs = append(errs, validInjuryDate(p.InjuryDate))
	if p.PreferredReminderTimes != nil {
		errs = append(errs, validTimes(*p.PreferredReminderTimes))
	}
	if err := firstErr(errs...); err != nil {
		return nil, err
	}
	return s.repo.UpdateUserProfile(ctx, id, p)
}

func validSeverity(s domain.Severity) error {
	if !s.Valid() {
		return invalid("severityLevel", "must be mild, moderate or severe")
	}
	return nil
}

func validInjuryDate(d *string) error {
	if d == nil || *d == "" {
		return nil
	}
	return validDay("injuryDate", *d)
}

func validTimes(times []string) error {
	for _, t := range times {
		if err := validClock("preferredReminderTimes", t); err != nil {
			return err
		}
	}
	return nil
}
