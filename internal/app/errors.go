// Package app holds the application services: request validation and the
// use cases built on top of the repository ports.
package app

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"solerelief/internal/domain"
)

// ErrInvalidInput is wrapped by every validation failure.
var ErrInvalidInput = errors.New("invalid input")

// ValidationError describes a rejected field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

// Unwrap lets callers match validation failures with errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

var clockPattern = regexp.MustCompile(`^\d{2}:\d{2}$`)

func required(field, v string) error {
	if strings.TrimSpace(v) == "" {
		return invalid(field, "is required")
	}
	return nil
}

// validDay checks a "YYYY-MM-DD" calendar day.
func validDay(field, v string) error {
	if _, err := time.Parse(domain.DayLayout, v); err != nil {
		return invalid(field, "must be a YYYY-MM-DD date")
	}
	return nil
}

// validClock checks the "HH:MM" shape only; the value is not range-checked.
func validClock(field, v string) error {
	if !clockPattern.MatchString(v) {
		return invalid(field, "must be in HH:MM format")
	}
	return nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
