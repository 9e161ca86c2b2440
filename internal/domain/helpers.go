package domain

import "strings"

const (
	// DayLayout is the layout of calendar-day strings such as "2024-01-31".
	DayLayout = "2006-01-02"
	// ClockLayout is the layout of reminder times such as "08:00".
	ClockLayout = "15:04"
)

func cloneStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func matchesQuery(e Exercise, q string) bool {
	q = strings.ToLower(q)
	if strings.Contains(strings.ToLower(e.Name), q) || strings.Contains(strings.ToLower(e.Description), q) {
		return true
	}
	for _, tag := range e.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
