package schedule

import (
	"strings"
	"time"

	"github.com/fadeapp/fadeapp-api/internal/httperr"
	"github.com/fadeapp/fadeapp-api/internal/models"
)

// SameDay compares two day descriptors (weekday names or literal dates)
// case-insensitively.
func SameDay(a, b string) bool {
	return strings.EqualFold(a, b)
}

// ClockMinutes parses a "15:04" clock string into minutes since midnight.
func ClockMinutes(hm string) (int, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, httperr.ErrValidation("invalid_time")
	}
	return t.Hour()*60 + t.Minute(), nil
}

// Overlaps reports whether two same-day slots collide. Only strictly
// disjoint intervals pass: slots that merely touch at an endpoint
// (10:00-11:00 and 11:00-12:00) count as overlapping. That strict-inequality
// exclusion is the system's historical behavior and clients depend on it.
func Overlaps(startA, endA, startB, endB int) bool {
	return !(endA < startB || startA > endB)
}

// ConflictsWith checks a candidate slot against one existing slot for the
// same barber.
func ConflictsWith(candidate *models.Schedule, existing *models.Schedule) (bool, error) {
	if !SameDay(candidate.Day, existing.Day) {
		return false, nil
	}

	candStart, err := ClockMinutes(candidate.StartTime)
	if err != nil {
		return false, err
	}
	candEnd, err := ClockMinutes(candidate.EndTime)
	if err != nil {
		return false, err
	}
	exStart, err := ClockMinutes(existing.StartTime)
	if err != nil {
		return false, err
	}
	exEnd, err := ClockMinutes(existing.EndTime)
	if err != nil {
		return false, err
	}

	return Overlaps(candStart, candEnd, exStart, exEnd), nil
}
