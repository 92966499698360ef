package appointment

import (
	"strings"

	"github.com/fadeapp/fadeapp-api/internal/httperr"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

func InitialStatus() Status {
	return StatusPending
}

// Normalize upper-cases a status update. Anything the caller sends is
// accepted; only the casing is fixed.
func Normalize(status string) string {
	return strings.ToUpper(status)
}

// IsActive reports whether a status still holds the barber's time
// (PENDING or CONFIRMED), compared case-insensitively.
func IsActive(status string) bool {
	return strings.EqualFold(status, string(StatusPending)) ||
		strings.EqualFold(status, string(StatusConfirmed))
}

// CanDelete forbids deleting a completed appointment. The match is exact:
// a lower-cased "completed" slips through, same as the system always behaved.
func CanDelete(current string) error {
	if current == string(StatusCompleted) {
		return httperr.ErrInvalidState("appointment_completed")
	}
	return nil
}
