package validators

import "time"

// IsClockTime reports whether s is a "15:04" clock string, the only format
// the scheduling rules understand.
func IsClockTime(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}
