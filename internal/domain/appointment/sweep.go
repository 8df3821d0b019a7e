package appointment

import "time"

// ShouldArchive reports whether an appointment is picked up by the archive
// sweep: still pending with its date strictly before today. Every other
// status is left alone regardless of age.
func ShouldArchive(status Status, date, today time.Time) bool {
	if status != StatusPending {
		return false
	}
	return dateOnly(date).Before(dateOnly(today))
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
