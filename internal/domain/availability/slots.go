package availability

// ===============================
// Slot reasons
// ===============================

const (
	ReasonDesignerUnavailable  = "Designer not available"
	ReasonScheduledAppointment = "Scheduled appointment"
	ReasonScheduledFitting     = "Scheduled fitting"
	ReasonAvailable            = "Available"
)

func ValidReason(r string) bool {
	switch r {
	case ReasonDesignerUnavailable, ReasonScheduledAppointment, ReasonScheduledFitting:
		return true
	}
	return false
}

// Day is the five-slot availability picture for one date, decoupled from the
// stored row so the normalization rules stay pure.
type Day struct {
	Slots   [5]bool
	Reasons [5]string
}

// Normalize applies the reason defaulting rules in place: an unavailable
// slot with a missing or unknown reason becomes "Designer not available",
// an available slot is always "Available" no matter what was submitted.
func (d *Day) Normalize() {
	for i := range d.Slots {
		if d.Slots[i] {
			if !ValidReason(d.Reasons[i]) {
				d.Reasons[i] = ReasonDesignerUnavailable
			}
		} else {
			d.Reasons[i] = ReasonAvailable
		}
	}
}

// AllAvailable reports whether every slot is free. A fully available day is
// never persisted; any existing row for the date gets deleted instead.
func (d *Day) AllAvailable() bool {
	for _, taken := range d.Slots {
		if taken {
			return false
		}
	}
	return true
}

// Action is what an upsert should do with the stored row for a date.
type Action int

const (
	ActionNone   Action = iota // nothing stored, nothing to store
	ActionDelete               // fully available day with a stored row
	ActionCreate               // blocked day, no stored row yet
	ActionUpdate               // blocked day, rewrite the stored row
)

// Decide picks the persistence action for a normalized day. Fully available
// days are never stored, so the only question is whether a row already
// exists to remove or rewrite.
func Decide(d Day, exists bool) Action {
	if d.AllAvailable() {
		if exists {
			return ActionDelete
		}
		return ActionNone
	}
	if exists {
		return ActionUpdate
	}
	return ActionCreate
}
