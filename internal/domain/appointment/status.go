package appointment

import "github.com/vetclinic/clinic-records/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "Scheduled"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
	StatusNoShow    Status = "NoShow"
)

// IsKnown reports whether s belongs to the fixed state set.
func IsKnown(s Status) bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// IsTerminal reports whether s admits no further transitions.
func IsTerminal(s Status) bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusNoShow
}

func InitialStatus() Status {
	return StatusScheduled
}

// ===============================
// Validations
// ===============================

// CanTransition validates a status change. Only Scheduled may move, and only
// into the three terminal states. Terminal states reject every transition,
// including a repeat of the state they are already in.
func CanTransition(from, to Status) error {
	if !IsKnown(to) {
		return httperr.Validation("unknown_status", "Status value is not recognized.")
	}
	if IsTerminal(from) {
		return httperr.Validation("invalid_state", "Appointment is already in a terminal state.")
	}
	if from == to {
		return nil
	}
	if to == StatusScheduled {
		return httperr.Validation("invalid_state", "Appointment cannot return to Scheduled.")
	}
	return nil
}

func CanCancel(current Status) error {
	return CanTransition(current, StatusCancelled)
}

func CanComplete(current Status) error {
	return CanTransition(current, StatusCompleted)
}

func CanMarkNoShow(current Status) error {
	return CanTransition(current, StatusNoShow)
}
