package booking

import "errors"

var ErrAlreadyDecided = errors.New("booking status already decided")

// Status is the persisted booking status. Query-time filters
// (ALL/CURRENT/PAST/FUTURE) are a separate type in the queries layer
// and are never stored on a booking.
type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusWaiting, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// IsFinal reports whether the status is terminal.
func (s Status) IsFinal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Transition moves a status out of WAITING exactly once. APPROVED and
// REJECTED are terminal.
func (s Status) Transition(approved bool) (Status, error) {
	if s != StatusWaiting {
		return s, ErrAlreadyDecided
	}
	if approved {
		return StatusApproved, nil
	}
	return StatusRejected, nil
}
