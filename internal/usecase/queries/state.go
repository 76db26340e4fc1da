package queries

import (
	"fmt"

	"lendit/internal/pkg/errs"
)

// State is a query-time filter over bookings. It is deliberately a
// different type from booking.Status: CURRENT/PAST/FUTURE describe a
// window relative to now and are never persisted.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

// ParseState maps the raw query value to a filter. An absent value
// means ALL; matching is case-sensitive against the exact names.
func ParseState(raw *string) (State, error) {
	if raw == nil || *raw == "" {
		return StateAll, nil
	}
	switch State(*raw) {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return State(*raw), nil
	default:
		return "", errs.Mark(fmt.Errorf("Unknown state: %s", *raw), errs.ErrUnknownState)
	}
}
