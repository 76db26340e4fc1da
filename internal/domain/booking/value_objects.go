package booking

import (
	"errors"
	"time"
)

var (
	ErrInvalidPeriod = errors.New("start time must be before end time")
	ErrStartInPast   = errors.New("start time cannot be in the past")
	ErrEndNotFuture  = errors.New("end time must be in the future")
)

// Period is the half-open time window a booking covers.
type Period struct {
	start time.Time
	end   time.Time
}

// NewPeriod validates a window against now: start may equal now but not
// precede it, end must be strictly in the future.
func NewPeriod(start, end, now time.Time) (Period, error) {
	if !start.Before(end) {
		return Period{}, ErrInvalidPeriod
	}
	if start.Before(now) {
		return Period{}, ErrStartInPast
	}
	if !end.After(now) {
		return Period{}, ErrEndNotFuture
	}
	return Period{start: start, end: end}, nil
}

// ReconstructPeriod restores a persisted window without re-validating
// against the current time.
func ReconstructPeriod(start, end time.Time) Period {
	return Period{start: start, end: end}
}

func (p Period) Start() time.Time {
	return p.start
}

func (p Period) End() time.Time {
	return p.end
}

// Contains reports whether t falls inside the window.
func (p Period) Contains(t time.Time) bool {
	return p.start.Before(t) && p.end.After(t)
}

// Finished reports whether the window has fully elapsed at t.
func (p Period) Finished(t time.Time) bool {
	return p.end.Before(t)
}
