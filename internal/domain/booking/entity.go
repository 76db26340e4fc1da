package booking

import (
	"errors"
	"time"
)

var (
	ErrItemUnavailable = errors.New("item not available")
	ErrBookerIsOwner   = errors.New("user is owner")
)

// ItemSnapshot is the slice of the booked item a booking needs: identity,
// display name, owner for authorization, availability at booking time.
type ItemSnapshot struct {
	ID        int64
	Name      string
	OwnerID   int64
	Available bool
}

type Booking struct {
	id       int64
	period   Period
	item     ItemSnapshot
	bookerID int64
	status   Status
}

// NewBooking creates a WAITING booking for a non-owner against an
// available item. The id stays zero until the store assigns one.
func NewBooking(item ItemSnapshot, bookerID int64, period Period) (*Booking, error) {
	if !item.Available {
		return nil, ErrItemUnavailable
	}
	if bookerID == item.OwnerID {
		return nil, ErrBookerIsOwner
	}

	return &Booking{
		period:   period,
		item:     item,
		bookerID: bookerID,
		status:   StatusWaiting,
	}, nil
}

func ReconstructBooking(id int64, start, end time.Time, item ItemSnapshot, bookerID int64, status Status) *Booking {
	return &Booking{
		id:       id,
		period:   ReconstructPeriod(start, end),
		item:     item,
		bookerID: bookerID,
		status:   status,
	}
}

func (b *Booking) IsWaiting() bool {
	return b.status == StatusWaiting
}

func (b *Booking) ID() int64          { return b.id }
func (b *Booking) Period() Period     { return b.period }
func (b *Booking) Item() ItemSnapshot { return b.item }
func (b *Booking) BookerID() int64    { return b.bookerID }
func (b *Booking) Status() Status     { return b.status }
