package queries

import (
	"context"
	"time"

	"lendit/internal/domain/booking"
	"lendit/internal/pkg/clock"
	"lendit/internal/pkg/errs"
)

// BookingProjections derives display and eligibility facts from the
// booking store: the last/next relevant booking of an item, and whether
// a user's finished booking entitles them to comment.
type BookingProjections interface {
	LastAndNext(ctx context.Context, itemID int64) (last, next *BookingView, err error)
	IsEligibleToComment(ctx context.Context, itemID, userID int64) (bool, error)
}

type ProjectionReadStore interface {
	// LastForItem: most recent booking with start < now and a worked
	// status; nil when the item has none.
	LastForItem(ctx context.Context, itemID int64, worked []booking.Status, now time.Time) (*BookingView, error)
	// NextForItem: earliest booking with start >= now, end > now and a
	// worked status; nil when the item has none.
	NextForItem(ctx context.Context, itemID int64, worked []booking.Status, now time.Time) (*BookingView, error)
	// LastFinished: any APPROVED booking of the item by the user with
	// end < now; nil when there is none.
	LastFinished(ctx context.Context, itemID, bookerID int64, now time.Time) (*BookingView, error)
}

type bookingProjectionsImpl struct {
	store  ProjectionReadStore
	worked []booking.Status
	clock  clock.Clock
}

// NewBookingProjections takes the worked-status set as configuration;
// the projector and comment eligibility must agree on it.
func NewBookingProjections(store ProjectionReadStore, worked []booking.Status, clk clock.Clock) BookingProjections {
	return &bookingProjectionsImpl{
		store:  store,
		worked: worked,
		clock:  clk,
	}
}

func (p *bookingProjectionsImpl) LastAndNext(ctx context.Context, itemID int64) (*BookingView, *BookingView, error) {
	now := p.clock.Now()

	last, err := p.store.LastForItem(ctx, itemID, p.worked, now)
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to find last item booking")
	}

	next, err := p.store.NextForItem(ctx, itemID, p.worked, now)
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to find next item booking")
	}

	return last, next, nil
}

func (p *bookingProjectionsImpl) IsEligibleToComment(ctx context.Context, itemID, userID int64) (bool, error) {
	finished, err := p.store.LastFinished(ctx, itemID, userID, p.clock.Now())
	if err != nil {
		return false, errs.Wrap(err, "failed to find finished booking")
	}
	return finished != nil, nil
}
