package queries

import (
	"context"
	"time"

	"lendit/internal/infra"
	"lendit/internal/pkg/clock"
	"lendit/internal/pkg/errs"
)

type BookingQueries interface {
	GetByID(ctx context.Context, bookingID, userID int64) (*BookingView, error)
	ListByBooker(ctx context.Context, userID int64, state State, page Page) ([]*BookingView, error)
	ListByOwner(ctx context.Context, userID int64, state State, page Page) ([]*BookingView, error)
}

type BookingReadStore interface {
	// FindVisibleByID restricts visibility to the booker or the owner of
	// the booked item.
	FindVisibleByID(ctx context.Context, bookingID, visitorID int64) (*BookingView, error)
	ListByBooker(ctx context.Context, bookerID int64, state State, now time.Time, page Page) ([]*BookingView, error)
	ListByOwner(ctx context.Context, ownerID int64, state State, now time.Time, page Page) ([]*BookingView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id int64) (*UserView, error)
	FindAll(ctx context.Context) ([]*UserView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
	users UserReadStore
	clock clock.Clock
}

func NewBookingQueries(store BookingReadStore, users UserReadStore, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{
		store: store,
		users: users,
		clock: clk,
	}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, bookingID, userID int64) (*BookingView, error) {
	if err := resolveUser(ctx, q.users, userID); err != nil {
		return nil, err
	}

	view, err := q.store.FindVisibleByID(ctx, bookingID, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}

	return view, nil
}

func (q *bookingQueriesImpl) ListByBooker(ctx context.Context, userID int64, state State, page Page) ([]*BookingView, error) {
	if err := resolveUser(ctx, q.users, userID); err != nil {
		return nil, err
	}

	views, err := q.store.ListByBooker(ctx, userID, state, q.clock.Now(), page)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list booker bookings")
	}

	return nonNil(views), nil
}

func (q *bookingQueriesImpl) ListByOwner(ctx context.Context, userID int64, state State, page Page) ([]*BookingView, error) {
	if err := resolveUser(ctx, q.users, userID); err != nil {
		return nil, err
	}

	views, err := q.store.ListByOwner(ctx, userID, state, q.clock.Now(), page)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list owner bookings")
	}

	return nonNil(views), nil
}

// resolveUser rejects requests on behalf of absent users; the id echo
// check guards against a store returning a row for a different key.
func resolveUser(ctx context.Context, users UserReadStore, userID int64) error {
	u, err := users.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrUserNotFound
		}
		return errs.Wrap(err, "failed to find user")
	}
	if u.ID != userID {
		return errs.ErrUserNotFound
	}
	return nil
}

func nonNil(views []*BookingView) []*BookingView {
	if views == nil {
		return []*BookingView{}
	}
	return views
}
