package commands

import (
	"context"
	"errors"
	"time"

	"lendit/internal/domain/booking"
	"lendit/internal/infra"
	"lendit/internal/pkg/clock"
	"lendit/internal/pkg/errs"
	"lendit/internal/usecase/queries"
	"lendit/internal/usecase/shared"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Commands resolve collaborators through narrow read ports; the user
// and item subsystems stay behind these two interfaces.
type UserReader interface {
	FindByID(ctx context.Context, id int64) (*queries.UserView, error)
}

type ItemReader interface {
	FindByID(ctx context.Context, id int64) (*queries.ItemView, error)
}

type CreateBookingParams struct {
	ItemID int64
	Start  time.Time
	End    time.Time
}

type BookingCommands interface {
	Create(ctx context.Context, params CreateBookingParams, requesterID int64) (*queries.BookingView, error)
	Approve(ctx context.Context, bookingID int64, approved bool, userID int64) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	uow   shared.UnitOfWork
	users UserReader
	items ItemReader
	clock clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, users UserReader, items ItemReader, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{
		uow:   uow,
		users: users,
		items: items,
		clock: clk,
	}
}

func (uc *bookingCommandsImpl) Create(ctx context.Context, params CreateBookingParams, requesterID int64) (*queries.BookingView, error) {
	it, err := resolveItem(ctx, uc.items, params.ItemID)
	if err != nil {
		return nil, err
	}
	if !it.Available {
		return nil, errs.ErrItemUnavailable
	}

	if _, err := resolveUser(ctx, uc.users, requesterID); err != nil {
		return nil, err
	}
	if requesterID == it.OwnerID {
		return nil, errs.ErrBookerIsOwner
	}

	period, err := booking.NewPeriod(params.Start, params.End, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	entity, err := booking.NewBooking(booking.ItemSnapshot{
		ID:        it.ID,
		Name:      it.Name,
		OwnerID:   it.OwnerID,
		Available: it.Available,
	}, requesterID, period)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrItemUnavailable):
			return nil, errs.ErrItemUnavailable
		case errors.Is(err, booking.ErrBookerIsOwner):
			return nil, errs.ErrBookerIsOwner
		default:
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
	}

	var view *queries.BookingView
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, txErr := tx.Bookings().Create(ctx, tx.DB(), entity)
		if txErr != nil {
			return txErr
		}

		view = &queries.BookingView{
			ID:          id,
			Start:       period.Start(),
			End:         period.End(),
			Status:      entity.Status().String(),
			BookerID:    requesterID,
			ItemID:      it.ID,
			ItemName:    it.Name,
			ItemOwnerID: it.OwnerID,
		}
		return uc.enqueueBookingEvent(ctx, tx, "booking_created", view)
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}

func (uc *bookingCommandsImpl) Approve(ctx context.Context, bookingID int64, approved bool, userID int64) (*queries.BookingView, error) {
	if _, err := resolveUser(ctx, uc.users, userID); err != nil {
		return nil, err
	}

	var view *queries.BookingView
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// The row lock serializes concurrent approvals of one booking:
		// the loser re-reads a decided status and fails below.
		snap, txErr := tx.Bookings().FindVisibleByIDForUpdate(ctx, tx.DB(), bookingID, userID)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return errs.ErrBookingNotFound
			}
			return txErr
		}

		next, txErr := snap.Status.Transition(approved)
		if txErr != nil {
			return errs.Mark(errs.Newf("cannot change booking status: %s", snap.Status), errs.ErrStatusAlreadyDecided)
		}

		// A booker can see the booking but may not decide it; the
		// ownership re-check keeps the externally visible 404.
		it, txErr := resolveItem(ctx, uc.items, snap.ItemID)
		if txErr != nil {
			return txErr
		}
		if it.OwnerID != userID {
			return errs.ErrItemNotFound
		}

		if txErr = tx.Bookings().UpdateStatus(ctx, tx.DB(), snap.ID, next); txErr != nil {
			return txErr
		}

		view = &queries.BookingView{
			ID:          snap.ID,
			Start:       snap.Start,
			End:         snap.End,
			Status:      next.String(),
			BookerID:    snap.BookerID,
			ItemID:      it.ID,
			ItemName:    it.Name,
			ItemOwnerID: it.OwnerID,
		}

		kind := "booking_rejected"
		if next == booking.StatusApproved {
			kind = "booking_approved"
		}
		return uc.enqueueBookingEvent(ctx, tx, kind, view)
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}

// resolveUser rejects commands on behalf of absent users; the id echo
// check guards against a reader returning a row for a different key.
func resolveUser(ctx context.Context, users UserReader, userID int64) (*queries.UserView, error) {
	u, err := users.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.Wrap(err, "failed to find user")
	}
	if u.ID != userID {
		return nil, errs.ErrUserNotFound
	}
	return u, nil
}

func resolveItem(ctx context.Context, items ItemReader, itemID int64) (*queries.ItemView, error) {
	it, err := items.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrItemNotFound
		}
		return nil, errs.Wrap(err, "failed to find item")
	}
	return it, nil
}

func (uc *bookingCommandsImpl) enqueueBookingEvent(ctx context.Context, tx shared.Tx, kind string, view *queries.BookingView) error {
	payload, err := json.Marshal(map[string]any{
		"booking_id": view.ID,
		"item_id":    view.ItemID,
		"booker_id":  view.BookerID,
		"owner_id":   view.ItemOwnerID,
		"status":     view.Status,
	})
	if err != nil {
		return errs.Wrap(err, "failed to marshal booking event payload")
	}

	return tx.Notifications().CreateJob(ctx, tx.DB(), kind, "bookings", payload, uc.clock.Now())
}
