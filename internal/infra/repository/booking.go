package repository

import (
	"context"

	"lendit/internal/domain/booking"
	"lendit/internal/infra"
	"lendit/internal/infra/db"
	"lendit/internal/pkg/pgconv"
	"lendit/internal/usecase/shared"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/doug-martin/goqu/v9/exp"
)

var pg = goqu.Dialect("postgres")

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (int64, error) {
	sql, args, err := pg.Insert("bookings").
		Rows(goqu.Record{
			"start_date": b.Period().Start(),
			"end_date":   b.Period().End(),
			"item_id":    b.Item().ID,
			"booker_id":  b.BookerID(),
			"status":     b.Status().String(),
		}).
		Returning("id").
		Prepared(true).ToSQL()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to build booking insert", err)
	}

	var id int64
	if err := dbtx.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return 0, infra.WrapRepoErr("booking references missing row", err, infra.KindForeignKeyViolated)
		}
		return 0, infra.WrapRepoErr("failed to create booking", err)
	}

	return id, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, bookingID int64, status booking.Status) error {
	sql, args, err := pg.Update("bookings").
		Set(goqu.Record{"status": status.String()}).
		Where(goqu.C("id").Eq(bookingID)).
		Prepared(true).ToSQL()
	if err != nil {
		return infra.WrapRepoErr("failed to build booking status update", err)
	}

	tag, err := dbtx.Exec(ctx, sql, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}

	return nil
}

// FindVisibleByIDForUpdate locks the booking row while leaving the item
// row unlocked; visibility (booker or item owner) is checked through an
// EXISTS subquery so the lock covers bookings only.
func (r *BookingRepository) FindVisibleByIDForUpdate(ctx context.Context, dbtx db.DBTX, bookingID, visitorID int64) (*shared.BookingSnapshot, error) {
	owned := pg.From("items").
		Select(goqu.L("1")).
		Where(
			goqu.I("items.id").Eq(goqu.I("bookings.item_id")),
			goqu.I("items.owner_id").Eq(visitorID),
		)

	sql, args, err := pg.From("bookings").
		Select("id", "start_date", "end_date", "item_id", "booker_id", "status").
		Where(
			goqu.C("id").Eq(bookingID),
			goqu.Or(
				goqu.C("booker_id").Eq(visitorID),
				goqu.L("EXISTS ?", owned),
			),
		).
		ForUpdate(exp.Wait).
		Prepared(true).ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking lock query", err)
	}

	var (
		snap   shared.BookingSnapshot
		status string
	)
	err = dbtx.QueryRow(ctx, sql, args...).Scan(
		&snap.ID,
		&snap.Start,
		&snap.End,
		&snap.ItemID,
		&snap.BookerID,
		&status,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	snap.Status = booking.Status(status)

	return &snap, nil
}
