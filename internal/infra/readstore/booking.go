package readstore

import (
	"context"
	"time"

	"lendit/internal/domain/booking"
	"lendit/internal/infra"
	"lendit/internal/infra/db"
	"lendit/internal/pkg/pgconv"
	"lendit/internal/usecase/queries"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
)

var pg = goqu.Dialect("postgres")

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

// bookingCols is the joined row every booking view is built from.
func bookingBase() *goqu.SelectDataset {
	return pg.From(goqu.T("bookings").As("b")).
		Join(goqu.T("items").As("i"), goqu.On(goqu.I("b.item_id").Eq(goqu.I("i.id")))).
		Select(
			goqu.I("b.id"),
			goqu.I("b.start_date"),
			goqu.I("b.end_date"),
			goqu.I("b.status"),
			goqu.I("b.booker_id"),
			goqu.I("i.id").As("item_id"),
			goqu.I("i.name").As("item_name"),
			goqu.I("i.owner_id").As("item_owner_id"),
		)
}

func (r *BookingReadStore) FindVisibleByID(ctx context.Context, bookingID, visitorID int64) (*queries.BookingView, error) {
	ds := bookingBase().
		Where(
			goqu.I("b.id").Eq(bookingID),
			goqu.Or(
				goqu.I("b.booker_id").Eq(visitorID),
				goqu.I("i.owner_id").Eq(visitorID),
			),
		)

	sql, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking query", err)
	}

	view, err := scanBookingView(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return view, nil
}

func (r *BookingReadStore) ListByBooker(ctx context.Context, bookerID int64, state queries.State, now time.Time, page queries.Page) ([]*queries.BookingView, error) {
	ds := bookingBase().Where(goqu.I("b.booker_id").Eq(bookerID))
	return r.list(ctx, ds, state, now, page)
}

func (r *BookingReadStore) ListByOwner(ctx context.Context, ownerID int64, state queries.State, now time.Time, page queries.Page) ([]*queries.BookingView, error) {
	ds := bookingBase().Where(goqu.I("i.owner_id").Eq(ownerID))
	return r.list(ctx, ds, state, now, page)
}

func (r *BookingReadStore) list(ctx context.Context, ds *goqu.SelectDataset, state queries.State, now time.Time, page queries.Page) ([]*queries.BookingView, error) {
	ds = applyStateFilter(ds, state, now).
		Order(goqu.I("b.start_date").Desc()).
		Offset(uint(page.From)).
		Limit(uint(page.Size))

	sql, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking list query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	views := make([]*queries.BookingView, 0)
	for rows.Next() {
		view, scanErr := scanBookingView(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", scanErr)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}

	return views, nil
}

// applyStateFilter narrows a booking dataset to the requested window.
// CURRENT/PAST/FUTURE compare against the caller's now so query results
// stay stable within one request.
func applyStateFilter(ds *goqu.SelectDataset, state queries.State, now time.Time) *goqu.SelectDataset {
	switch state {
	case queries.StateCurrent:
		return ds.Where(
			goqu.I("b.start_date").Lt(now),
			goqu.I("b.end_date").Gt(now),
		)
	case queries.StatePast:
		return ds.Where(
			goqu.I("b.end_date").Lt(now),
			goqu.I("b.status").Eq(booking.StatusApproved.String()),
		)
	case queries.StateFuture:
		return ds.Where(goqu.I("b.start_date").Gt(now))
	case queries.StateWaiting:
		return ds.Where(goqu.I("b.status").Eq(booking.StatusWaiting.String()))
	case queries.StateRejected:
		return ds.Where(goqu.I("b.status").Eq(booking.StatusRejected.String()))
	default:
		return ds
	}
}

// LastForItem finds the most recent started booking of the item among
// the worked statuses.
func (r *BookingReadStore) LastForItem(ctx context.Context, itemID int64, worked []booking.Status, now time.Time) (*queries.BookingView, error) {
	ds := bookingBase().
		Where(
			goqu.I("b.item_id").Eq(itemID),
			goqu.I("b.start_date").Lt(now),
			goqu.I("b.status").In(statusStrings(worked)),
		).
		Order(goqu.I("b.start_date").Desc()).
		Limit(1)

	return r.one(ctx, ds, "failed to find last item booking")
}

// NextForItem finds the earliest upcoming booking of the item among the
// worked statuses.
func (r *BookingReadStore) NextForItem(ctx context.Context, itemID int64, worked []booking.Status, now time.Time) (*queries.BookingView, error) {
	ds := bookingBase().
		Where(
			goqu.I("b.item_id").Eq(itemID),
			goqu.I("b.start_date").Gte(now),
			goqu.I("b.end_date").Gt(now),
			goqu.I("b.status").In(statusStrings(worked)),
		).
		Order(goqu.I("b.start_date").Asc()).
		Limit(1)

	return r.one(ctx, ds, "failed to find next item booking")
}

// LastFinished finds any approved booking of the item by the user that
// has already ended.
func (r *BookingReadStore) LastFinished(ctx context.Context, itemID, bookerID int64, now time.Time) (*queries.BookingView, error) {
	ds := bookingBase().
		Where(
			goqu.I("b.item_id").Eq(itemID),
			goqu.I("b.booker_id").Eq(bookerID),
			goqu.I("b.status").Eq(booking.StatusApproved.String()),
			goqu.I("b.end_date").Lt(now),
		).
		Order(goqu.I("b.end_date").Desc()).
		Limit(1)

	return r.one(ctx, ds, "failed to find finished booking")
}

// one runs a single-row projection query; absence is a nil view, not an
// error.
func (r *BookingReadStore) one(ctx context.Context, ds *goqu.SelectDataset, failMsg string) (*queries.BookingView, error) {
	sql, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking projection query", err)
	}

	view, err := scanBookingView(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr(failMsg, err)
	}

	return view, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBookingView(row rowScanner) (*queries.BookingView, error) {
	var v queries.BookingView
	err := row.Scan(
		&v.ID,
		&v.Start,
		&v.End,
		&v.Status,
		&v.BookerID,
		&v.ItemID,
		&v.ItemName,
		&v.ItemOwnerID,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func statusStrings(statuses []booking.Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = s.String()
	}
	return out
}
