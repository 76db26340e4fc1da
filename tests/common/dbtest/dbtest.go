//go:build e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// ResetDB wipes all mutable state between subtests. Identity
// sequences restart so tests can rely on predictable ids.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, `
		TRUNCATE TABLE
			notification_jobs,
			comments,
			bookings,
			items,
			users
		RESTART IDENTITY CASCADE
	`)
	return err
}

// CreateBooking inserts a booking row directly. Periods in the past
// cannot be created through the API, so eligibility tests seed them
// here.
func CreateBooking(t *testing.T, pool *pgxpool.Pool, itemID, bookerID int64, start, end time.Time, status string) int64 {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var id int64
	err := pool.QueryRow(ctx, `
		INSERT INTO bookings (start_date, end_date, item_id, booker_id, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, start, end, itemID, bookerID, status).Scan(&id)
	require.NoError(t, err, "failed to insert booking")
	return id
}
