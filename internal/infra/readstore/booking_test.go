//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lendit/internal/domain/booking"
	"lendit/internal/usecase/queries"
)

// capturingDBTX records the generated SQL and reports no rows, so the
// query text can be asserted without a live database.
type capturingDBTX struct {
	sql  string
	args []any
}

func (c *capturingDBTX) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	c.sql, c.args = sql, args
	return pgconn.CommandTag{}, nil
}

func (c *capturingDBTX) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	c.sql, c.args = sql, args
	return nil, pgx.ErrNoRows
}

func (c *capturingDBTX) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	c.sql, c.args = sql, args
	return noRowsRow{}
}

type noRowsRow struct{}

func (noRowsRow) Scan(_ ...any) error { return pgx.ErrNoRows }

func TestApplyStateFilter_WindowOperators(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		state    queries.State
		contains []string
		excludes []string
	}{
		{
			name:  "current excludes a booking starting exactly now",
			state: queries.StateCurrent,
			contains: []string{
				`"b"."start_date" < `,
				`"b"."end_date" > `,
			},
			excludes: []string{`"b"."start_date" <= `},
		},
		{
			name:     "past keeps only approved bookings already ended",
			state:    queries.StatePast,
			contains: []string{`"b"."end_date" < `, `"b"."status" = `},
		},
		{
			name:     "future is a strict start comparison",
			state:    queries.StateFuture,
			contains: []string{`"b"."start_date" > `},
			excludes: []string{`"b"."start_date" >= `},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sql, _, err := applyStateFilter(bookingBase(), tt.state, now).Prepared(true).ToSQL()
			require.NoError(t, err)
			for _, fragment := range tt.contains {
				assert.Contains(t, sql, fragment)
			}
			for _, fragment := range tt.excludes {
				assert.NotContains(t, sql, fragment)
			}
		})
	}
}

func TestBookingReadStore_ProjectionWindows(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	worked := []booking.Status{booking.StatusApproved, booking.StatusWaiting}

	t.Run("last booking must have started strictly before now", func(t *testing.T) {
		t.Parallel()

		dbtx := &capturingDBTX{}
		store := NewBookingReadStore(dbtx)

		view, err := store.LastForItem(context.Background(), 7, worked, now)
		require.NoError(t, err)
		assert.Nil(t, view)
		assert.Contains(t, dbtx.sql, `"b"."start_date" < `)
		assert.NotContains(t, dbtx.sql, `"b"."start_date" <= `)
	})

	t.Run("next booking may start exactly now but must not have ended", func(t *testing.T) {
		t.Parallel()

		dbtx := &capturingDBTX{}
		store := NewBookingReadStore(dbtx)

		view, err := store.NextForItem(context.Background(), 7, worked, now)
		require.NoError(t, err)
		assert.Nil(t, view)
		assert.Contains(t, dbtx.sql, `"b"."start_date" >= `)
		assert.Contains(t, dbtx.sql, `"b"."end_date" > `)
	})

	t.Run("finished booking lookup compares end strictly before now", func(t *testing.T) {
		t.Parallel()

		dbtx := &capturingDBTX{}
		store := NewBookingReadStore(dbtx)

		view, err := store.LastFinished(context.Background(), 7, 3, now)
		require.NoError(t, err)
		assert.Nil(t, view)
		assert.Contains(t, dbtx.sql, `"b"."end_date" < `)
	})
}
