//go:build unit

package booking_test

import (
	"testing"

	"lendit/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusTransition(t *testing.T) {
	tests := []struct {
		name     string
		from     booking.Status
		approved bool
		want     booking.Status
		errIs    error
	}{
		{name: "waiting approved", from: booking.StatusWaiting, approved: true, want: booking.StatusApproved},
		{name: "waiting rejected", from: booking.StatusWaiting, approved: false, want: booking.StatusRejected},
		{name: "approved is terminal", from: booking.StatusApproved, approved: true, errIs: booking.ErrAlreadyDecided},
		{name: "approved cannot be rejected", from: booking.StatusApproved, approved: false, errIs: booking.ErrAlreadyDecided},
		{name: "rejected is terminal", from: booking.StatusRejected, approved: true, errIs: booking.ErrAlreadyDecided},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.from.Transition(tt.approved)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatusIsValid(t *testing.T) {
	assert.True(t, booking.StatusWaiting.IsValid())
	assert.True(t, booking.StatusApproved.IsValid())
	assert.True(t, booking.StatusRejected.IsValid())
	assert.False(t, booking.Status("CURRENT").IsValid())
	assert.False(t, booking.Status("").IsValid())
}

func TestStatusIsFinal(t *testing.T) {
	assert.False(t, booking.StatusWaiting.IsFinal())
	assert.True(t, booking.StatusApproved.IsFinal())
	assert.True(t, booking.StatusRejected.IsFinal())
}
