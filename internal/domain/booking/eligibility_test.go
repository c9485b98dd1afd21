//go:build unit

package booking_test

import (
	"testing"

	"gearshare/internal/domain/booking"

	"github.com/stretchr/testify/require"
)

func TestCheckCommentEligibility(t *testing.T) {
	testCases := []struct {
		name  string
		slots []booking.Slot
		errIs error
	}{
		{
			name:  "no bookings at all",
			slots: nil,
			errIs: booking.ErrNeverBooked,
		},
		{
			name: "only future booking",
			slots: []booking.Slot{
				approved(1, day(1), day(2)),
			},
			errIs: booking.ErrNotCompleted,
		},
		{
			name: "ended approved booking qualifies",
			slots: []booking.Slot{
				approved(1, day(-2), day(-1)),
			},
		},
		{
			name: "booking ending exactly now qualifies",
			slots: []booking.Slot{
				approved(1, day(-1), now),
			},
		},
		{
			name: "ended WAITING booking still qualifies",
			slots: []booking.Slot{
				{ID: 1, Start: day(-2), End: day(-1), Status: booking.StatusWaiting},
			},
		},
		{
			name: "ended REJECTED booking still qualifies",
			slots: []booking.Slot{
				{ID: 1, Start: day(-2), End: day(-1), Status: booking.StatusRejected},
			},
		},
		{
			name: "mix of future and ended",
			slots: []booking.Slot{
				approved(1, day(1), day(2)),
				approved(2, day(-3), day(-2)),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := booking.CheckCommentEligibility(tc.slots, now)

			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
		})
	}
}
