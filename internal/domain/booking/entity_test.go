//go:build unit

package booking_test

import (
	"testing"
	"time"

	"gearshare/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	bookingStart = time.Date(2000, 10, 1, 1, 0, 0, 0, time.UTC)
	bookingEnd   = time.Date(2000, 10, 1, 1, 2, 0, 0, time.UTC)
)

func mustPeriod(t *testing.T) booking.Period {
	t.Helper()
	p, err := booking.NewPeriod(bookingStart, bookingEnd)
	require.NoError(t, err)
	return p
}

func TestNewPeriod(t *testing.T) {
	testCases := []struct {
		name       string
		start, end time.Time
		errIs      error
	}{
		{name: "start before end", start: bookingStart, end: bookingEnd},
		{name: "start equals end", start: bookingStart, end: bookingStart, errIs: booking.ErrInvalidPeriod},
		{name: "start after end", start: bookingEnd, end: bookingStart, errIs: booking.ErrInvalidPeriod},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := booking.NewPeriod(tc.start, tc.end)

			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.start, p.Start())
			assert.Equal(t, tc.end, p.End())
		})
	}
}

func TestNewBooking(t *testing.T) {
	item := booking.ItemSpec{ID: 10, OwnerID: 1, Available: true}

	t.Run("creates in WAITING", func(t *testing.T) {
		b, err := booking.NewBooking(item, 2, mustPeriod(t))
		require.NoError(t, err)

		assert.Equal(t, booking.StatusWaiting, b.Status())
		assert.Equal(t, int64(10), b.ItemID())
		assert.Equal(t, int64(1), b.OwnerID())
		assert.Equal(t, int64(2), b.RenterID())
	})

	t.Run("unavailable item is rejected", func(t *testing.T) {
		unavailable := booking.ItemSpec{ID: 10, OwnerID: 1, Available: false}

		b, err := booking.NewBooking(unavailable, 2, mustPeriod(t))
		require.ErrorIs(t, err, booking.ErrItemUnavailable)
		assert.Nil(t, b)
	})
}

func TestApplyDecision(t *testing.T) {
	newBooking := func(t *testing.T) *booking.Booking {
		t.Helper()
		b, err := booking.NewBooking(booking.ItemSpec{ID: 10, OwnerID: 1, Available: true}, 2, mustPeriod(t))
		require.NoError(t, err)
		return b
	}

	t.Run("owner approves", func(t *testing.T) {
		b := newBooking(t)
		require.NoError(t, b.ApplyDecision(1, true))
		assert.Equal(t, booking.StatusApproved, b.Status())
	})

	t.Run("owner rejects", func(t *testing.T) {
		b := newBooking(t)
		require.NoError(t, b.ApplyDecision(1, false))
		assert.Equal(t, booking.StatusRejected, b.Status())
	})

	t.Run("renter may not decide", func(t *testing.T) {
		b := newBooking(t)
		require.ErrorIs(t, b.ApplyDecision(2, true), booking.ErrNotItemOwner)
		assert.Equal(t, booking.StatusWaiting, b.Status())
	})

	t.Run("third party may not decide", func(t *testing.T) {
		b := newBooking(t)
		require.ErrorIs(t, b.ApplyDecision(99, false), booking.ErrNotItemOwner)
	})

	t.Run("second decision overwrites the first", func(t *testing.T) {
		b := newBooking(t)
		require.NoError(t, b.ApplyDecision(1, true))
		require.NoError(t, b.ApplyDecision(1, false))
		assert.Equal(t, booking.StatusRejected, b.Status())
	})
}

func TestViewableBy(t *testing.T) {
	b := booking.ReconstructBooking(5, 10, 1, 2, bookingStart, bookingEnd, booking.StatusApproved)

	assert.True(t, b.ViewableBy(2), "renter can view")
	assert.True(t, b.ViewableBy(1), "item owner can view")
	assert.False(t, b.ViewableBy(3), "third party cannot view")
}
