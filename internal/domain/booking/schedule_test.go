//go:build unit

package booking_test

import (
	"testing"
	"time"

	"gearshare/internal/domain/booking"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func day(d int) time.Time {
	return now.AddDate(0, 0, d)
}

func approved(id int64, start, end time.Time) booking.Slot {
	return booking.Slot{ID: id, Start: start, End: end, Status: booking.StatusApproved}
}

func TestResolveSchedule(t *testing.T) {
	t.Run("picks most recent past and soonest future", func(t *testing.T) {
		slots := []booking.Slot{
			approved(1, day(-3), day(-2)),
			approved(2, day(-2), day(-1)),
			approved(3, day(2), day(3)),
			approved(4, day(4), day(5)),
		}

		sched := booking.ResolveSchedule(slots, now)

		require.NotNil(t, sched.Last)
		require.NotNil(t, sched.Next)
		assert.Equal(t, int64(2), sched.Last.ID, "last = booking ending one day ago")
		assert.Equal(t, int64(3), sched.Next.ID, "next = booking starting in two days")
	})

	t.Run("excludes WAITING and REJECTED on both sides", func(t *testing.T) {
		slots := []booking.Slot{
			{ID: 1, Start: day(-2), End: day(-1), Status: booking.StatusWaiting},
			{ID: 2, Start: day(-4), End: day(-3), Status: booking.StatusApproved},
			{ID: 3, Start: day(1), End: day(2), Status: booking.StatusRejected},
			{ID: 4, Start: day(3), End: day(4), Status: booking.StatusApproved},
		}

		sched := booking.ResolveSchedule(slots, now)

		require.NotNil(t, sched.Last)
		require.NotNil(t, sched.Next)
		assert.Equal(t, int64(2), sched.Last.ID)
		assert.Equal(t, int64(4), sched.Next.ID)
	})

	t.Run("no bookings at all", func(t *testing.T) {
		sched := booking.ResolveSchedule(nil, now)
		assert.Nil(t, sched.Last)
		assert.Nil(t, sched.Next)
	})

	t.Run("only past bookings", func(t *testing.T) {
		slots := []booking.Slot{approved(1, day(-2), day(-1))}

		sched := booking.ResolveSchedule(slots, now)

		assert.Nil(t, sched.Next)
		if diff := cmp.Diff(&slots[0], sched.Last); diff != "" {
			t.Errorf("last booking mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("only future bookings", func(t *testing.T) {
		slots := []booking.Slot{approved(1, day(1), day(2))}

		sched := booking.ResolveSchedule(slots, now)

		assert.Nil(t, sched.Last)
		if diff := cmp.Diff(&slots[0], sched.Next); diff != "" {
			t.Errorf("next booking mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("last is keyed on start time", func(t *testing.T) {
		// Both ended; the one that started later wins even though it ended
		// earlier. Start is the comparison key on the past side.
		slots := []booking.Slot{
			approved(1, day(-10), day(-1)),
			approved(2, day(-5), day(-4)),
		}

		sched := booking.ResolveSchedule(slots, now)

		require.NotNil(t, sched.Last)
		assert.Equal(t, int64(2), sched.Last.ID)
	})

	t.Run("ongoing booking counts as next", func(t *testing.T) {
		// End has not passed yet, so the running booking sits on the
		// future side of the partition.
		slots := []booking.Slot{
			approved(1, day(-1), day(1)),
			approved(2, day(2), day(3)),
		}

		sched := booking.ResolveSchedule(slots, now)

		assert.Nil(t, sched.Last)
		require.NotNil(t, sched.Next)
		assert.Equal(t, int64(1), sched.Next.ID)
	})
}
