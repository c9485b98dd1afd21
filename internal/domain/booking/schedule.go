package booking

import "time"

// Slot is the minimal projection of a booking that schedule resolution and
// comment eligibility need. Callers batch-fetch all slots for an item once
// and resolve locally instead of querying per booking.
type Slot struct {
	ID     int64
	Start  time.Time
	End    time.Time
	Status Status
}

// Schedule is the derived last/next pair for one item. Either side may be
// nil. It is recomputed on every read and never persisted.
type Schedule struct {
	Last *Slot
	Next *Slot
}

// ResolveSchedule partitions an item's bookings around now in a single pass.
// Only APPROVED bookings count. "Last" is the ended booking with the latest
// start; "next" is the not-yet-ended booking with the earliest start.
func ResolveSchedule(slots []Slot, now time.Time) Schedule {
	var sched Schedule
	for i := range slots {
		s := &slots[i]
		if s.Status != StatusApproved {
			continue
		}
		if s.End.Before(now) {
			if sched.Last == nil || sched.Last.Start.Before(s.Start) {
				sched.Last = s
			}
		} else {
			if sched.Next == nil || s.Start.Before(sched.Next.Start) {
				sched.Next = s
			}
		}
	}
	return sched
}
