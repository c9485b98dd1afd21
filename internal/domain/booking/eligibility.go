package booking

import (
	"time"

	"gearshare/internal/pkg/errs"
)

var (
	ErrNeverBooked  = errs.New("user has no bookings for this item")
	ErrNotCompleted = errs.New("user has no completed booking for this item")
)

// CheckCommentEligibility gates comment creation on booking history. The
// caller's bookings for one item are examined against now:
//   - no bookings at all → ErrNeverBooked
//   - bookings exist but none has ended → ErrNotCompleted
//
// A booking qualifies once its end time has passed regardless of status, so
// a WAITING booking whose window elapsed still opens the gate. Tightening to
// APPROVED-only would change observable behavior and is deliberately not done.
func CheckCommentEligibility(slots []Slot, now time.Time) error {
	if len(slots) == 0 {
		return ErrNeverBooked
	}
	for _, s := range slots {
		if !s.End.After(now) {
			return nil
		}
	}
	return ErrNotCompleted
}
