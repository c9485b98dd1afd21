package booking

import (
	"time"

	"gearshare/internal/pkg/errs"
)

var (
	ErrInvalidPeriod     = errs.New("booking start must be before end")
	ErrItemUnavailable   = errs.New("item is not available for booking")
	ErrNotItemOwner      = errs.New("caller is not the owner of the booked item")
	ErrNotRenterNorOwner = errs.New("caller is neither the renter nor the item owner")
)

// Period is the half-open rental window [start, end).
type Period struct {
	start time.Time
	end   time.Time
}

func NewPeriod(start, end time.Time) (Period, error) {
	if !start.Before(end) {
		return Period{}, ErrInvalidPeriod
	}
	return Period{start: start, end: end}, nil
}

func (p Period) Start() time.Time { return p.start }
func (p Period) End() time.Time   { return p.end }

func (p Period) EndedBy(now time.Time) bool {
	return p.end.Before(now)
}

// ItemSpec is the read-only item context a booking decision needs.
type ItemSpec struct {
	ID        int64
	OwnerID   int64
	Available bool
}

type Booking struct {
	id       int64
	itemID   int64
	ownerID  int64
	renterID int64
	period   Period
	status   Status
}

// NewBooking creates a WAITING booking for an available item. Overlapping
// bookings on the same item are allowed; only the availability flag gates
// creation.
func NewBooking(item ItemSpec, renterID int64, period Period) (*Booking, error) {
	if !item.Available {
		return nil, ErrItemUnavailable
	}
	return &Booking{
		itemID:   item.ID,
		ownerID:  item.OwnerID,
		renterID: renterID,
		period:   period,
		status:   StatusWaiting,
	}, nil
}

// ReconstructBooking rebuilds a persisted booking; stored periods are
// trusted as-is.
func ReconstructBooking(id, itemID, ownerID, renterID int64, start, end time.Time, status Status) *Booking {
	return &Booking{
		id:       id,
		itemID:   itemID,
		ownerID:  ownerID,
		renterID: renterID,
		period:   Period{start: start, end: end},
		status:   status,
	}
}

func (b *Booking) ID() int64       { return b.id }
func (b *Booking) ItemID() int64   { return b.itemID }
func (b *Booking) OwnerID() int64  { return b.ownerID }
func (b *Booking) RenterID() int64 { return b.renterID }
func (b *Booking) Period() Period  { return b.period }
func (b *Booking) Status() Status  { return b.status }

// ApplyDecision transitions the booking per the item owner's verdict.
// Only the owner may decide; the renter is explicitly excluded.
func (b *Booking) ApplyDecision(approverID int64, approve bool) error {
	if approverID != b.ownerID {
		return ErrNotItemOwner
	}
	b.status = Decide(approve)
	return nil
}

// ViewableBy reports whether userID may read this booking.
func (b *Booking) ViewableBy(userID int64) bool {
	return userID == b.renterID || userID == b.ownerID
}
