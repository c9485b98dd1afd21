package queries

import (
	"context"
	"strings"

	"gearshare/internal/domain/booking"
	"gearshare/internal/infra"
	"gearshare/internal/pkg/clock"
	"gearshare/internal/pkg/errs"
)

var ErrItemNotFound = errs.New("item not found")

type ItemQueries interface {
	// GetByID embeds comments for everyone; the booking summary is visible
	// to the item owner only.
	GetByID(ctx context.Context, itemID, callerID int64) (*ItemView, error)
	ListForOwner(ctx context.Context, ownerID int64) ([]*ItemView, error)
	Search(ctx context.Context, text string) ([]*ItemView, error)
}

type itemQueriesImpl struct {
	items    ItemReadStore
	bookings BookingReadStore
	clock    clock.Clock
}

func NewItemQueries(items ItemReadStore, bookings BookingReadStore, clk clock.Clock) ItemQueries {
	return &itemQueriesImpl{items: items, bookings: bookings, clock: clk}
}

func (q *itemQueriesImpl) GetByID(ctx context.Context, itemID, callerID int64) (*ItemView, error) {
	view, err := q.items.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	if err := q.attachComments(ctx, view); err != nil {
		return nil, err
	}
	if view.OwnerID == callerID {
		if err := q.attachSchedule(ctx, view); err != nil {
			return nil, err
		}
	}
	return view, nil
}

func (q *itemQueriesImpl) ListForOwner(ctx context.Context, ownerID int64) ([]*ItemView, error) {
	views, err := q.items.FindAllByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	for _, view := range views {
		if err := q.attachComments(ctx, view); err != nil {
			return nil, err
		}
		if err := q.attachSchedule(ctx, view); err != nil {
			return nil, err
		}
	}
	return views, nil
}

func (q *itemQueriesImpl) Search(ctx context.Context, text string) ([]*ItemView, error) {
	if strings.TrimSpace(text) == "" {
		return []*ItemView{}, nil
	}
	return q.items.Search(ctx, text)
}

func (q *itemQueriesImpl) attachComments(ctx context.Context, view *ItemView) error {
	comments, err := q.items.CommentsForItem(ctx, view.ID)
	if err != nil {
		return err
	}
	view.Comments = comments
	return nil
}

// attachSchedule batch-fetches the item's bookings once and resolves the
// last/next pair locally.
func (q *itemQueriesImpl) attachSchedule(ctx context.Context, view *ItemView) error {
	itemSlots, err := q.bookings.SlotsForItem(ctx, view.ID)
	if err != nil {
		return err
	}

	slots := make([]booking.Slot, len(itemSlots))
	bookers := make(map[int64]int64, len(itemSlots))
	for i, s := range itemSlots {
		slots[i] = s.Slot
		bookers[s.ID] = s.BookerID
	}

	sched := booking.ResolveSchedule(slots, q.clock.Now())
	view.LastBooking = toBookingRef(sched.Last, bookers)
	view.NextBooking = toBookingRef(sched.Next, bookers)
	return nil
}

func toBookingRef(slot *booking.Slot, bookers map[int64]int64) *BookingRef {
	if slot == nil {
		return nil
	}
	return &BookingRef{
		ID:       slot.ID,
		BookerID: bookers[slot.ID],
		Start:    slot.Start,
		End:      slot.End,
		Status:   slot.Status,
	}
}
