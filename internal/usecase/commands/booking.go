package commands

import (
	"context"
	"time"

	"gearshare/internal/domain/booking"
	"gearshare/internal/infra"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase/queries"
	"gearshare/internal/usecase/shared"
)

var (
	ErrUserNotFound    = errs.New("user not found")
	ErrItemNotFound    = errs.New("item not found")
	ErrBookingNotFound = errs.New("booking not found")
	ErrItemUnavailable = errs.New("item not available")
	ErrNotItemOwner    = errs.New("caller is not the item owner")
	ErrInvalidPeriod   = errs.New("invalid booking period")
)

type CreateBookingParams struct {
	ItemID int64
	Start  time.Time
	End    time.Time
}

type BookingCommands interface {
	Create(ctx context.Context, params CreateBookingParams, renterID int64) (*queries.BookingView, error)
	Decide(ctx context.Context, bookingID, approverID int64, approve bool) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	uow   shared.UnitOfWork
	views queries.BookingReadStore
}

func NewBookingCommands(uow shared.UnitOfWork, views queries.BookingReadStore) BookingCommands {
	return &bookingCommandsImpl{uow: uow, views: views}
}

// Create persists a WAITING booking for an available item. Overlapping
// bookings on the same item are not rejected.
func (c *bookingCommandsImpl) Create(ctx context.Context, params CreateBookingParams, renterID int64) (*queries.BookingView, error) {
	period, err := booking.NewPeriod(params.Start, params.End)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPeriod)
	}

	var bookingID int64
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		reads := tx.Reads()

		if _, rerr := reads.UserByID(ctx, renterID); rerr != nil {
			return markNotFound(rerr, ErrUserNotFound)
		}

		itemSnap, rerr := reads.ItemByID(ctx, params.ItemID)
		if rerr != nil {
			return markNotFound(rerr, ErrItemNotFound)
		}

		entity, derr := booking.NewBooking(booking.ItemSpec{
			ID:        itemSnap.ID,
			OwnerID:   itemSnap.OwnerID,
			Available: itemSnap.Available,
		}, renterID, period)
		if derr != nil {
			return errs.Mark(derr, ErrItemUnavailable)
		}

		id, werr := tx.Bookings().Create(ctx, tx.DB(), entity)
		if werr != nil {
			return werr
		}
		bookingID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.views.FindViewByID(ctx, bookingID)
}

// Decide runs the ownership check and status write in one transaction so
// concurrent decisions cannot interleave between check and update. A second
// decision overwrites the first; there is no already-decided guard.
func (c *bookingCommandsImpl) Decide(ctx context.Context, bookingID, approverID int64, approve bool) (*queries.BookingView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, rerr := tx.Reads().BookingByID(ctx, bookingID)
		if rerr != nil {
			return markNotFound(rerr, ErrBookingNotFound)
		}

		entity := booking.ReconstructBooking(snap.ID, snap.ItemID, snap.OwnerID, snap.RenterID, snap.Start, snap.End, snap.Status)
		if derr := entity.ApplyDecision(approverID, approve); derr != nil {
			return errs.Mark(derr, ErrNotItemOwner)
		}

		return tx.Bookings().UpdateStatus(ctx, tx.DB(), bookingID, entity.Status())
	})
	if err != nil {
		return nil, err
	}

	return c.views.FindViewByID(ctx, bookingID)
}

func markNotFound(err error, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return sentinel
	}
	return err
}
