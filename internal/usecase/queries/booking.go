package queries

import (
	"context"

	"gearshare/internal/domain/booking"
	"gearshare/internal/infra"
	"gearshare/internal/pkg/errs"
)

var (
	ErrBookingNotFound  = errs.New("booking not found")
	ErrUserNotFound     = errs.New("user not found")
	ErrBookingNotViewed = errs.New("caller is neither renter nor item owner")
	// The owner view treats an empty result as an error while the renter
	// view returns an empty list. The asymmetry is kept on purpose.
	ErrNoOwnerBookings = errs.New("no bookings found for owner")
)

type BookingQueries interface {
	GetByID(ctx context.Context, bookingID, callerID int64) (*BookingView, error)
	ListForRenter(ctx context.Context, renterID int64, status *booking.Status) ([]*BookingView, error)
	ListForOwner(ctx context.Context, ownerID int64, status *booking.Status) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	bookings BookingReadStore
	users    UserReadStore
}

func NewBookingQueries(bookings BookingReadStore, users UserReadStore) BookingQueries {
	return &bookingQueriesImpl{bookings: bookings, users: users}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, bookingID, callerID int64) (*BookingView, error) {
	view, err := q.bookings.FindViewByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if callerID != view.Booker.ID && callerID != view.Item.OwnerID {
		return nil, ErrBookingNotViewed
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListForRenter(ctx context.Context, renterID int64, status *booking.Status) ([]*BookingView, error) {
	if err := q.ensureUser(ctx, renterID); err != nil {
		return nil, err
	}
	return q.bookings.FindByRenter(ctx, renterID, status)
}

func (q *bookingQueriesImpl) ListForOwner(ctx context.Context, ownerID int64, status *booking.Status) ([]*BookingView, error) {
	if err := q.ensureUser(ctx, ownerID); err != nil {
		return nil, err
	}
	views, err := q.bookings.FindByOwner(ctx, ownerID, status)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, ErrNoOwnerBookings
	}
	return views, nil
}

func (q *bookingQueriesImpl) ensureUser(ctx context.Context, userID int64) error {
	if _, err := q.users.FindByID(ctx, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}
