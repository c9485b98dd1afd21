package repository

import (
	"context"

	"gearshare/internal/domain/booking"
	"gearshare/internal/infra"
	"gearshare/internal/infra/db"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (int64, error) {
	const query = `
		INSERT INTO bookings (item_id, renter_id, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err := dbtx.QueryRow(ctx, query,
		b.ItemID(),
		b.RenterID(),
		b.Period().Start(),
		b.Period().End(),
		b.Status().String(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create booking", err, classify(err))
	}

	return id, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, id int64, status booking.Status) error {
	const query = `UPDATE bookings SET status = $2 WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) DeleteByRenterID(ctx context.Context, dbtx db.DBTX, renterID int64) error {
	const query = `DELETE FROM bookings WHERE renter_id = $1`

	if _, err := dbtx.Exec(ctx, query, renterID); err != nil {
		return infra.WrapRepoErr("failed to delete bookings by renter", err)
	}
	return nil
}
