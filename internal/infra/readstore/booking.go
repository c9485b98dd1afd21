package readstore

import (
	"context"
	"errors"

	"gearshare/internal/domain/booking"
	"gearshare/internal/infra"
	"gearshare/internal/infra/db"
	"gearshare/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

const bookingViewColumns = `
	b.id, b.start_date, b.end_date, b.status,
	u.id, u.name,
	i.id, i.owner_id, i.name
`

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (r *BookingReadStore) FindViewByID(ctx context.Context, id int64) (*queries.BookingView, error) {
	const query = `
		SELECT ` + bookingViewColumns + `
		FROM bookings b
		JOIN users u ON u.id = b.renter_id
		JOIN items i ON i.id = b.item_id
		WHERE b.id = $1
	`

	view, err := scanBookingView(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by id", err)
	}
	return view, nil
}

func (r *BookingReadStore) FindByRenter(ctx context.Context, renterID int64, status *booking.Status) ([]*queries.BookingView, error) {
	query := `
		SELECT ` + bookingViewColumns + `
		FROM bookings b
		JOIN users u ON u.id = b.renter_id
		JOIN items i ON i.id = b.item_id
		WHERE b.renter_id = $1
	`
	args := []any{renterID}
	if status != nil {
		query += ` AND b.status = $2`
		args = append(args, status.String())
	}
	query += ` ORDER BY b.start_date ASC`

	return r.queryBookingViews(ctx, query, args...)
}

func (r *BookingReadStore) FindByOwner(ctx context.Context, ownerID int64, status *booking.Status) ([]*queries.BookingView, error) {
	query := `
		SELECT ` + bookingViewColumns + `
		FROM bookings b
		JOIN users u ON u.id = b.renter_id
		JOIN items i ON i.id = b.item_id
		WHERE i.owner_id = $1
	`
	args := []any{ownerID}
	if status != nil {
		query += ` AND b.status = $2`
		args = append(args, status.String())
	}
	query += ` ORDER BY b.start_date ASC`

	return r.queryBookingViews(ctx, query, args...)
}

func (r *BookingReadStore) SlotsForItem(ctx context.Context, itemID int64) ([]queries.ItemSlot, error) {
	const query = `
		SELECT id, renter_id, start_date, end_date, status
		FROM bookings
		WHERE item_id = $1
	`

	rows, err := r.db.Query(ctx, query, itemID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings for item", err)
	}
	defer rows.Close()

	var slots []queries.ItemSlot
	for rows.Next() {
		var (
			slot      queries.ItemSlot
			rawStatus string
		)
		if err := rows.Scan(&slot.ID, &slot.BookerID, &slot.Start, &slot.End, &rawStatus); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking slot", err)
		}
		slot.Status = booking.Status(rawStatus)
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking slots", err)
	}
	return slots, nil
}

func (r *BookingReadStore) queryBookingViews(ctx context.Context, query string, args ...any) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query bookings", err)
	}
	defer rows.Close()

	views := []*queries.BookingView{}
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking view", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking views", err)
	}
	return views, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var (
		view      queries.BookingView
		rawStatus string
	)
	err := row.Scan(
		&view.ID, &view.Start, &view.End, &rawStatus,
		&view.Booker.ID, &view.Booker.Name,
		&view.Item.ID, &view.Item.OwnerID, &view.Item.Name,
	)
	if err != nil {
		return nil, err
	}
	view.Status = booking.Status(rawStatus)
	return &view, nil
}
