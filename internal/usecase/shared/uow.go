package shared

import (
	"context"
	"time"

	"gearshare/internal/domain/booking"
	"gearshare/internal/domain/item"
	"gearshare/internal/domain/request"
	"gearshare/internal/domain/user"
	"gearshare/internal/infra/db"
)

type UnitOfWork interface {
	// Within runs fn in a ReadCommitted transaction with retry on
	// serialization failures, so ownership checks and status writes are
	// atomic.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads gives command handlers snapshot access outside a
	// transaction for pure validation reads.
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Items() ItemRepository
	Users() UserRepository
	Comments() CommentRepository
	Requests() RequestRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	UserByID(ctx context.Context, id int64) (*UserSnapshot, error)
	ItemByID(ctx context.Context, id int64) (*ItemSnapshot, error)
	BookingByID(ctx context.Context, id int64) (*BookingSnapshot, error)
	// SlotsByRenterAndItem feeds the comment eligibility gate with the
	// caller's booking history for one item.
	SlotsByRenterAndItem(ctx context.Context, renterID, itemID int64) ([]booking.Slot, error)
}

// Write-side snapshots keep command handlers off the read-model types.
type UserSnapshot struct {
	ID    int64
	Name  string
	Email string
}

type ItemSnapshot struct {
	ID          int64
	OwnerID     int64
	Name        string
	Description string
	Available   bool
	RequestID   *int64
}

type BookingSnapshot struct {
	ID       int64
	ItemID   int64
	OwnerID  int64
	RenterID int64
	Start    time.Time
	End      time.Time
	Status   booking.Status
}

type BookingRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (int64, error)
	UpdateStatus(ctx context.Context, dbtx db.DBTX, id int64, status booking.Status) error
	DeleteByRenterID(ctx context.Context, dbtx db.DBTX, renterID int64) error
}

type ItemRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, it *item.Item) (int64, error)
	Update(ctx context.Context, dbtx db.DBTX, it *item.Item) error
	Delete(ctx context.Context, dbtx db.DBTX, id int64) error
}

type UserRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, u *user.User) (int64, error)
	Update(ctx context.Context, dbtx db.DBTX, u *user.User) error
	Delete(ctx context.Context, dbtx db.DBTX, id int64) error
}

type CommentRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, c *item.Comment) (int64, error)
}

type RequestRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, r *request.ItemRequest) (int64, error)
}
