package queries

import (
	"context"
	"time"

	"gearshare/internal/domain/booking"
)

// Read models (DTO for read side)

type UserRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ItemRef struct {
	ID      int64  `json:"id"`
	OwnerID int64  `json:"ownerId"`
	Name    string `json:"name"`
}

type BookingView struct {
	ID     int64          `json:"id"`
	Start  time.Time      `json:"start"`
	End    time.Time      `json:"end"`
	Status booking.Status `json:"status"`
	Booker UserRef        `json:"booker"`
	Item   ItemRef        `json:"item"`
}

// ItemSlot joins the resolver's minimal slot with the booker reference the
// embedded summary exposes.
type ItemSlot struct {
	booking.Slot
	BookerID int64
}

// BookingRef is the compact last/next summary embedded in item views.
type BookingRef struct {
	ID       int64          `json:"id"`
	BookerID int64          `json:"bookerId"`
	Start    time.Time      `json:"start"`
	End      time.Time      `json:"end"`
	Status   booking.Status `json:"status"`
}

type CommentView struct {
	ID         int64     `json:"id"`
	AuthorName string    `json:"authorName"`
	Text       string    `json:"text"`
	ItemID     int64     `json:"itemId"`
	Created    time.Time `json:"created"`
}

type ItemView struct {
	ID          int64          `json:"id"`
	OwnerID     int64          `json:"ownerId"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Available   bool           `json:"available"`
	LastBooking *BookingRef    `json:"lastBooking"`
	NextBooking *BookingRef    `json:"nextBooking"`
	Comments    []*CommentView `json:"comments"`
}

type UserView struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type RequestAnswer struct {
	ItemID  int64  `json:"itemId"`
	Name    string `json:"name"`
	OwnerID int64  `json:"ownerId"`
}

type RequestView struct {
	ID          int64            `json:"id"`
	Description string           `json:"description"`
	Created     time.Time        `json:"created"`
	Items       []*RequestAnswer `json:"items"`
}

// Read store contracts implemented by internal/infra/readstore.

type BookingReadStore interface {
	FindViewByID(ctx context.Context, id int64) (*BookingView, error)
	FindByRenter(ctx context.Context, renterID int64, status *booking.Status) ([]*BookingView, error)
	FindByOwner(ctx context.Context, ownerID int64, status *booking.Status) ([]*BookingView, error)
	SlotsForItem(ctx context.Context, itemID int64) ([]ItemSlot, error)
}

type ItemReadStore interface {
	FindByID(ctx context.Context, id int64) (*ItemView, error)
	FindAllByOwner(ctx context.Context, ownerID int64) ([]*ItemView, error)
	Search(ctx context.Context, text string) ([]*ItemView, error)
	CommentsForItem(ctx context.Context, itemID int64) ([]*CommentView, error)
	CommentByID(ctx context.Context, id int64) (*CommentView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id int64) (*UserView, error)
	FindAll(ctx context.Context) ([]*UserView, error)
}

type RequestReadStore interface {
	FindByID(ctx context.Context, id int64) (*RequestView, error)
	FindByRequester(ctx context.Context, requesterID int64) ([]*RequestView, error)
	FindAllOthers(ctx context.Context, requesterID int64) ([]*RequestView, error)
}
