//go:build unit

// Package fake provides in-memory stand-ins for the persistence contracts so
// command handlers can be tested without a database.
package fake

import (
	"context"

	"gearshare/internal/domain/booking"
	"gearshare/internal/domain/item"
	"gearshare/internal/domain/request"
	"gearshare/internal/domain/user"
	"gearshare/internal/infra"
	"gearshare/internal/infra/db"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase/shared"
)

var errNoRows = errs.New("no rows in result set")

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, errNoRows, infra.KindNotFound)
}

// UoW implements shared.UnitOfWork by running the callback synchronously
// against in-memory repositories.
type UoW struct {
	Tx        *Tx
	BeginErr  error
	CommitErr error
}

func NewUoW() *UoW {
	reads := NewCommandReads()
	return &UoW{
		Tx: &Tx{
			ReadsStub:   reads,
			BookingRepo: &BookingRepo{},
			ItemRepo:    &ItemRepo{},
			UserRepo:    &UserRepo{},
			CommentRepo: &CommentRepo{},
			RequestRepo: &RequestRepo{},
		},
	}
}

func (u *UoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if u.BeginErr != nil {
		return u.BeginErr
	}
	if err := fn(ctx, u.Tx); err != nil {
		return err
	}
	return u.CommitErr
}

func (u *UoW) CommandReads() shared.CommandReads {
	return u.Tx.ReadsStub
}

// Reads returns the seeded snapshot store for convenience in test setup.
func (u *UoW) Reads() *CommandReads {
	return u.Tx.ReadsStub
}

type Tx struct {
	ReadsStub   *CommandReads
	BookingRepo *BookingRepo
	ItemRepo    *ItemRepo
	UserRepo    *UserRepo
	CommentRepo *CommentRepo
	RequestRepo *RequestRepo
}

func (t *Tx) Bookings() shared.BookingRepository { return t.BookingRepo }
func (t *Tx) Items() shared.ItemRepository       { return t.ItemRepo }
func (t *Tx) Users() shared.UserRepository       { return t.UserRepo }
func (t *Tx) Comments() shared.CommentRepository { return t.CommentRepo }
func (t *Tx) Requests() shared.RequestRepository { return t.RequestRepo }
func (t *Tx) Reads() shared.CommandReads         { return t.ReadsStub }
func (t *Tx) DB() db.DBTX                        { return nil }

type slotKey struct {
	RenterID int64
	ItemID   int64
}

// CommandReads serves snapshots from seeded maps.
type CommandReads struct {
	Users    map[int64]*shared.UserSnapshot
	Items    map[int64]*shared.ItemSnapshot
	Bookings map[int64]*shared.BookingSnapshot
	Slots    map[slotKey][]booking.Slot
}

func NewCommandReads() *CommandReads {
	return &CommandReads{
		Users:    map[int64]*shared.UserSnapshot{},
		Items:    map[int64]*shared.ItemSnapshot{},
		Bookings: map[int64]*shared.BookingSnapshot{},
		Slots:    map[slotKey][]booking.Slot{},
	}
}

func (r *CommandReads) SeedUser(snapshot shared.UserSnapshot) {
	r.Users[snapshot.ID] = &snapshot
}

func (r *CommandReads) SeedItem(snapshot shared.ItemSnapshot) {
	r.Items[snapshot.ID] = &snapshot
}

func (r *CommandReads) SeedBooking(snapshot shared.BookingSnapshot) {
	r.Bookings[snapshot.ID] = &snapshot
}

func (r *CommandReads) SeedSlots(renterID, itemID int64, slots []booking.Slot) {
	r.Slots[slotKey{RenterID: renterID, ItemID: itemID}] = slots
}

func (r *CommandReads) UserByID(_ context.Context, id int64) (*shared.UserSnapshot, error) {
	snapshot, ok := r.Users[id]
	if !ok {
		return nil, notFound("user not found")
	}
	return snapshot, nil
}

func (r *CommandReads) ItemByID(_ context.Context, id int64) (*shared.ItemSnapshot, error) {
	snapshot, ok := r.Items[id]
	if !ok {
		return nil, notFound("item not found")
	}
	return snapshot, nil
}

func (r *CommandReads) BookingByID(_ context.Context, id int64) (*shared.BookingSnapshot, error) {
	snapshot, ok := r.Bookings[id]
	if !ok {
		return nil, notFound("booking not found")
	}
	return snapshot, nil
}

func (r *CommandReads) SlotsByRenterAndItem(_ context.Context, renterID, itemID int64) ([]booking.Slot, error) {
	return r.Slots[slotKey{RenterID: renterID, ItemID: itemID}], nil
}

type StatusUpdate struct {
	BookingID int64
	Status    booking.Status
}

type BookingRepo struct {
	Created          []*booking.Booking
	StatusUpdates    []StatusUpdate
	DeletedRenterIDs []int64
	CreateErr        error
	UpdateErr        error
	NextID           int64
}

func (r *BookingRepo) Create(_ context.Context, _ db.DBTX, b *booking.Booking) (int64, error) {
	if r.CreateErr != nil {
		return 0, r.CreateErr
	}
	r.Created = append(r.Created, b)
	r.NextID++
	return r.NextID, nil
}

func (r *BookingRepo) UpdateStatus(_ context.Context, _ db.DBTX, id int64, status booking.Status) error {
	if r.UpdateErr != nil {
		return r.UpdateErr
	}
	r.StatusUpdates = append(r.StatusUpdates, StatusUpdate{BookingID: id, Status: status})
	return nil
}

func (r *BookingRepo) DeleteByRenterID(_ context.Context, _ db.DBTX, renterID int64) error {
	r.DeletedRenterIDs = append(r.DeletedRenterIDs, renterID)
	return nil
}

type ItemRepo struct {
	Created    []*item.Item
	Updated    []*item.Item
	DeletedIDs []int64
	CreateErr  error
	NextID     int64
}

func (r *ItemRepo) Create(_ context.Context, _ db.DBTX, it *item.Item) (int64, error) {
	if r.CreateErr != nil {
		return 0, r.CreateErr
	}
	r.Created = append(r.Created, it)
	r.NextID++
	return r.NextID, nil
}

func (r *ItemRepo) Update(_ context.Context, _ db.DBTX, it *item.Item) error {
	r.Updated = append(r.Updated, it)
	return nil
}

func (r *ItemRepo) Delete(_ context.Context, _ db.DBTX, id int64) error {
	r.DeletedIDs = append(r.DeletedIDs, id)
	return nil
}

type UserRepo struct {
	Created    []*user.User
	Updated    []*user.User
	DeletedIDs []int64
	CreateErr  error
	UpdateErr  error
	NextID     int64
}

func (r *UserRepo) Create(_ context.Context, _ db.DBTX, u *user.User) (int64, error) {
	if r.CreateErr != nil {
		return 0, r.CreateErr
	}
	r.Created = append(r.Created, u)
	r.NextID++
	return r.NextID, nil
}

func (r *UserRepo) Update(_ context.Context, _ db.DBTX, u *user.User) error {
	if r.UpdateErr != nil {
		return r.UpdateErr
	}
	r.Updated = append(r.Updated, u)
	return nil
}

func (r *UserRepo) Delete(_ context.Context, _ db.DBTX, id int64) error {
	r.DeletedIDs = append(r.DeletedIDs, id)
	return nil
}

type CommentRepo struct {
	Created   []*item.Comment
	CreateErr error
	NextID    int64
}

func (r *CommentRepo) Create(_ context.Context, _ db.DBTX, c *item.Comment) (int64, error) {
	if r.CreateErr != nil {
		return 0, r.CreateErr
	}
	r.Created = append(r.Created, c)
	r.NextID++
	return r.NextID, nil
}

type RequestRepo struct {
	Created   []*request.ItemRequest
	CreateErr error
	NextID    int64
}

func (r *RequestRepo) Create(_ context.Context, _ db.DBTX, req *request.ItemRequest) (int64, error) {
	if r.CreateErr != nil {
		return 0, r.CreateErr
	}
	r.Created = append(r.Created, req)
	r.NextID++
	return r.NextID, nil
}
