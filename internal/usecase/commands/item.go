package commands

import (
	"context"

	"gearshare/internal/domain/booking"
	"gearshare/internal/domain/item"
	"gearshare/internal/infra"
	"gearshare/internal/pkg/clock"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase/queries"
	"gearshare/internal/usecase/shared"
)

var (
	ErrNotBooked           = errs.New("user has never booked this item")
	ErrBookingNotCompleted = errs.New("user has no completed booking for this item")
	ErrInvalidItem         = errs.New("invalid item payload")
	ErrInvalidComment      = errs.New("invalid comment payload")
	ErrRequestNotFound     = errs.New("item request not found")
)

type CreateItemParams struct {
	Name        string
	Description string
	Available   bool
	RequestID   *int64
}

type PatchItemParams struct {
	Name        *string
	Description *string
	Available   *bool
}

type ItemCommands interface {
	Create(ctx context.Context, params CreateItemParams, ownerID int64) (*queries.ItemView, error)
	Patch(ctx context.Context, itemID int64, params PatchItemParams, callerID int64) (*queries.ItemView, error)
	Delete(ctx context.Context, itemID, callerID int64) error
	// CreateComment persists a comment once the eligibility gate passes:
	// the author must have a booking for the item whose end has passed.
	CreateComment(ctx context.Context, itemID, authorID int64, text string) (*queries.CommentView, error)
}

type itemCommandsImpl struct {
	uow   shared.UnitOfWork
	views queries.ItemReadStore
	clock clock.Clock
}

func NewItemCommands(uow shared.UnitOfWork, views queries.ItemReadStore, clk clock.Clock) ItemCommands {
	return &itemCommandsImpl{uow: uow, views: views, clock: clk}
}

func (c *itemCommandsImpl) Create(ctx context.Context, params CreateItemParams, ownerID int64) (*queries.ItemView, error) {
	var itemID int64
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, rerr := tx.Reads().UserByID(ctx, ownerID); rerr != nil {
			return markNotFound(rerr, ErrUserNotFound)
		}

		entity, derr := item.NewItem(ownerID, params.Name, params.Description, params.Available, params.RequestID)
		if derr != nil {
			return errs.Mark(derr, ErrInvalidItem)
		}

		id, werr := tx.Items().Create(ctx, tx.DB(), entity)
		if werr != nil {
			if infra.IsKind(werr, infra.KindForeignKeyViolated) {
				return errs.Mark(werr, ErrRequestNotFound)
			}
			return werr
		}
		itemID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.views.FindByID(ctx, itemID)
}

func (c *itemCommandsImpl) Patch(ctx context.Context, itemID int64, params PatchItemParams, callerID int64) (*queries.ItemView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, rerr := tx.Reads().ItemByID(ctx, itemID)
		if rerr != nil {
			return markNotFound(rerr, ErrItemNotFound)
		}

		entity := item.ReconstructItem(snap.ID, snap.OwnerID, snap.Name, snap.Description, snap.Available, snap.RequestID)
		if !entity.OwnedBy(callerID) {
			return errs.Mark(item.ErrNotOwner, ErrNotItemOwner)
		}
		entity.Patch(params.Name, params.Description, params.Available)

		return tx.Items().Update(ctx, tx.DB(), entity)
	})
	if err != nil {
		return nil, err
	}

	return c.views.FindByID(ctx, itemID)
}

func (c *itemCommandsImpl) Delete(ctx context.Context, itemID, callerID int64) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, rerr := tx.Reads().ItemByID(ctx, itemID)
		if rerr != nil {
			return markNotFound(rerr, ErrItemNotFound)
		}
		if snap.OwnerID != callerID {
			return errs.Mark(item.ErrNotOwner, ErrNotItemOwner)
		}
		return tx.Items().Delete(ctx, tx.DB(), itemID)
	})
}

func (c *itemCommandsImpl) CreateComment(ctx context.Context, itemID, authorID int64, text string) (*queries.CommentView, error) {
	var commentID int64
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		reads := tx.Reads()

		if _, rerr := reads.UserByID(ctx, authorID); rerr != nil {
			return markNotFound(rerr, ErrUserNotFound)
		}
		if _, rerr := reads.ItemByID(ctx, itemID); rerr != nil {
			return markNotFound(rerr, ErrItemNotFound)
		}

		slots, rerr := reads.SlotsByRenterAndItem(ctx, authorID, itemID)
		if rerr != nil {
			return rerr
		}
		if gerr := booking.CheckCommentEligibility(slots, c.clock.Now()); gerr != nil {
			switch {
			case errs.Is(gerr, booking.ErrNeverBooked):
				return errs.Mark(gerr, ErrNotBooked)
			default:
				return errs.Mark(gerr, ErrBookingNotCompleted)
			}
		}

		entity, derr := item.NewComment(itemID, authorID, text, c.clock.Now())
		if derr != nil {
			return errs.Mark(derr, ErrInvalidComment)
		}

		id, werr := tx.Comments().Create(ctx, tx.DB(), entity)
		if werr != nil {
			return werr
		}
		commentID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.views.CommentByID(ctx, commentID)
}
