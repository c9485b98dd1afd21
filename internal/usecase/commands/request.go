package commands

import (
	"context"

	"gearshare/internal/domain/request"
	"gearshare/internal/infra"
	"gearshare/internal/pkg/clock"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase/queries"
	"gearshare/internal/usecase/shared"
)

var ErrInvalidRequest = errs.New("invalid item request payload")

type RequestCommands interface {
	Create(ctx context.Context, description string, requesterID int64) (*queries.RequestView, error)
}

type requestCommandsImpl struct {
	uow   shared.UnitOfWork
	views queries.RequestReadStore
	clock clock.Clock
}

func NewRequestCommands(uow shared.UnitOfWork, views queries.RequestReadStore, clk clock.Clock) RequestCommands {
	return &requestCommandsImpl{uow: uow, views: views, clock: clk}
}

func (c *requestCommandsImpl) Create(ctx context.Context, description string, requesterID int64) (*queries.RequestView, error) {
	// Pure validation reads stay outside the transaction; the FK on
	// requester_id still catches a user deleted in between.
	if _, rerr := c.uow.CommandReads().UserByID(ctx, requesterID); rerr != nil {
		return nil, markNotFound(rerr, ErrUserNotFound)
	}

	entity, derr := request.NewItemRequest(requesterID, description, c.clock.Now())
	if derr != nil {
		return nil, errs.Mark(derr, ErrInvalidRequest)
	}

	var requestID int64
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, werr := tx.Requests().Create(ctx, tx.DB(), entity)
		if werr != nil {
			if infra.IsKind(werr, infra.KindForeignKeyViolated) {
				return errs.Mark(werr, ErrUserNotFound)
			}
			return werr
		}
		requestID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.views.FindByID(ctx, requestID)
}
