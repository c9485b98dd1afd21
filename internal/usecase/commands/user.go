package commands

import (
	"context"

	"gearshare/internal/domain/user"
	"gearshare/internal/infra"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase/queries"
	"gearshare/internal/usecase/shared"
)

var (
	ErrEmailConflict = errs.New("email already registered")
	ErrInvalidUser   = errs.New("invalid user payload")
)

type CreateUserParams struct {
	Name  string
	Email string
}

type PatchUserParams struct {
	Name  *string
	Email *string
}

type UserCommands interface {
	Create(ctx context.Context, params CreateUserParams) (*queries.UserView, error)
	Patch(ctx context.Context, userID int64, params PatchUserParams) (*queries.UserView, error)
	// Delete removes the user and, in the same transaction, every booking
	// they made (administrative cascade).
	Delete(ctx context.Context, userID int64) error
}

type userCommandsImpl struct {
	uow   shared.UnitOfWork
	views queries.UserReadStore
}

func NewUserCommands(uow shared.UnitOfWork, views queries.UserReadStore) UserCommands {
	return &userCommandsImpl{uow: uow, views: views}
}

func (c *userCommandsImpl) Create(ctx context.Context, params CreateUserParams) (*queries.UserView, error) {
	entity, err := user.NewUser(params.Name, params.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidUser)
	}

	var userID int64
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, werr := tx.Users().Create(ctx, tx.DB(), entity)
		if werr != nil {
			if infra.IsKind(werr, infra.KindDuplicateKey) {
				return ErrEmailConflict
			}
			return werr
		}
		userID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.views.FindByID(ctx, userID)
}

func (c *userCommandsImpl) Patch(ctx context.Context, userID int64, params PatchUserParams) (*queries.UserView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, rerr := tx.Reads().UserByID(ctx, userID)
		if rerr != nil {
			return markNotFound(rerr, ErrUserNotFound)
		}

		entity := user.ReconstructUser(snap.ID, snap.Name, snap.Email)
		if derr := entity.Patch(params.Name, params.Email); derr != nil {
			return errs.Mark(derr, ErrInvalidUser)
		}

		if werr := tx.Users().Update(ctx, tx.DB(), entity); werr != nil {
			if infra.IsKind(werr, infra.KindDuplicateKey) {
				return ErrEmailConflict
			}
			return werr
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.views.FindByID(ctx, userID)
}

func (c *userCommandsImpl) Delete(ctx context.Context, userID int64) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, rerr := tx.Reads().UserByID(ctx, userID); rerr != nil {
			return markNotFound(rerr, ErrUserNotFound)
		}
		if werr := tx.Bookings().DeleteByRenterID(ctx, tx.DB(), userID); werr != nil {
			return werr
		}
		return tx.Users().Delete(ctx, tx.DB(), userID)
	})
}
