//go:build unit

package commands_test

import (
	"context"
	"testing"

	"gearshare/internal/infra"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase/commands"
	"gearshare/internal/usecase/queries"
	queriesmock "gearshare/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserCommands_Create(t *testing.T) {
	params := commands.CreateUserParams{Name: "renter", Email: "renter@example.com"}

	t.Run("persists a valid user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow := seededUoW()
		views := queriesmock.NewMockUserReadStore(ctrl)
		views.EXPECT().FindByID(gomock.Any(), int64(1)).
			Return(&queries.UserView{ID: 1, Name: params.Name, Email: params.Email}, nil)

		sut := commands.NewUserCommands(uow, views)

		view, err := sut.Create(context.Background(), params)
		require.NoError(t, err)
		assert.Equal(t, params.Email, view.Email)
		require.Len(t, uow.Tx.UserRepo.Created, 1)
	})

	t.Run("duplicate email maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow := seededUoW()
		uow.Tx.UserRepo.CreateErr = infra.WrapRepoErr("duplicate", errs.New("23505"), infra.KindDuplicateKey)
		sut := commands.NewUserCommands(uow, queriesmock.NewMockUserReadStore(ctrl))

		_, err := sut.Create(context.Background(), params)
		assert.True(t, errs.Is(err, commands.ErrEmailConflict))
	})

	t.Run("invalid email never reaches storage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow := seededUoW()
		sut := commands.NewUserCommands(uow, queriesmock.NewMockUserReadStore(ctrl))

		bad := params
		bad.Email = "not-an-email"
		_, err := sut.Create(context.Background(), bad)
		assert.True(t, errs.Is(err, commands.ErrInvalidUser))
		assert.Empty(t, uow.Tx.UserRepo.Created)
	})
}

func TestUserCommands_Delete(t *testing.T) {
	t.Run("removes the user and their bookings in one transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow := seededUoW()
		sut := commands.NewUserCommands(uow, queriesmock.NewMockUserReadStore(ctrl))

		err := sut.Delete(context.Background(), renterID)
		require.NoError(t, err)
		assert.Equal(t, []int64{renterID}, uow.Tx.BookingRepo.DeletedRenterIDs)
		assert.Equal(t, []int64{renterID}, uow.Tx.UserRepo.DeletedIDs)
	})

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow := seededUoW()
		sut := commands.NewUserCommands(uow, queriesmock.NewMockUserReadStore(ctrl))

		err := sut.Delete(context.Background(), 404)
		assert.True(t, errs.Is(err, commands.ErrUserNotFound))
		assert.Empty(t, uow.Tx.UserRepo.DeletedIDs)
	})
}
