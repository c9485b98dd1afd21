//go:build unit

package queries_test

import (
	"context"
	"testing"

	"gearshare/internal/infra"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase/queries"
	queriesmock "gearshare/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const bookingID = int64(5)

func notFoundErr() error {
	return infra.WrapRepoErr("not found", errs.New("no rows in result set"), infra.KindNotFound)
}

func bookingView() *queries.BookingView {
	view := &queries.BookingView{ID: bookingID}
	view.Booker = queries.UserRef{ID: renterID, Name: "renter"}
	view.Item = queries.ItemRef{ID: itemID, OwnerID: ownerID, Name: "drill"}
	return view
}

func userView(id int64) *queries.UserView {
	return &queries.UserView{ID: id, Name: "someone", Email: "someone@example.com"}
}

func TestBookingQueries_GetByID(t *testing.T) {
	cases := []struct {
		name     string
		callerID int64
		wantErr  error
	}{
		{name: "renter can view", callerID: renterID},
		{name: "item owner can view", callerID: ownerID},
		{name: "third party is rejected", callerID: 99, wantErr: queries.ErrBookingNotViewed},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			bookings := queriesmock.NewMockBookingReadStore(ctrl)
			users := queriesmock.NewMockUserReadStore(ctrl)

			bookings.EXPECT().FindViewByID(gomock.Any(), bookingID).Return(bookingView(), nil)

			sut := queries.NewBookingQueries(bookings, users)

			view, err := sut.GetByID(context.Background(), bookingID, tt.callerID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, bookingID, view.ID)
		})
	}

	t.Run("unknown booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		bookings := queriesmock.NewMockBookingReadStore(ctrl)
		users := queriesmock.NewMockUserReadStore(ctrl)

		bookings.EXPECT().FindViewByID(gomock.Any(), bookingID).Return(nil, notFoundErr())

		sut := queries.NewBookingQueries(bookings, users)

		_, err := sut.GetByID(context.Background(), bookingID, renterID)
		assert.ErrorIs(t, err, queries.ErrBookingNotFound)
	})
}

// The renter list returns an empty slice when there is nothing to show; the
// owner list treats the same situation as an error. Both readings are pinned
// here.
func TestBookingQueries_ListAsymmetry(t *testing.T) {
	t.Run("renter with no bookings gets an empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		bookings := queriesmock.NewMockBookingReadStore(ctrl)
		users := queriesmock.NewMockUserReadStore(ctrl)

		users.EXPECT().FindByID(gomock.Any(), renterID).Return(userView(renterID), nil)
		bookings.EXPECT().FindByRenter(gomock.Any(), renterID, gomock.Nil()).Return([]*queries.BookingView{}, nil)

		sut := queries.NewBookingQueries(bookings, users)

		views, err := sut.ListForRenter(context.Background(), renterID, nil)
		require.NoError(t, err)
		assert.Empty(t, views)
	})

	t.Run("owner with no bookings gets not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		bookings := queriesmock.NewMockBookingReadStore(ctrl)
		users := queriesmock.NewMockUserReadStore(ctrl)

		users.EXPECT().FindByID(gomock.Any(), ownerID).Return(userView(ownerID), nil)
		bookings.EXPECT().FindByOwner(gomock.Any(), ownerID, gomock.Nil()).Return([]*queries.BookingView{}, nil)

		sut := queries.NewBookingQueries(bookings, users)

		_, err := sut.ListForOwner(context.Background(), ownerID, nil)
		assert.ErrorIs(t, err, queries.ErrNoOwnerBookings)
	})

	t.Run("unknown caller is rejected before listing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		bookings := queriesmock.NewMockBookingReadStore(ctrl)
		users := queriesmock.NewMockUserReadStore(ctrl)

		users.EXPECT().FindByID(gomock.Any(), int64(99)).Return(nil, notFoundErr())

		sut := queries.NewBookingQueries(bookings, users)

		_, err := sut.ListForRenter(context.Background(), 99, nil)
		assert.ErrorIs(t, err, queries.ErrUserNotFound)
	})
}
