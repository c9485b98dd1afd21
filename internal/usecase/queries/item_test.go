//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"gearshare/internal/domain/booking"
	"gearshare/internal/pkg/clock"
	"gearshare/internal/usecase/queries"
	queriesmock "gearshare/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	itemID   = int64(10)
	ownerID  = int64(2)
	renterID = int64(1)
)

var queryNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func itemView() *queries.ItemView {
	return &queries.ItemView{ID: itemID, OwnerID: ownerID, Name: "drill", Available: true}
}

func slot(id int64, startOffsetDays, endOffsetDays int) queries.ItemSlot {
	return queries.ItemSlot{
		Slot: booking.Slot{
			ID:     id,
			Start:  queryNow.AddDate(0, 0, startOffsetDays),
			End:    queryNow.AddDate(0, 0, endOffsetDays),
			Status: booking.StatusApproved,
		},
		BookerID: renterID,
	}
}

func TestItemQueries_GetByID(t *testing.T) {
	t.Run("owner view embeds last and next bookings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		items := queriesmock.NewMockItemReadStore(ctrl)
		bookings := queriesmock.NewMockBookingReadStore(ctrl)

		items.EXPECT().FindByID(gomock.Any(), itemID).Return(itemView(), nil)
		items.EXPECT().CommentsForItem(gomock.Any(), itemID).Return([]*queries.CommentView{}, nil)
		bookings.EXPECT().SlotsForItem(gomock.Any(), itemID).Return([]queries.ItemSlot{
			slot(1, -10, -5),
			slot(2, -4, -2),
			slot(3, 3, 5),
			slot(4, 6, 8),
		}, nil)

		sut := queries.NewItemQueries(items, bookings, clock.Fixed(queryNow))

		view, err := sut.GetByID(context.Background(), itemID, ownerID)
		require.NoError(t, err)
		require.NotNil(t, view.LastBooking)
		require.NotNil(t, view.NextBooking)
		assert.Equal(t, int64(2), view.LastBooking.ID, "last is the finished booking with the latest start")
		assert.Equal(t, int64(3), view.NextBooking.ID, "next is the upcoming booking with the earliest start")
		assert.Equal(t, renterID, view.LastBooking.BookerID)
	})

	t.Run("non-owner view carries no booking summary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		items := queriesmock.NewMockItemReadStore(ctrl)
		bookings := queriesmock.NewMockBookingReadStore(ctrl)

		items.EXPECT().FindByID(gomock.Any(), itemID).Return(itemView(), nil)
		items.EXPECT().CommentsForItem(gomock.Any(), itemID).Return([]*queries.CommentView{}, nil)
		// SlotsForItem must not be called for non-owners.

		sut := queries.NewItemQueries(items, bookings, clock.Fixed(queryNow))

		view, err := sut.GetByID(context.Background(), itemID, renterID)
		require.NoError(t, err)
		assert.Nil(t, view.LastBooking)
		assert.Nil(t, view.NextBooking)
	})

	t.Run("unknown item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		items := queriesmock.NewMockItemReadStore(ctrl)
		bookings := queriesmock.NewMockBookingReadStore(ctrl)

		items.EXPECT().FindByID(gomock.Any(), itemID).Return(nil, notFoundErr())

		sut := queries.NewItemQueries(items, bookings, clock.Fixed(queryNow))

		_, err := sut.GetByID(context.Background(), itemID, ownerID)
		assert.ErrorIs(t, err, queries.ErrItemNotFound)
	})
}

func TestItemQueries_Search(t *testing.T) {
	t.Run("blank text short-circuits to an empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		items := queriesmock.NewMockItemReadStore(ctrl)
		bookings := queriesmock.NewMockBookingReadStore(ctrl)
		// Search must not reach the store for blank text.

		sut := queries.NewItemQueries(items, bookings, clock.Fixed(queryNow))

		views, err := sut.Search(context.Background(), "   ")
		require.NoError(t, err)
		assert.Empty(t, views)
		assert.NotNil(t, views)
	})

	t.Run("delegates non-blank text", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		items := queriesmock.NewMockItemReadStore(ctrl)
		bookings := queriesmock.NewMockBookingReadStore(ctrl)

		items.EXPECT().Search(gomock.Any(), "drill").Return([]*queries.ItemView{itemView()}, nil)

		sut := queries.NewItemQueries(items, bookings, clock.Fixed(queryNow))

		views, err := sut.Search(context.Background(), "drill")
		require.NoError(t, err)
		require.Len(t, views, 1)
	})
}
