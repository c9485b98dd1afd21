//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"gearshare/internal/domain/booking"
	"gearshare/internal/handler/api"
	"gearshare/internal/handler/middleware"
	"gearshare/internal/usecase/commands"
	"gearshare/internal/usecase/queries"
	"gearshare/tests/common/httptest"
	commandsmock "gearshare/tests/mock/commands"
	queriesmock "gearshare/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	renterID = int64(1)
	ownerID  = int64(2)
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	handler := api.NewBookingHandler(s.mockCommands, s.mockQueries)

	group := s.router.Group("/bookings")
	group.Use(middleware.RequireSharerID())
	group.POST("", handler.Create)
	group.GET("", handler.ListForRenter)
	group.GET("/owner", handler.ListForOwner)
	group.GET("/:bookingId", handler.GetByID)
	group.PATCH("/:bookingId", handler.Decide)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func createBookingBody() map[string]any {
	return map[string]any{
		"itemId": 10,
		"start":  "2024-06-20T10:00:00",
		"end":    "2024-06-22T10:00:00",
	}
}

func sampleView(status booking.Status) *queries.BookingView {
	return &queries.BookingView{
		ID:     5,
		Start:  time.Date(2024, 6, 20, 10, 0, 0, 0, time.UTC),
		End:    time.Date(2024, 6, 22, 10, 0, 0, 0, time.UTC),
		Status: status,
		Booker: queries.UserRef{ID: renterID, Name: "renter"},
		Item:   queries.ItemRef{ID: 10, OwnerID: ownerID, Name: "drill"},
	}
}

func (s *BookingHandlerTestSuite) TestCreate() {
	s.Run("returns 201 with the created booking", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), renterID).
			Return(sampleView(booking.StatusWaiting), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", createBookingBody(), renterID)

		httptest.RequireStatus(s.T(), rec, http.StatusCreated)
		var body struct {
			ID     int64  `json:"id"`
			Start  string `json:"start"`
			Status string `json:"status"`
		}
		httptest.DecodeBody(s.T(), rec, &body)
		s.Equal(int64(5), body.ID)
		s.Equal("WAITING", body.Status)
		s.Equal("2024-06-20T10:00:00", body.Start)
	})

	s.Run("missing sharer header is rejected with the flat error envelope", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", createBookingBody(), 0)

		httptest.RequireStatus(s.T(), rec, http.StatusBadRequest)
		var body struct {
			Error string `json:"error"`
		}
		httptest.DecodeBody(s.T(), rec, &body)
		s.Equal("X-Sharer-User-Id header is required", body.Error)
	})

	s.Run("offset timestamps are rejected by the codec", func() {
		body := createBookingBody()
		body["start"] = "2024-06-20T10:00:00Z"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", body, renterID)
		httptest.RequireStatus(s.T(), rec, http.StatusBadRequest)
	})

	s.Run("unavailable item maps to 409", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), renterID).
			Return(nil, commands.ErrItemUnavailable)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", createBookingBody(), renterID)
		httptest.RequireStatus(s.T(), rec, http.StatusConflict)
	})

	s.Run("unknown item maps to 404", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), renterID).
			Return(nil, commands.ErrItemNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", createBookingBody(), renterID)
		httptest.RequireStatus(s.T(), rec, http.StatusNotFound)
	})
}

func (s *BookingHandlerTestSuite) TestDecide() {
	s.Run("owner approval returns 200", func() {
		s.mockCommands.EXPECT().Decide(gomock.Any(), int64(5), ownerID, true).
			Return(sampleView(booking.StatusApproved), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/5?approved=true", nil, ownerID)
		httptest.RequireStatus(s.T(), rec, http.StatusOK)
	})

	s.Run("non-owner maps to 403", func() {
		s.mockCommands.EXPECT().Decide(gomock.Any(), int64(5), renterID, true).
			Return(nil, commands.ErrNotItemOwner)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/5?approved=true", nil, renterID)
		httptest.RequireStatus(s.T(), rec, http.StatusForbidden)
	})

	s.Run("missing approved parameter is rejected", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/5", nil, ownerID)
		httptest.RequireStatus(s.T(), rec, http.StatusBadRequest)
	})
}

func (s *BookingHandlerTestSuite) TestGetByID() {
	s.Run("third party maps to 403", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(5), int64(99)).
			Return(nil, queries.ErrBookingNotViewed)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/5", nil, 99)
		httptest.RequireStatus(s.T(), rec, http.StatusForbidden)
	})

	s.Run("unknown booking maps to 404", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(5), renterID).
			Return(nil, queries.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/5", nil, renterID)
		httptest.RequireStatus(s.T(), rec, http.StatusNotFound)
	})
}

func (s *BookingHandlerTestSuite) TestLists() {
	s.Run("owner with no bookings maps to 404", func() {
		s.mockQueries.EXPECT().ListForOwner(gomock.Any(), ownerID, gomock.Nil()).
			Return(nil, queries.ErrNoOwnerBookings)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/owner", nil, ownerID)
		httptest.RequireStatus(s.T(), rec, http.StatusNotFound)
	})

	s.Run("status filter is forwarded", func() {
		approved := booking.StatusApproved
		s.mockQueries.EXPECT().ListForRenter(gomock.Any(), renterID, &approved).
			Return([]*queries.BookingView{sampleView(approved)}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?status=APPROVED", nil, renterID)
		httptest.RequireStatus(s.T(), rec, http.StatusOK)
	})

	s.Run("unknown status filter is rejected", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?status=PENDING", nil, renterID)
		httptest.RequireStatus(s.T(), rec, http.StatusBadRequest)
	})
}
