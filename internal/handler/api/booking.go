package api

import (
	"net/http"
	"strconv"

	"gearshare/internal/domain/booking"
	reqdto "gearshare/internal/handler/dto/request"
	resdto "gearshare/internal/handler/dto/response"
	"gearshare/internal/handler/middleware"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase/commands"
	"gearshare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	commands commands.BookingCommands
	queries  queries.BookingQueries
}

func NewBookingHandler(cmd commands.BookingCommands, qry queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		commands: cmd,
		queries:  qry,
	}
}

// @Summary Create booking
// @Description Book an item for a period; the booking starts in WAITING state
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Calling user id"
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	renterID, ok := middleware.GetSharerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.commands.Create(c.Request.Context(), req.ToParams(), renterID)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errs.Is(err, commands.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		case errs.Is(err, commands.ErrItemUnavailable):
			c.JSON(http.StatusConflict, gin.H{"error": "Item is not available for booking"})
		case errs.Is(err, commands.ErrInvalidPeriod):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Booking start must precede end"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Approve or reject booking
// @Description Item owner decides a pending booking
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Calling user id"
// @Param bookingId path int true "Booking ID"
// @Param approved query bool true "true approves, false rejects"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{bookingId} [patch]
func (h *BookingHandler) Decide(c *gin.Context) {
	approverID, ok := middleware.GetSharerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	bookingID, err := parseIDParam(c, "bookingId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking id"})
		return
	}

	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'approved' must be true or false"})
		return
	}

	view, err := h.commands.Decide(c.Request.Context(), bookingID, approverID, approved)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errs.Is(err, commands.ErrNotItemOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "Only the item owner may decide a booking"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Get booking
// @Description Get a booking; visible to its renter and the item owner only
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Calling user id"
// @Param bookingId path int true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{bookingId} [get]
func (h *BookingHandler) GetByID(c *gin.Context) {
	callerID, ok := middleware.GetSharerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	bookingID, err := parseIDParam(c, "bookingId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking id"})
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), bookingID, callerID)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errs.Is(err, queries.ErrBookingNotViewed):
			c.JSON(http.StatusForbidden, gin.H{"error": "Booking is visible to its renter and item owner only"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List bookings made by the caller
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Calling user id"
// @Param status query string false "Filter by status (WAITING, APPROVED, REJECTED)"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListForRenter(c *gin.Context) {
	renterID, ok := middleware.GetSharerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	status, err := parseStatusFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown booking status"})
		return
	}

	views, err := h.queries.ListForRenter(c.Request.Context(), renterID, status)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary List bookings on the caller's items
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Calling user id"
// @Param status query string false "Filter by status (WAITING, APPROVED, REJECTED)"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/owner [get]
func (h *BookingHandler) ListForOwner(c *gin.Context) {
	ownerID, ok := middleware.GetSharerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	status, err := parseStatusFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown booking status"})
		return
	}

	views, err := h.queries.ListForOwner(c.Request.Context(), ownerID, status)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errs.Is(err, queries.ErrNoOwnerBookings):
			c.JSON(http.StatusNotFound, gin.H{"error": "No bookings found for owner"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

func parseStatusFilter(c *gin.Context) (*booking.Status, error) {
	raw := c.Query("status")
	if raw == "" {
		return nil, nil
	}
	status, err := booking.ParseStatus(raw)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

func parseIDParam(c *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}
