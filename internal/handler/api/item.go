package api

import (
	"net/http"

	reqdto "gearshare/internal/handler/dto/request"
	resdto "gearshare/internal/handler/dto/response"
	"gearshare/internal/handler/middleware"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase/commands"
	"gearshare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ItemHandler struct {
	commands commands.ItemCommands
	queries  queries.ItemQueries
}

func NewItemHandler(cmd commands.ItemCommands, qry queries.ItemQueries) *ItemHandler {
	return &ItemHandler{
		commands: cmd,
		queries:  qry,
	}
}

// @Summary Publish item
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Calling user id"
// @Param request body reqdto.CreateItemRequest true "Item payload"
// @Success 201 {object} resdto.ItemResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /items [post]
func (h *ItemHandler) Create(c *gin.Context) {
	ownerID, ok := middleware.GetSharerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.commands.Create(c.Request.Context(), req.ToParams(), ownerID)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errs.Is(err, commands.ErrRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Item request not found"})
		case errs.Is(err, commands.ErrInvalidItem):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Item name and description must not be empty"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromItemView(view))
}

// @Summary Update item
// @Description Partial update; only the owner may edit
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Calling user id"
// @Param itemId path int true "Item ID"
// @Param request body reqdto.PatchItemRequest true "Fields to update"
// @Success 200 {object} resdto.ItemResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /items/{itemId} [patch]
func (h *ItemHandler) Patch(c *gin.Context) {
	callerID, ok := middleware.GetSharerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	itemID, err := parseIDParam(c, "itemId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}

	var req reqdto.PatchItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.commands.Patch(c.Request.Context(), itemID, req.ToParams(), callerID)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		case errs.Is(err, commands.ErrNotItemOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "Only the owner may edit an item"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemView(view))
}

// @Summary Delete item
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header int true "Calling user id"
// @Param itemId path int true "Item ID"
// @Success 204
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /items/{itemId} [delete]
func (h *ItemHandler) Delete(c *gin.Context) {
	callerID, ok := middleware.GetSharerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	itemID, err := parseIDParam(c, "itemId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}

	if err := h.commands.Delete(c.Request.Context(), itemID, callerID); err != nil {
		switch {
		case errs.Is(err, commands.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		case errs.Is(err, commands.ErrNotItemOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "Only the owner may delete an item"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get item
// @Description Booking summary (last/next) is embedded only for the owner
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header int true "Calling user id"
// @Param itemId path int true "Item ID"
// @Success 200 {object} resdto.ItemResponse
// @Failure 404 {object} map[string]string
// @Router /items/{itemId} [get]
func (h *ItemHandler) GetByID(c *gin.Context) {
	callerID, ok := middleware.GetSharerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	itemID, err := parseIDParam(c, "itemId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), itemID, callerID)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemView(view))
}

// @Summary List the caller's items
// @Description Each item carries its booking summary and comments
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header int true "Calling user id"
// @Success 200 {array} resdto.ItemResponse
// @Router /items [get]
func (h *ItemHandler) ListForOwner(c *gin.Context) {
	ownerID, ok := middleware.GetSharerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	views, err := h.queries.ListForOwner(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemViews(views))
}

// @Summary Search available items
// @Description Case-insensitive match on name or description; blank text returns an empty list
// @Tags items
// @Produce json
// @Param text query string true "Search text"
// @Success 200 {array} resdto.ItemResponse
// @Router /items/search [get]
func (h *ItemHandler) Search(c *gin.Context) {
	views, err := h.queries.Search(c.Request.Context(), c.Query("text"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemViews(views))
}

// @Summary Comment on item
// @Description Allowed only after a booking of the item has ended
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Calling user id"
// @Param itemId path int true "Item ID"
// @Param request body reqdto.CreateCommentRequest true "Comment payload"
// @Success 201 {object} resdto.CommentResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 412 {object} map[string]string
// @Router /items/{itemId}/comment [post]
func (h *ItemHandler) CreateComment(c *gin.Context) {
	authorID, ok := middleware.GetSharerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	itemID, err := parseIDParam(c, "itemId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}

	var req reqdto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.commands.CreateComment(c.Request.Context(), itemID, authorID, req.Text)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errs.Is(err, commands.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		case errs.Is(err, commands.ErrNotBooked):
			c.JSON(http.StatusForbidden, gin.H{"error": "Only users who booked the item may comment"})
		case errs.Is(err, commands.ErrBookingNotCompleted):
			c.JSON(http.StatusPreconditionFailed, gin.H{"error": "Commenting requires a booking that has already ended"})
		case errs.Is(err, commands.ErrInvalidComment):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Comment text must not be empty"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCommentView(view))
}
