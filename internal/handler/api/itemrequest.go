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

type ItemRequestHandler struct {
	commands commands.RequestCommands
	queries  queries.RequestQueries
}

func NewItemRequestHandler(cmd commands.RequestCommands, qry queries.RequestQueries) *ItemRequestHandler {
	return &ItemRequestHandler{
		commands: cmd,
		queries:  qry,
	}
}

// @Summary Post item request
// @Description Ask the community for an item that is not listed yet
// @Tags requests
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Calling user id"
// @Param request body reqdto.CreateItemRequestRequest true "Request payload"
// @Success 201 {object} resdto.ItemRequestResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /requests [post]
func (h *ItemRequestHandler) Create(c *gin.Context) {
	requesterID, ok := middleware.GetSharerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateItemRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.commands.Create(c.Request.Context(), req.Description, requesterID)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errs.Is(err, commands.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Request description must not be empty"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRequestView(view))
}

// @Summary List own item requests
// @Description Newest first, each with the items answering it
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header int true "Calling user id"
// @Success 200 {array} resdto.ItemRequestResponse
// @Failure 404 {object} map[string]string
// @Router /requests [get]
func (h *ItemRequestHandler) ListOwn(c *gin.Context) {
	requesterID, ok := middleware.GetSharerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	views, err := h.queries.ListOwn(c.Request.Context(), requesterID)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRequestViews(views))
}

// @Summary List other users' item requests
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header int true "Calling user id"
// @Success 200 {array} resdto.ItemRequestResponse
// @Router /requests/all [get]
func (h *ItemRequestHandler) ListOthers(c *gin.Context) {
	requesterID, ok := middleware.GetSharerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	views, err := h.queries.ListOthers(c.Request.Context(), requesterID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRequestViews(views))
}

// @Summary Get item request
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header int true "Calling user id"
// @Param requestId path int true "Request ID"
// @Success 200 {object} resdto.ItemRequestResponse
// @Failure 404 {object} map[string]string
// @Router /requests/{requestId} [get]
func (h *ItemRequestHandler) GetByID(c *gin.Context) {
	requestID, err := parseIDParam(c, "requestId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request id"})
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), requestID)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Item request not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRequestView(view))
}
