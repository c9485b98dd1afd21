package middleware

import (
	"net/http"
	"strconv"

	"gearshare/internal/handler/httperr"
	"gearshare/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// SharerHeader carries the calling user's id; the gateway in front of this
// service is trusted to have authenticated it.
const SharerHeader = "X-Sharer-User-Id"

const ctxSharerIDKey = "sharer_id"

var errMissingSharerHeader = errs.New("missing " + SharerHeader + " header")

// RequireSharerID rejects requests without a well-formed X-Sharer-User-Id
// and stores the parsed id in the request context.
func RequireSharerID() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(SharerHeader)
		if raw == "" {
			httperr.AbortWithError(c, http.StatusBadRequest, errMissingSharerHeader,
				"X-Sharer-User-Id header is required", nil)
			return
		}

		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, errs.Wrap(err, "invalid sharer id"),
				"X-Sharer-User-Id header must be an integer", nil)
			return
		}

		c.Set(ctxSharerIDKey, id)
		c.Next()
	}
}

func GetSharerID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(ctxSharerIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
