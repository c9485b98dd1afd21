package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the error envelope the service returns: a single error string,
// the same flat shape handlers emit inline with gin.H. Status rides along for
// middleware but never serializes.
type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
	Detail any    `json:"detail,omitempty"`
}

func NewResponse(status int, msg string) Response {
	return Response{Status: status, Error: msg}
}

// AbortWithError writes the envelope and keeps the original error on the gin
// context so the logging middleware can report it.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("httperr.AbortWithError called with a nil error")
	}

	resp := NewResponse(status, msg)
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
