package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

type RequestID interface {
	Tag() gin.HandlerFunc
}

type requestID struct {
}

// Tag attaches a request id to every request, honoring one supplied by the
// caller, so log lines from a single page action can be correlated.
func (r *requestID) Tag() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Request.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

func NewRequestID() RequestID {
	return &requestID{}
}
