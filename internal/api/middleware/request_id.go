package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/modforge/scripthost/internal/shared/id"
)

// RequestIDKey is the context key the request ID is stored under.
const RequestIDKey = "request_id"

// RequestID assigns a ULID to each request and echoes it in the response.
// Inbound X-Request-ID headers are preserved so callers can correlate.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader("X-Request-ID")
		if reqID == "" {
			reqID = string(id.NewRequestID())
		}

		c.Set(RequestIDKey, reqID)
		c.Writer.Header().Set("X-Request-ID", reqID)
		c.Next()
	}
}
