package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tokensmith.app/forge/common/logger"
)

const RequestIDHeader = "X-Request-Id"

// RequestID propagates the caller's request id, or assigns one, and adds it
// to the log fields of the request context.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" || len(requestID) > 128 {
			requestID = uuid.NewString()
		}
		c.Header(RequestIDHeader, requestID)

		ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{
			RequestID: logger.Ptr(requestID),
			Component: "tokensmith.http",
		})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
