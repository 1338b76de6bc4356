package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/brandonkimmmm/backend-coding-test/internal/logger"
)

const requestIDHeader = "X-Request-ID"

// RequestID attaches a correlation id to every request: an inbound
// X-Request-ID header is propagated, otherwise a fresh id is
// generated. The id is stored in the request context and echoed in the
// response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		ctx := logger.WithRequestID(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)
		c.Header(requestIDHeader, id)

		c.Next()
	}
}
