package middleware

import (
	"user-directory-service/pkg/logger"

	"github.com/gin-gonic/gin"
)

// RequestID reuses an incoming X-Request-ID or mints one, stores it in the
// request context for logging and echoes it back on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(logger.RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = logger.NewRequestID()
		}

		c.Request = c.Request.WithContext(logger.ContextWithRequestID(c.Request.Context(), id))
		c.Set(string(logger.RequestIDKey), id)
		c.Header(logger.RequestIDHeader, id)

		c.Next()
	}
}
