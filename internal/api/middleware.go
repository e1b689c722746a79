package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jacksmith/taskd/internal/logger"
)

// requestLogger assigns each request a correlation ID, echoes it in the
// X-Request-ID header, and logs method, path, status, and duration.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		elapsed := time.Since(start)
		if status >= 500 {
			logger.Error("%s %s -> %d (%s) [%s]", c.Request.Method, c.Request.URL.Path, status, elapsed, requestID)
		} else {
			logger.Info("%s %s -> %d (%s) [%s]", c.Request.Method, c.Request.URL.Path, status, elapsed, requestID)
		}
	}
}
