package httpapi

import (
	"time"

	"github.com/gin-gonic/gin"
)

// loggingMiddleware logs one line per request with method, path, status and
// duration.
func (s *HTTPServer) loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		args := []any{
			"method", method,
			"path", path,
			"status", status,
			"duration", time.Since(start).String(),
		}

		ctx := c.Request.Context()
		if status >= 500 {
			s.logger.Error(ctx, "HTTP request", args...)
		} else {
			s.logger.Info(ctx, "HTTP request", args...)
		}
	}
}
