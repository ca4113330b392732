package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"giftlist-backend/pkg/logger"
)

// Logger emits one structured access log line per request, correlated with
// the request id.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logger.Info("HTTP Request", map[string]interface{}{
			"request_id": RequestIDFrom(c),
			"method":     c.Request.Method,
			"path":       path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"ip":         c.ClientIP(),
		})
	}
}
