package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger writes one structured line per request after it completes.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"ip", c.ClientIP(),
		}
		if sessionID := c.GetString(SessionKey); sessionID != "" {
			attrs = append(attrs, "session", sessionID)
		}

		if c.Writer.Status() >= 500 {
			slog.Error("request", attrs...)
		} else {
			slog.Info("request", attrs...)
		}
	}
}
