package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/medlink-api/pkg/logger"
)

// Logger returns a middleware that logs HTTP requests. Bodies are never
// logged; they carry patient data.
func Logger(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		// Process request
		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		if raw != "" {
			path = path + "?" + raw
		}

		event := l.Zerolog().Info()
		msg := "Request processed"
		switch {
		case statusCode >= 500:
			event, msg = l.Zerolog().Error(), "Server error"
		case statusCode >= 400:
			event, msg = l.Zerolog().Warn(), "Client error"
		}

		event.
			Str("request_id", c.GetString(ContextRequestID)).
			Str("session_id", c.GetString(ContextSessionID)).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("ip", c.ClientIP()).
			Int("status", statusCode).
			Dur("duration", latency).
			Str("user_agent", c.Request.UserAgent()).
			Msg(msg)
	}
}
