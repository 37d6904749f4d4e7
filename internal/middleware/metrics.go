package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/medlink-api/pkg/metrics"
)

// Metrics records request counts and latencies by route template.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		m.RequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
		m.RequestTotal.WithLabelValues(c.Request.Method, path, status).Inc()

		if len(c.Errors) > 0 || c.Writer.Status() >= 500 {
			errType := "client"
			if c.Writer.Status() >= 500 {
				errType = "server"
			}
			m.ErrorTotal.WithLabelValues(c.Request.Method, path, errType).Inc()
		}
	}
}
