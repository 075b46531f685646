package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Logging writes one line per request and feeds the metrics collector.
// Routes are recorded by their pattern so session ids do not explode the key space.
func (m Middleware) Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()

		if m.metrics != nil {
			m.metrics.RecordRequest(c.Request.Method, route, status, latency)
		}

		ctx := c.Request.Context()
		switch {
		case status >= http.StatusInternalServerError:
			m.l.Errorf(ctx, "%s %s %d %s", c.Request.Method, route, status, latency)
		case status >= http.StatusBadRequest:
			m.l.Warnf(ctx, "%s %s %d %s", c.Request.Method, route, status, latency)
		default:
			m.l.Infof(ctx, "%s %s %d %s", c.Request.Method, route, status, latency)
		}
	}
}
