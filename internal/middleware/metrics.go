package middleware

import (
	"aistudio-academy/internal/metrics"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Metrics counts requests by matched route, so path parameters do not blow up
// label cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
