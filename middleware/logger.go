package middleware

import (
	"log"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"foodie-finder/libs"
)

// RequestLogger logs each request and feeds the Prometheus counters.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		status := c.Writer.Status()

		libs.HTTPRequests.WithLabelValues(c.Request.Method, path, strconv.Itoa(status)).Inc()
		libs.HTTPDuration.WithLabelValues(c.Request.Method, path).Observe(float64(elapsed.Milliseconds()))
		log.Printf("%s %s %d %v", c.Request.Method, c.Request.URL.Path, status, elapsed)
	}
}
