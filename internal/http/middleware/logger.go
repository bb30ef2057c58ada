package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger prints one access-log line per request. The matched route
// pattern is logged next to the raw path so PNR-bearing URLs can be
// grouped without parsing.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		log.Printf("http rid=%s %s %s route=%s status=%d bytes=%d took=%s ip=%s",
			GetRequestID(c),
			c.Request.Method,
			c.Request.URL.Path,
			route,
			c.Writer.Status(),
			c.Writer.Size(),
			elapsed.Round(time.Microsecond),
			c.ClientIP(),
		)
	}
}
