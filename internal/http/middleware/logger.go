package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger writes one line per request, tagged with the request id.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path += "?" + raw
		}
		line := "[HTTP] request_id=%s method=%s path=%s status=%d latency_ms=%.3f ip=%s bytes=%d"
		args := []any{
			GetRequestID(c),
			c.Request.Method,
			path,
			c.Writer.Status(),
			float64(time.Since(start).Microseconds()) / 1000.0,
			c.ClientIP(),
			c.Writer.Size(),
		}
		if errs := c.Errors.ByType(gin.ErrorTypePrivate).String(); errs != "" {
			line += " errors=%q"
			args = append(args, errs)
		}
		log.Printf(line, args...)
	}
}
