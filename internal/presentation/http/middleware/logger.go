package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LoggerMiddleware logs every request with a short request id, the
// authenticated username when present, and the outcome.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()

		c.Next()

		fullPath := c.Request.URL.Path
		if query := c.Request.URL.RawQuery; query != "" {
			fullPath += "?" + query
		}

		// The auth middleware runs after this one, so the username is only
		// present on protected routes.
		actor := "-"
		if username, ok := c.Get("username"); ok {
			if name, ok := username.(string); ok && name != "" {
				actor = name
			}
		}

		log.Printf("req=%s %s %s status=%d user=%s ip=%s took=%v",
			requestID[:8],
			c.Request.Method,
			fullPath,
			c.Writer.Status(),
			actor,
			c.ClientIP(),
			time.Since(start),
		)

		for _, e := range c.Errors {
			log.Printf("req=%s error: %v", requestID[:8], e.Err)
		}
	}
}
