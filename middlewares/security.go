package middlewares

import (
	"github.com/gin-gonic/gin"
)

// apiHeaders lock responses down to plain JSON data.
var apiHeaders = map[string]string{
	"X-Content-Type-Options":  "nosniff",
	"Content-Security-Policy": "default-src 'none'; frame-ancestors 'none'",
	"Referrer-Policy":         "no-referrer",
	"Cache-Control":           "no-store",
}

// SecurityHeaders sets apiHeaders on every response. HSTS is only sent on
// requests that arrived over HTTPS, directly or through a proxy.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		for k, v := range apiHeaders {
			h.Set(k, v)
		}
		if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
			h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}
		c.Next()
	}
}
