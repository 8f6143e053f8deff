package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

type ctxKey string

const clientIPKey ctxKey = "client_ip"

// CaptureClientIP stores the caller's IP on both the gin context and the
// request context so service-layer audit logging can pick it up.
func CaptureClientIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		c.Set(string(clientIPKey), ip)
		ctx := context.WithValue(c.Request.Context(), clientIPKey, ip)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// GetIPFromContext extracts the client IP recorded by CaptureClientIP.
func GetIPFromContext(ctx context.Context) string {
	if ip, ok := ctx.Value(clientIPKey).(string); ok {
		return ip
	}
	return ""
}

// GetIPFromGin reads the captured IP off a gin context.
func GetIPFromGin(c *gin.Context) string {
	if v, exists := c.Get(string(clientIPKey)); exists {
		if ip, ok := v.(string); ok {
			return ip
		}
	}
	return c.ClientIP()
}
