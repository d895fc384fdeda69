package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	pkgResponse "leave-calendar-sync/pkg/response"
)

// Auth rejects requests whose X-Internal-Key does not match the configured
// key. With no key configured every request passes.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.internalKey == "" {
			c.Next()
			return
		}

		got := c.GetHeader(HeaderInternalKey)
		if subtle.ConstantTimeCompare([]byte(got), []byte(m.internalKey)) != 1 {
			m.l.Warnf(c.Request.Context(), "auth: rejected %s %s", c.Request.Method, c.Request.URL.Path)
			pkgResponse.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
