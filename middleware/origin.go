package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Origin validation example: adjust to your own domain/token logic.
// The join payload already carries a trusted identity, so by default the
// upgrade is allowed through.
func Origin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet && c.Request.URL.Path == "/ws" {
			// Example: validate Header/Cookie here if the deployment needs it.
			// origin := c.GetHeader("Origin")
			// if !allowed(origin) { c.AbortWithStatus(403); return }
		}
		c.Next()
	}
}
