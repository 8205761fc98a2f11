package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS is a permissive cross-origin middleware for the query endpoints.
//
// Behavior:
//   - Adds Access-Control-Allow-* headers to every response.
//   - Answers OPTIONS preflight requests with 204 and no body.
//
// The API serves public read-only fund data, so a wildcard origin is
// acceptable here.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Headers", "Content-Type,Authorization")
		h.Set("Access-Control-Allow-Methods", "GET,PUT,POST,DELETE,OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
