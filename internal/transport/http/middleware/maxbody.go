package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	resp "lostfound-api/internal/transport/http/response"
)

// MaxBodyBytes bounds the request body; uploads go through here too.
func MaxBodyBytes(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
		if c.Err() != nil && !c.Writer.Written() {
			resp.AbortError(c, http.StatusRequestEntityTooLarge, "request body too large")
		}
	}
}
