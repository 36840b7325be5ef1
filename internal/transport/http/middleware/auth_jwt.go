package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"lostfound-api/internal/core/auth"
	resp "lostfound-api/internal/transport/http/response"
)

const (
	KeyUserID = "userId"
	KeyClaims = "claims"
)

// AuthJWT validates the bearer token and, when requireRole is set, gates the
// route on that role.
func AuthJWT(j *auth.JWTer, requireRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			resp.AbortError(c, http.StatusUnauthorized, "missing token")
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			resp.AbortError(c, http.StatusUnauthorized, "invalid token")
			return
		}
		if requireRole != "" && !claims.HasRole(requireRole) {
			resp.AbortError(c, http.StatusForbidden, "forbidden")
			return
		}
		c.Set(KeyUserID, claims.UID)
		c.Set(KeyClaims, claims)
		c.Next()
	}
}
