package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	mem "fitlife/pkg/memcache"
	"fitlife/pkg/utils"
)

// JWTAuthMiddleware gates every protected route: while the request carries no
// resolvable identity, exactly one 401 is written and no handler runs.
func JWTAuthMiddleware(revoked mem.RevokedTokenStore) gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		if revoked != nil && revoked.IsRevoked(tokenString) {
			utils.RespondError(c, http.StatusUnauthorized, "Session has been signed out")
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		// Pass user information to the next handler
		c.Set("user_id", claims.UserID)
		c.Set("token", tokenString)
		c.Next()
	}
}
