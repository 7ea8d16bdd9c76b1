package httpapi

import (
	"net/http"
	"strings"

	"github.com/campuskart/campus-market-service/internal/security"
	"github.com/gin-gonic/gin"
)

const callerIDKey = "caller_id"

// AuthMiddleware validates the bearer token and stores the caller's
// user id in the request context. Handlers read it with CallerID and
// pass it to usecases explicitly.
func AuthMiddleware(tokens *security.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "no token provided"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "no token provided"})
			return
		}

		userID, err := tokens.Parse(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(callerIDKey, userID)
		c.Next()
	}
}

func CallerID(c *gin.Context) string {
	return c.GetString(callerIDKey)
}
