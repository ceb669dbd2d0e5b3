package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const userIDKey = "authUserID"

// RequireAuth rejects requests without a valid bearer token. A missing
// or malformed Authorization header is a 401; a token that fails
// verification (bad signature, expired) is a 403.
func RequireAuth(signer *Signer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Missing token"})
			return
		}

		userID, err := signer.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Invalid token"})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the authenticated user id stored by RequireAuth.
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
