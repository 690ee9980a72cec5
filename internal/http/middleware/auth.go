// README: Bearer-token auth middleware.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fairgadi/internal/auth"
)

const (
	userIDKey    = "user_id"
	sessionIDKey = "session_id"
)

// Auth verifies the Authorization bearer token and stores the caller's
// identity on the request context.
func Auth(verifier auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			return
		}
		tokenStr := strings.TrimPrefix(header, "Bearer ")
		if tokenStr == header || tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header"})
			return
		}
		claims, err := verifier.Verify(c.Request.Context(), tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(userIDKey, claims.UserID)
		c.Set(sessionIDKey, claims.SessionID)
		c.Next()
	}
}

// UserID returns the authenticated user's ID, or "" outside Auth.
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

// SessionID returns the authenticated session's ID, or "" outside Auth.
func SessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}
