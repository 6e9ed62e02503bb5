package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middlewares
const (
	ContextEmailKey    = "email"
	ContextUsernameKey = "username"
)

// RequireUser authenticates the end user from the bearer token and stores
// the identity in the request context
func RequireUser(verifier *TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := verifier.VerifyUser(c.Request)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.Set(ContextEmailKey, claims.Email)
		c.Set(ContextUsernameKey, claims.Username)
		c.Next()
	}
}

// RequireService guards internal endpoints: only callers presenting valid
// service credentials pass. These endpoints are never exposed to end users.
func RequireService(verifier CredentialVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := verifier.VerifyService(c.Request); err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.Next()
	}
}

// UserEmail returns the authenticated user's email from the gin context
func UserEmail(c *gin.Context) string {
	return c.GetString(ContextEmailKey)
}
