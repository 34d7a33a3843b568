package middleware

import (
	"net/http"
	"strings"

	"pitchbook/utils"

	"github.com/gin-gonic/gin"
)

// bearerClaims extracts and verifies the bearer token on the request,
// returning the subject and role claims. On failure it aborts with 401.
func bearerClaims(c *gin.Context) (subject, role string, ok bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
		return "", "", false
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	subject, role, err := utils.ExtractClaims(tokenString)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return "", "", false
	}
	return subject, role, true
}

// JWTAuthMiddleware validates the bearer token and stores the caller's
// identity on the context. Tokens are issued by the external identity
// service; this service only verifies them.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		subject, role, ok := bearerClaims(c)
		if !ok {
			return
		}
		c.Set("userID", subject)
		c.Set("userRole", role)
		c.Next()
	}
}

// JWTAuthAdminMiddleware additionally requires the admin role claim. The
// role is checked before the rest of the chain runs.
func JWTAuthAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		subject, role, ok := bearerClaims(c)
		if !ok {
			return
		}
		if role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Set("userID", subject)
		c.Set("userRole", role)
		c.Next()
	}
}
