package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"artcrm/session"
)

// BearerToken extracts the token from an Authorization header.
// Returns "" when the header is missing or malformed.
func BearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}

	return parts[1]
}

// RequireRole gates a route on an active session whose role matches one
// of the allowed tags. 401 without a valid session, 403 when the role
// does not fit.
func RequireRole(sessions *session.Store, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			c.Abort()
			return
		}

		sess, ok := sessions.Get(token)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			c.Abort()
			return
		}

		allowed := false
		for _, role := range roles {
			if session.Allow(sess, role) {
				allowed = true
				break
			}
		}
		if !allowed {
			c.JSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
			c.Abort()
			return
		}

		c.Set("session", sess)
		c.Set("username", sess.Username)
		c.Set("role", sess.Role)

		c.Next()
	}
}
