package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"artcrm/middleware"
	"artcrm/session"
)

// LoginRequest carries the submitted credentials.
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

func Login(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		sess, err := sessions.Login(req.Login, req.Password)
		if err != nil {
			if errors.Is(err, session.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}

		c.JSON(http.StatusOK, sess)
	}
}

func Logout(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := middleware.BearerToken(c)
		if token == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "authorization header required"})
			return
		}

		sessions.Logout(token)
		c.JSON(http.StatusOK, gin.H{"message": "logged out"})
	}
}

// CurrentSession echoes the session for a presented token, so clients
// can restore state without storing role claims themselves.
func CurrentSession(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := middleware.BearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			return
		}

		sess, ok := sessions.Get(token)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			return
		}

		c.JSON(http.StatusOK, sess)
	}
}
