package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"artcrm/database"
)

// HealthCheck reports liveness against the persistence layer.
func HealthCheck(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Health(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
