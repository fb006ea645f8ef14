package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"artcrm/database"
)

func ListUsers(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		users, err := db.ListUsers(ctx, c.Query("q"))
		if err != nil {
			log.Printf("ListUsers database error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list users"})
			return
		}

		c.JSON(http.StatusOK, pageOf(c, users))
	}
}
