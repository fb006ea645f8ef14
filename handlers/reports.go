package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"artcrm/database"
	"artcrm/models"
	"artcrm/validation"
)

func ListReports(db *database.DB, loc *time.Location) gin.HandlerFunc {
	return func(c *gin.Context) {
		var params models.ReportQueryParams
		if err := c.ShouldBindQuery(&params); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()
		reports, err := db.ListReports(ctx, params, loc)
		if err != nil {
			if errors.Is(err, database.ErrInvalidDate) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			log.Printf("ListReports database error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list reports"})
			return
		}

		c.JSON(http.StatusOK, pageOf(c, reports))
	}
}

// CreateReport validates the payload and stamps the report with the
// business timezone's current wall-clock time, never the client's.
func CreateReport(db *database.DB, loc *time.Location) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateReportRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		project, err := validation.Text("project", req.Project)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		manager, err := validation.Text("manager", req.Manager)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		status, err := validation.Status(req.Status, validation.ReportStatuses)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		comment, err := validation.Comment(req.Comment)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()
		created, err := db.CreateReport(ctx, models.Report{
			Dt:      time.Now().In(loc),
			Project: project,
			Manager: manager,
			Status:  status,
			Comment: comment,
		})
		if err != nil {
			log.Printf("CreateReport database error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create report"})
			return
		}

		c.JSON(http.StatusOK, created)
	}
}
