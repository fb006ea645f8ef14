package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"artcrm/database"
	"artcrm/models"
	"artcrm/validation"
)

func ListProjects(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		projects, err := db.ListProjects(ctx, c.Query("q"))
		if err != nil {
			log.Printf("ListProjects database error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list projects"})
			return
		}

		c.JSON(http.StatusOK, pageOf(c, projects))
	}
}

func GetProject(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Bad id"})
			return
		}

		ctx := c.Request.Context()
		project, err := db.GetProject(ctx, id)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
				return
			}
			log.Printf("GetProject database error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}

		c.JSON(http.StatusOK, project)
	}
}

// CreateProject accepts the minimal creation payload: the acting
// username becomes the manager, status starts at its default, and
// percent starts at zero.
func CreateProject(db *database.DB, currencySuffix string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateProjectRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		username, err := validation.Required("username", req.Username)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		name, err := validation.Text("project name", req.Name)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		client, err := validation.Text("client", req.Client)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		budget, err := validation.Budget(req.Budget.String())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()
		created, err := db.CreateProject(ctx, models.Project{
			Name:    name,
			Client:  client,
			Manager: username,
			Status:  validation.DefaultProjectStatus,
			Percent: 0,
			Budget:  validation.FormatBudget(budget, currencySuffix),
		})
		if err != nil {
			log.Printf("CreateProject database error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create project"})
			return
		}

		c.JSON(http.StatusOK, created)
	}
}

// UpdateProject overwrites all mutable fields after validating each one
// with the create-equivalent rules.
func UpdateProject(db *database.DB, currencySuffix string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Bad id"})
			return
		}

		var req models.UpdateProjectRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		name, err := validation.Text("project name", req.Name)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		client, err := validation.Text("client", req.Client)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		manager, err := validation.Text("manager", req.Manager)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		status, err := validation.Status(req.Status, validation.ProjectStatuses)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		percent, err := validation.Percent(req.Percent.String())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		budget, err := validation.Budget(req.Budget.String())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()
		updated, err := db.UpdateProject(ctx, id, models.Project{
			Name:    name,
			Client:  client,
			Manager: manager,
			Status:  status,
			Percent: percent,
			Budget:  validation.FormatBudget(budget, currencySuffix),
		})
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
				return
			}
			log.Printf("UpdateProject database error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}

// parseID accepts positive integer ids only.
func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, errors.New("id must be positive")
	}
	return id, nil
}
