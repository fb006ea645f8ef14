package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"artcrm/database"
	"artcrm/models"
	"artcrm/validation"
)

var errNegativeActiveProjects = errors.New("activeProjects must be non-negative")

func ListClients(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		clients, err := db.ListClients(ctx, c.Query("q"))
		if err != nil {
			log.Printf("ListClients database error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list clients"})
			return
		}

		c.JSON(http.StatusOK, pageOf(c, clients))
	}
}

func CreateClient(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateClientRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		client, err := validateClient(req)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()
		created, err := db.CreateClient(ctx, *client)
		if err != nil {
			log.Printf("CreateClient database error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create client"})
			return
		}

		c.JSON(http.StatusOK, created)
	}
}

// validateClient checks required presence first, then the shape of the
// contact fields. First failed rule wins.
func validateClient(req models.CreateClientRequest) (*models.Client, error) {
	company, err := validation.Required("company", req.Company)
	if err != nil {
		return nil, err
	}
	contact, err := validation.Required("contact", req.Contact)
	if err != nil {
		return nil, err
	}
	if _, err := validation.Required("email", req.Email); err != nil {
		return nil, err
	}
	email, err := validation.Email(req.Email)
	if err != nil {
		return nil, err
	}
	if _, err := validation.Required("phone", req.Phone); err != nil {
		return nil, err
	}
	phone, err := validation.Phone(req.Phone)
	if err != nil {
		return nil, err
	}
	status, err := validation.Required("status", req.Status)
	if err != nil {
		return nil, err
	}
	if req.ActiveProjects < 0 {
		return nil, errNegativeActiveProjects
	}

	return &models.Client{
		Company:        company,
		Contact:        contact,
		Email:          email,
		Phone:          phone,
		Status:         status,
		ActiveProjects: req.ActiveProjects,
	}, nil
}
