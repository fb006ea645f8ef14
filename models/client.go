package models

// Client is a customer organization tracked by the CRM.
type Client struct {
	ID             int64  `json:"id" db:"id"`
	Company        string `json:"company" db:"company"`
	Contact        string `json:"contact" db:"contact"`
	Email          string `json:"email" db:"email"`
	Phone          string `json:"phone" db:"phone"`
	Status         string `json:"status" db:"status"`
	ActiveProjects int64  `json:"activeProjects" db:"active_projects"`
}

// CreateClientRequest is the payload for creating a new client.
// All fields except activeProjects are required.
type CreateClientRequest struct {
	Company        string `json:"company"`
	Contact        string `json:"contact"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Status         string `json:"status"`
	ActiveProjects int64  `json:"activeProjects"`
}
