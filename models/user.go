package models

// User is a staff member. The API surface is read-only: users are
// provisioned through migrations, not endpoints.
type User struct {
	ID             int64  `json:"id" db:"id"`
	FullName       string `json:"fullName" db:"full_name"`
	Role           string `json:"role" db:"role"`
	Email          string `json:"email" db:"email"`
	Phone          string `json:"phone" db:"phone"`
	Status         string `json:"status" db:"status"`
	ActiveProjects int64  `json:"activeProjects" db:"active_projects"`
}
