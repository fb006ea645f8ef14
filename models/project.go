package models

// Project is a unit of work for a client.
// Budget is stored formatted, e.g. "100000 руб.".
type Project struct {
	ID      int64  `json:"id" db:"id"`
	Name    string `json:"name" db:"name"`
	Client  string `json:"client" db:"client"`
	Manager string `json:"manager" db:"manager"`
	Status  string `json:"status" db:"status"`
	Percent int    `json:"percent" db:"percent"`
	Budget  string `json:"budget" db:"budget"`
}

// CreateProjectRequest is the payload for creating a project.
// The acting username becomes the project's manager; status and
// percent are assigned by the server.
type CreateProjectRequest struct {
	Name     string     `json:"name"`
	Client   string     `json:"client"`
	Budget   FlexString `json:"budget"`
	Username string     `json:"username"`
}

// UpdateProjectRequest overwrites every mutable field of a project.
// There is no partial update.
type UpdateProjectRequest struct {
	Name    string     `json:"name"`
	Client  string     `json:"client"`
	Manager string     `json:"manager"`
	Status  string     `json:"status"`
	Percent FlexString `json:"percent"`
	Budget  FlexString `json:"budget"`
}
