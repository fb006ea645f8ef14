package models

import "time"

// Report is a status report filed against a project.
// Dt is assigned by the server from the business timezone's wall clock.
type Report struct {
	ID      int64     `json:"id" db:"id"`
	Dt      time.Time `json:"dt" db:"dt"`
	Project string    `json:"project" db:"project"`
	Manager string    `json:"manager" db:"manager"`
	Status  string    `json:"status" db:"status"`
	Comment string    `json:"comment" db:"comment"`
}

// CreateReportRequest is the payload for filing a report.
// Comment is optional, at most 300 characters.
type CreateReportRequest struct {
	Project string `json:"project"`
	Manager string `json:"manager"`
	Status  string `json:"status"`
	Comment string `json:"comment"`
}

// ReportQueryParams are the supported filters for listing reports.
// From and To are inclusive calendar dates (YYYY-MM-DD).
type ReportQueryParams struct {
	Q    string `form:"q"`
	From string `form:"from"`
	To   string `form:"to"`
}
