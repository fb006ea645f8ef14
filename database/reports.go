package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"artcrm/models"
)

const reportColumns = "id, dt, project, manager, status, comment"

// CreateReport persists a report. The caller supplies Dt already pinned
// to the business timezone; the store never substitutes its own clock.
func (db *DB) CreateReport(ctx context.Context, r models.Report) (*models.Report, error) {
	query := fmt.Sprintf(`
		INSERT INTO reports (dt, project, manager, status, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s
	`, reportColumns)

	created, err := scanReport(db.Pool.QueryRow(ctx, query,
		r.Dt, r.Project, r.Manager, r.Status, r.Comment))
	if err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}

	log.Printf("Created report: %s (ID: %d)", created.Project, created.ID)
	return created, nil
}

// ListReports returns reports matching the optional search term and
// inclusive date range, newest first. The date bounds are interpreted
// in loc.
func (db *DB) ListReports(ctx context.Context, params models.ReportQueryParams, loc *time.Location) ([]models.Report, error) {
	qb := NewQueryBuilder()
	qb.AddSearch(params.Q, reportSearchColumns)
	if err := qb.AddDateRange("dt", params.From, params.To, loc); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM reports
		%s
		ORDER BY dt DESC
	`, reportColumns, qb.WhereClause())

	rows, err := db.Pool.Query(ctx, query, qb.Args()...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	return scanReports(rows)
}

func scanReport(row rowScanner) (*models.Report, error) {
	var r models.Report
	err := row.Scan(
		&r.ID,
		&r.Dt,
		&r.Project,
		&r.Manager,
		&r.Status,
		&r.Comment,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func scanReports(rows rowsScanner) ([]models.Report, error) {
	reports := []models.Report{}
	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		reports = append(reports, *r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reports: %w", err)
	}

	return reports, nil
}
