package database

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"

	"artcrm/models"
)

const projectColumns = "id, name, client, manager, status, percent, budget"

func (db *DB) CreateProject(ctx context.Context, p models.Project) (*models.Project, error) {
	query := fmt.Sprintf(`
		INSERT INTO projects (name, client, manager, status, percent, budget)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s
	`, projectColumns)

	created, err := scanProject(db.Pool.QueryRow(ctx, query,
		p.Name, p.Client, p.Manager, p.Status, p.Percent, p.Budget))
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	log.Printf("Created project: %s (ID: %d)", created.Name, created.ID)
	return created, nil
}

// ListProjects returns projects matching the optional search term,
// newest first.
func (db *DB) ListProjects(ctx context.Context, term string) ([]models.Project, error) {
	qb := NewQueryBuilder()
	qb.AddSearch(term, projectSearchColumns)

	query := fmt.Sprintf(`
		SELECT %s
		FROM projects
		%s
		ORDER BY id DESC
	`, projectColumns, qb.WhereClause())

	rows, err := db.Pool.Query(ctx, query, qb.Args()...)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	return scanProjects(rows)
}

func (db *DB) GetProject(ctx context.Context, id int64) (*models.Project, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM projects
		WHERE id = $1
	`, projectColumns)

	project, err := scanProject(db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return project, nil
}

// UpdateProject overwrites every mutable field of an existing project.
// Returns ErrNotFound when the id does not exist.
func (db *DB) UpdateProject(ctx context.Context, id int64, p models.Project) (*models.Project, error) {
	query := fmt.Sprintf(`
		UPDATE projects
		SET name = $2, client = $3, manager = $4, status = $5, percent = $6, budget = $7
		WHERE id = $1
		RETURNING %s
	`, projectColumns)

	updated, err := scanProject(db.Pool.QueryRow(ctx, query,
		id, p.Name, p.Client, p.Manager, p.Status, p.Percent, p.Budget))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	log.Printf("Updated project: %s (ID: %d)", updated.Name, updated.ID)
	return updated, nil
}

func scanProject(row rowScanner) (*models.Project, error) {
	var p models.Project
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Client,
		&p.Manager,
		&p.Status,
		&p.Percent,
		&p.Budget,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanProjects(rows rowsScanner) ([]models.Project, error) {
	projects := []models.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating projects: %w", err)
	}

	return projects, nil
}
