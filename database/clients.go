package database

import (
	"context"
	"fmt"
	"log"

	"artcrm/models"
)

const clientColumns = "id, company, contact, email, phone, status, active_projects"

func (db *DB) CreateClient(ctx context.Context, c models.Client) (*models.Client, error) {
	query := fmt.Sprintf(`
		INSERT INTO clients (company, contact, email, phone, status, active_projects)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s
	`, clientColumns)

	created, err := scanClient(db.Pool.QueryRow(ctx, query,
		c.Company, c.Contact, c.Email, c.Phone, c.Status, c.ActiveProjects))
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	log.Printf("Created client: %s (ID: %d)", created.Company, created.ID)
	return created, nil
}

// ListClients returns clients matching the optional search term,
// newest first.
func (db *DB) ListClients(ctx context.Context, term string) ([]models.Client, error) {
	qb := NewQueryBuilder()
	qb.AddSearch(term, clientSearchColumns)

	query := fmt.Sprintf(`
		SELECT %s
		FROM clients
		%s
		ORDER BY id DESC
	`, clientColumns, qb.WhereClause())

	rows, err := db.Pool.Query(ctx, query, qb.Args()...)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	return scanClients(rows)
}

func scanClient(row rowScanner) (*models.Client, error) {
	var c models.Client
	err := row.Scan(
		&c.ID,
		&c.Company,
		&c.Contact,
		&c.Email,
		&c.Phone,
		&c.Status,
		&c.ActiveProjects,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func scanClients(rows rowsScanner) ([]models.Client, error) {
	clients := []models.Client{}
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, *c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating clients: %w", err)
	}

	return clients, nil
}
