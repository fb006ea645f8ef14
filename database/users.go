package database

import (
	"context"
	"fmt"

	"artcrm/models"
)

const userColumns = "id, full_name, role, email, phone, status, active_projects"

// ListUsers returns users matching the optional search term, newest
// first. Users are read-only through the API; rows come from
// migrations.
func (db *DB) ListUsers(ctx context.Context, term string) ([]models.User, error) {
	qb := NewQueryBuilder()
	qb.AddSearch(term, userSearchColumns)

	query := fmt.Sprintf(`
		SELECT %s
		FROM users
		%s
		ORDER BY id DESC
	`, userColumns, qb.WhereClause())

	rows, err := db.Pool.Query(ctx, query, qb.Args()...)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		err := rows.Scan(
			&u.ID,
			&u.FullName,
			&u.Role,
			&u.Email,
			&u.Phone,
			&u.Status,
			&u.ActiveProjects,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}
