// Copyright (c) 2026 FB-API. All rights reserved.

package role

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/itstee2k3/fb-api/internal/platform/apperr"
	"github.com/itstee2k3/fb-api/internal/platform/dberr"
)

// # Role Repository

// PostgresRepository implements the Repository interface using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL implementation of the Repository.
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

/*
FindByName retrieves a role record by its unique name.

Parameters:
  - context: context.Context
  - name: string

Returns:
  - *Role: Hydrated role entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresRepository) FindByName(context context.Context, name string) (*Role, error) {
	const query = `
		SELECT id, name, createdat
		FROM users.role
		WHERE name = $1`

	found := &Role{}
	err := repository.pool.QueryRow(context, query, name).Scan(
		&found.ID,
		&found.Name,
		&found.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Role")
		}
		return nil, fmt.Errorf("postgres_role_repo_find_by_name_failed: %w", err)
	}

	return found, nil
}

/*
Create persists a new role record into the users.role table.

Parameters:
  - context: context.Context
  - role: *Role

Returns:
  - error: apperr.Conflict on duplicate name or connectivity errors
*/
func (repository *PostgresRepository) Create(context context.Context, role *Role) error {
	const query = `
		INSERT INTO users.role (id, name, createdat)
		VALUES ($1, $2, $3)`

	if role.CreatedAt.IsZero() {
		role.CreatedAt = time.Now()
	}

	_, err := repository.pool.Exec(context, query, role.ID, role.Name, role.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "postgres_role_repo_create")
	}

	return nil
}

/*
Assign records a role membership into the users.account_role join table.

Description: Uses ON CONFLICT DO NOTHING so that re-granting a held role
is a no-op rather than a constraint violation.

Parameters:
  - context: context.Context
  - userID: string
  - roleID: string

Returns:
  - error: Persistence failures
*/
func (repository *PostgresRepository) Assign(context context.Context, userID, roleID string) error {
	const query = `
		INSERT INTO users.account_role (userid, roleid, createdat)
		VALUES ($1, $2, $3)
		ON CONFLICT (userid, roleid) DO NOTHING`

	_, err := repository.pool.Exec(context, query, userID, roleID, time.Now())
	if err != nil {
		return fmt.Errorf("postgres_role_repo_assign_failed: %w", err)
	}

	return nil
}

/*
NamesByUserID lists role names granted to a user, ordered for stable output.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - []string: Role names, possibly empty
  - error: Retrieval failures
*/
func (repository *PostgresRepository) NamesByUserID(context context.Context, userID string) ([]string, error) {
	const query = `
		SELECT r.name
		FROM users.account_role ar
		JOIN users.role r ON r.id = ar.roleid
		WHERE ar.userid = $1
		ORDER BY r.name`

	rows, err := repository.pool.Query(context, query, userID)
	if err != nil {
		return nil, fmt.Errorf("postgres_role_repo_names_failed: %w", err)
	}
	defer rows.Close()

	names := make([]string, 0, 2)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("postgres_role_repo_names_scan_failed: %w", err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_role_repo_names_rows_failed: %w", err)
	}

	return names, nil
}
