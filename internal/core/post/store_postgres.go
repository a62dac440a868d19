// Copyright (c) 2026 FB-API. All rights reserved.

package post

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/itstee2k3/fb-api/internal/platform/apperr"
	"github.com/itstee2k3/fb-api/internal/platform/authz"
)

// # Post Repository

// PostgresRepository implements the Repository interface using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL implementation of the Repository.
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const selectColumns = `
	p.id, p.ownerid, p.title, p.description, p.imageurl, p.createdat, p.updatedat,
	a.username`

/*
List returns a page of the global feed ordered newest first.

Parameters:
  - context: context.Context
  - limit: int
  - offset: int

Returns:
  - []*Post: Page of posts with denormalized author names
  - int: Total number of visible posts
  - error: Retrieval failures
*/
func (repository *PostgresRepository) List(context context.Context, limit, offset int) ([]*Post, int, error) {
	const query = `
		SELECT ` + selectColumns + `
		FROM core.post p
		JOIN users.account a ON a.id = p.ownerid
		WHERE p.deletedat IS NULL
		ORDER BY p.createdat DESC
		LIMIT $1 OFFSET $2`

	const countQuery = `SELECT COUNT(*) FROM core.post WHERE deletedat IS NULL`

	rows, err := repository.pool.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres_post_repo_list_failed: %w", err)
	}
	defer rows.Close()

	posts, err := scanPosts(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err := repository.pool.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("postgres_post_repo_count_failed: %w", err)
	}

	return posts, total, nil
}

/*
ListByOwner returns a page of one user's posts ordered newest first.

Parameters:
  - context: context.Context
  - ownerID: string
  - limit: int
  - offset: int

Returns:
  - []*Post: Page of posts
  - int: Total number of the owner's visible posts
  - error: Retrieval failures
*/
func (repository *PostgresRepository) ListByOwner(context context.Context, ownerID string, limit, offset int) ([]*Post, int, error) {
	const query = `
		SELECT ` + selectColumns + `
		FROM core.post p
		JOIN users.account a ON a.id = p.ownerid
		WHERE p.ownerid = $1 AND p.deletedat IS NULL
		ORDER BY p.createdat DESC
		LIMIT $2 OFFSET $3`

	const countQuery = `SELECT COUNT(*) FROM core.post WHERE ownerid = $1 AND deletedat IS NULL`

	rows, err := repository.pool.Query(context, query, ownerID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres_post_repo_list_by_owner_failed: %w", err)
	}
	defer rows.Close()

	posts, err := scanPosts(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err := repository.pool.QueryRow(context, countQuery, ownerID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("postgres_post_repo_count_by_owner_failed: %w", err)
	}

	return posts, total, nil
}

/*
FindByID retrieves a single visible post by its primary key.

Parameters:
  - context: context.Context
  - id: string (UUIDv7)

Returns:
  - *Post: Hydrated entity
  - error: apperr.NotFound or execution errors
*/
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Post, error) {
	const query = `
		SELECT ` + selectColumns + `
		FROM core.post p
		JOIN users.account a ON a.id = p.ownerid
		WHERE p.id = $1 AND p.deletedat IS NULL`

	found := &Post{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&found.ID,
		&found.OwnerID,
		&found.Title,
		&found.Description,
		&found.ImageURL,
		&found.CreatedAt,
		&found.UpdatedAt,
		&found.AuthorUsername,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Post")
		}
		return nil, fmt.Errorf("postgres_post_repo_find_by_id_failed: %w", err)
	}

	return found, nil
}

/*
OwnerOf takes an existence-and-ownership snapshot of a post.

Description: A soft-deleted or missing row yields Exists=false rather than
an error, so the authorizer can turn it into a clean 404.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - authz.Resource: Snapshot for the ownership authorizer
  - error: Execution errors only
*/
func (repository *PostgresRepository) OwnerOf(context context.Context, id string) (authz.Resource, error) {
	const query = `SELECT ownerid FROM core.post WHERE id = $1 AND deletedat IS NULL`

	var ownerID string
	err := repository.pool.QueryRow(context, query, id).Scan(&ownerID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return authz.Resource{Exists: false}, nil
		}
		return authz.Resource{}, fmt.Errorf("postgres_post_repo_owner_of_failed: %w", err)
	}

	return authz.Resource{Exists: true, OwnerID: ownerID}, nil
}

/*
Create persists a new post record into the core.post table.

Parameters:
  - context: context.Context
  - post: *Post

Returns:
  - error: Constraint violations or connectivity errors
*/
func (repository *PostgresRepository) Create(context context.Context, post *Post) error {
	const query = `
		INSERT INTO core.post (id, ownerid, title, description, imageurl, createdat, updatedat)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	now := time.Now()
	if post.CreatedAt.IsZero() {
		post.CreatedAt = now
	}
	post.UpdatedAt = now

	_, err := repository.pool.Exec(context, query,
		post.ID,
		post.OwnerID,
		post.Title,
		post.Description,
		post.ImageURL,
		post.CreatedAt,
		post.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("postgres_post_repo_create_failed: %w", err)
	}

	return nil
}

/*
Update persists changes to a post's mutable fields. The owner column is
deliberately absent from the statement.

Parameters:
  - context: context.Context
  - post: *Post

Returns:
  - error: Update failures
*/
func (repository *PostgresRepository) Update(context context.Context, post *Post) error {
	const query = `
		UPDATE core.post
		SET title = $2, description = $3, imageurl = $4, updatedat = $5
		WHERE id = $1 AND deletedat IS NULL`

	post.UpdatedAt = time.Now()
	_, err := repository.pool.Exec(context, query,
		post.ID,
		post.Title,
		post.Description,
		post.ImageURL,
		post.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("postgres_post_repo_update_failed: %w", err)
	}

	return nil
}

/*
SoftDelete marks a post as deleted by setting deletedat.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - error: Execution failures
*/
func (repository *PostgresRepository) SoftDelete(context context.Context, id string) error {
	const query = `UPDATE core.post SET deletedat = $2 WHERE id = $1 AND deletedat IS NULL`

	_, err := repository.pool.Exec(context, query, id, time.Now())
	if err != nil {
		return fmt.Errorf("postgres_post_repo_soft_delete_failed: %w", err)
	}

	return nil
}

// scanPosts drains a result set into hydrated entities.
func scanPosts(rows pgx.Rows) ([]*Post, error) {
	posts := make([]*Post, 0, 20)

	for rows.Next() {
		scanned := &Post{}
		err := rows.Scan(
			&scanned.ID,
			&scanned.OwnerID,
			&scanned.Title,
			&scanned.Description,
			&scanned.ImageURL,
			&scanned.CreatedAt,
			&scanned.UpdatedAt,
			&scanned.AuthorUsername,
		)
		if err != nil {
			return nil, fmt.Errorf("postgres_post_repo_scan_failed: %w", err)
		}
		posts = append(posts, scanned)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_post_repo_rows_failed: %w", err)
	}

	return posts, nil
}
