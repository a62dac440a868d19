// Copyright (c) 2026 FB-API. All rights reserved.

package product

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

// # Product Repository

// PostgresRepository implements the Repository interface using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL implementation of the Repository.
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const selectColumns = `
	id, name, slug, description, imageurl, pricecents, stock, createdat, updatedat`

/*
List returns a page of the catalogue, optionally filtered by name.

Description: The search filter is a case-insensitive substring match pushed
down to the database via ILIKE.

Parameters:
  - context: context.Context
  - search: string (empty means no filter)
  - limit: int
  - offset: int

Returns:
  - []*Product: Page of products
  - int: Total matching count
  - error: Retrieval failures
*/
func (repository *PostgresRepository) List(context context.Context, search string, limit, offset int) ([]*Product, int, error) {
	const query = `
		SELECT ` + selectColumns + `
		FROM core.product
		WHERE deletedat IS NULL AND ($1 = '' OR name ILIKE '%' || $1 || '%')
		ORDER BY createdat DESC
		LIMIT $2 OFFSET $3`

	const countQuery = `
		SELECT COUNT(*)
		FROM core.product
		WHERE deletedat IS NULL AND ($1 = '' OR name ILIKE '%' || $1 || '%')`

	rows, err := repository.pool.Query(context, query, search, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres_product_repo_list_failed: %w", err)
	}
	defer rows.Close()

	products, err := scanProducts(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err := repository.pool.QueryRow(context, countQuery, search).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("postgres_product_repo_count_failed: %w", err)
	}

	return products, total, nil
}

/*
FindByID retrieves a single visible product by its primary key.

Parameters:
  - context: context.Context
  - id: string (UUIDv7)

Returns:
  - *Product: Hydrated entity
  - error: apperr.NotFound or execution errors
*/
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Product, error) {
	const query = `
		SELECT ` + selectColumns + `
		FROM core.product
		WHERE id = $1 AND deletedat IS NULL`

	return repository.queryOne(context, query, id)
}

/*
FindBySlug retrieves a single visible product by its unique URL slug.

Parameters:
  - context: context.Context
  - slug: string

Returns:
  - *Product: Hydrated entity
  - error: apperr.NotFound or execution errors
*/
func (repository *PostgresRepository) FindBySlug(context context.Context, slug string) (*Product, error) {
	const query = `
		SELECT ` + selectColumns + `
		FROM core.product
		WHERE slug = $1 AND deletedat IS NULL`

	return repository.queryOne(context, query, slug)
}

/*
Create persists a new product record into the core.product table.

Parameters:
  - context: context.Context
  - product: *Product

Returns:
  - error: apperr.Conflict on duplicate slug or connectivity errors
*/
func (repository *PostgresRepository) Create(context context.Context, product *Product) error {
	const query = `
		INSERT INTO core.product (
			id, name, slug, description, imageurl, pricecents, stock, createdat, updatedat
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	now := time.Now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now

	_, err := repository.pool.Exec(context, query,
		product.ID,
		product.Name,
		product.Slug,
		product.Description,
		product.ImageURL,
		product.PriceCents,
		product.Stock,
		product.CreatedAt,
		product.UpdatedAt,
	)

	if err != nil {
		return dberr.Wrap(err, "postgres_product_repo_create")
	}

	return nil
}

/*
Update persists changes to a product's mutable fields.

Parameters:
  - context: context.Context
  - product: *Product

Returns:
  - error: Update failures
*/
func (repository *PostgresRepository) Update(context context.Context, product *Product) error {
	const query = `
		UPDATE core.product
		SET name = $2, slug = $3, description = $4, imageurl = $5, pricecents = $6, stock = $7, updatedat = $8
		WHERE id = $1 AND deletedat IS NULL`

	product.UpdatedAt = time.Now()
	_, err := repository.pool.Exec(context, query,
		product.ID,
		product.Name,
		product.Slug,
		product.Description,
		product.ImageURL,
		product.PriceCents,
		product.Stock,
		product.UpdatedAt,
	)

	if err != nil {
		return dberr.Wrap(err, "postgres_product_repo_update")
	}

	return nil
}

/*
SoftDelete marks a product as deleted by setting deletedat.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - error: Execution failures
*/
func (repository *PostgresRepository) SoftDelete(context context.Context, id string) error {
	const query = `UPDATE core.product SET deletedat = $2 WHERE id = $1 AND deletedat IS NULL`

	_, err := repository.pool.Exec(context, query, id, time.Now())
	if err != nil {
		return fmt.Errorf("postgres_product_repo_soft_delete_failed: %w", err)
	}

	return nil
}

// queryOne runs a single-row select and maps absence to apperr.NotFound.
func (repository *PostgresRepository) queryOne(context context.Context, query string, arg any) (*Product, error) {
	found := &Product{}
	err := repository.pool.QueryRow(context, query, arg).Scan(
		&found.ID,
		&found.Name,
		&found.Slug,
		&found.Description,
		&found.ImageURL,
		&found.PriceCents,
		&found.Stock,
		&found.CreatedAt,
		&found.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Product")
		}
		return nil, fmt.Errorf("postgres_product_repo_find_failed: %w", err)
	}

	return found, nil
}

// scanProducts drains a result set into hydrated entities.
func scanProducts(rows pgx.Rows) ([]*Product, error) {
	products := make([]*Product, 0, 20)

	for rows.Next() {
		scanned := &Product{}
		err := rows.Scan(
			&scanned.ID,
			&scanned.Name,
			&scanned.Slug,
			&scanned.Description,
			&scanned.ImageURL,
			&scanned.PriceCents,
			&scanned.Stock,
			&scanned.CreatedAt,
			&scanned.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("postgres_product_repo_scan_failed: %w", err)
		}
		products = append(products, scanned)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_product_repo_rows_failed: %w", err)
	}

	return products, nil
}
