// Copyright (c) 2026 FB-API. All rights reserved.

package cart

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/itstee2k3/fb-api/internal/platform/apperr"
)

// # Cart Repository

// PostgresRepository implements the Repository interface using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL implementation of the Repository.
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

/*
ListByUser returns every cart line for a user, newest first, joined with
the live catalogue row for name, slug and current price.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - []*Item: Cart lines, excluding lines whose product was soft-deleted
  - error: Retrieval failures
*/
func (repository *PostgresRepository) ListByUser(context context.Context, userID string) ([]*Item, error) {
	const query = `
		SELECT
			ci.userid, ci.productid, ci.quantity, ci.createdat, ci.updatedat,
			p.name, p.slug, p.imageurl, p.pricecents
		FROM core.cart_item ci
		JOIN core.product p ON p.id = ci.productid AND p.deletedat IS NULL
		WHERE ci.userid = $1
		ORDER BY ci.createdat DESC`

	rows, err := repository.pool.Query(context, query, userID)
	if err != nil {
		return nil, fmt.Errorf("postgres_cart_repo_list_failed: %w", err)
	}
	defer rows.Close()

	var items []*Item
	for rows.Next() {
		var item Item
		err := rows.Scan(
			&item.UserID,
			&item.ProductID,
			&item.Quantity,
			&item.CreatedAt,
			&item.UpdatedAt,
			&item.ProductName,
			&item.ProductSlug,
			&item.ImageURL,
			&item.PriceCents,
		)
		if err != nil {
			return nil, fmt.Errorf("postgres_cart_repo_scan_failed: %w", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_cart_repo_rows_failed: %w", err)
	}

	return items, nil
}

/*
Add inserts a cart line or accumulates quantity onto an existing one.

Description: The (userid, productid) primary key makes the upsert safe
under concurrent adds from the same user; the quantities are summed
atomically inside Postgres.

Parameters:
  - context: context.Context
  - userID: string
  - productID: string
  - quantity: int

Returns:
  - error: Persistence failures
*/
func (repository *PostgresRepository) Add(context context.Context, userID, productID string, quantity int) error {
	const query = `
		INSERT INTO core.cart_item (userid, productid, quantity, createdat, updatedat)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (userid, productid) DO UPDATE
		SET quantity = core.cart_item.quantity + EXCLUDED.quantity,
		    updatedat = EXCLUDED.updatedat`

	_, err := repository.pool.Exec(context, query, userID, productID, quantity, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("postgres_cart_repo_add_failed: %w", err)
	}
	return nil
}

/*
SetQuantity replaces the quantity of an existing cart line.

Returns:
  - error: a NOT_FOUND error when no such line exists
*/
func (repository *PostgresRepository) SetQuantity(context context.Context, userID, productID string, quantity int) error {
	const query = `
		UPDATE core.cart_item
		SET quantity = $3, updatedat = $4
		WHERE userid = $1 AND productid = $2`

	tag, err := repository.pool.Exec(context, query, userID, productID, quantity, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("postgres_cart_repo_set_quantity_failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Cart item")
	}
	return nil
}

/*
Remove deletes one cart line.

Returns:
  - error: a NOT_FOUND error when no such line exists
*/
func (repository *PostgresRepository) Remove(context context.Context, userID, productID string) error {
	const query = `DELETE FROM core.cart_item WHERE userid = $1 AND productid = $2`

	tag, err := repository.pool.Exec(context, query, userID, productID)
	if err != nil {
		return fmt.Errorf("postgres_cart_repo_remove_failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Cart item")
	}
	return nil
}

// Clear removes every line from a user's cart.
func (repository *PostgresRepository) Clear(context context.Context, userID string) error {
	const query = `DELETE FROM core.cart_item WHERE userid = $1`

	if _, err := repository.pool.Exec(context, query, userID); err != nil {
		return fmt.Errorf("postgres_cart_repo_clear_failed: %w", err)
	}
	return nil
}
