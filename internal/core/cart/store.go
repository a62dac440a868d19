// Copyright (c) 2026 FB-API. All rights reserved.

package cart

import (
	"context"

	"github.com/itstee2k3/fb-api/internal/core/product"
)

// # Repository Contracts

// Repository persists cart items keyed by (user, product).
type Repository interface {
	/*
		ListByUser returns every item in a user's cart, newest first,
		with catalogue fields (name, slug, price) joined in. Items whose
		product has been soft-deleted are excluded.

		Parameters:
		  - context: context.Context
		  - userID: string

		Returns:
		  - []*Item: the cart lines, possibly empty
		  - error: storage failure
	*/
	ListByUser(context context.Context, userID string) ([]*Item, error)

	/*
		Add inserts a cart line, or increments the quantity of an
		existing line for the same (user, product) pair.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - productID: string
		  - quantity: int (amount to add, already validated)

		Returns:
		  - error: storage failure
	*/
	Add(context context.Context, userID, productID string, quantity int) error

	/*
		SetQuantity replaces the quantity of an existing cart line.

		Returns:
		  - error: a NOT_FOUND error when the line does not exist
	*/
	SetQuantity(context context.Context, userID, productID string, quantity int) error

	/*
		Remove deletes a single cart line.

		Returns:
		  - error: a NOT_FOUND error when the line does not exist
	*/
	Remove(context context.Context, userID, productID string) error

	/*
		Clear removes every line from a user's cart. Clearing an empty
		cart is not an error.
	*/
	Clear(context context.Context, userID string) error
}

// ProductCatalog is the slice of the product package the cart needs:
// existence checks before adding a line.
type ProductCatalog interface {
	FindByID(context context.Context, id string) (*product.Product, error)
}
