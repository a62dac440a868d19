// Copyright (c) 2026 FB-API. All rights reserved.

package product

import "context"

// # Product Data Access

// Repository defines the data access contract for catalogue items.
type Repository interface {

	/*
		List returns a page of the catalogue, newest first, optionally
		filtered by a case-insensitive name search.

		Parameters:
		  - context: context.Context
		  - search: string (empty means no filter)
		  - limit: int
		  - offset: int

		Returns:
		  - []*Product: Page of products
		  - int: Total count for pagination metadata
		  - error: Retrieval failures
	*/
	List(context context.Context, search string, limit, offset int) ([]*Product, int, error)

	/*
		FindByID returns the product with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Product: Hydrated entity
		  - error: apperr.NotFound or retrieval failures
	*/
	FindByID(context context.Context, id string) (*Product, error)

	/*
		FindBySlug returns the product with the given URL slug.

		Parameters:
		  - context: context.Context
		  - slug: string

		Returns:
		  - *Product: Hydrated entity
		  - error: apperr.NotFound or retrieval failures
	*/
	FindBySlug(context context.Context, slug string) (*Product, error)

	/*
		Create persists a brand-new product.

		Parameters:
		  - context: context.Context
		  - product: *Product

		Returns:
		  - error: apperr.Conflict on duplicate slug or persistence failures
	*/
	Create(context context.Context, product *Product) error

	/*
		Update persists changes to a product's mutable fields.

		Parameters:
		  - context: context.Context
		  - product: *Product

		Returns:
		  - error: Persistence failures
	*/
	Update(context context.Context, product *Product) error

	/*
		SoftDelete marks the product as deleted without removing the row.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: Persistence failures
	*/
	SoftDelete(context context.Context, id string) error
}
