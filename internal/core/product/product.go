// Copyright (c) 2026 FB-API. All rights reserved.

/*
Package product implements the storefront catalogue.

Reads are public; every mutation is restricted to accounts holding the
"admin" role. Prices are stored as integer cents to avoid floating-point
drift in cart totals.
*/
package product

import "time"

// # Domain Entities

// Product represents a purchasable item in the catalogue.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	PriceCents  int64     `json:"price_cents"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// # Field Identifiers

const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldImageURL    = "image_url"
	FieldPriceCents  = "price_cents"
	FieldStock       = "stock"
)
