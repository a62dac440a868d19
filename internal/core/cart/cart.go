// Copyright (c) 2026 FB-API. All rights reserved.

/*
Package cart implements the per-user shopping cart.

A cart is not a standalone entity: it is the set of cart items keyed by
(user, product). Every operation is scoped to the authenticated caller's
own cart; there is no way to read or mutate another user's cart through
this package. Prices are denormalized onto the response at read time by
joining the product catalogue, so a price change is reflected on the
next read rather than frozen at add time.
*/
package cart

import "time"

// # Entities

// Item is a single line in a user's cart.
type Item struct {
	UserID    string    `json:"-"`
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Denormalized from the product catalogue for display.
	ProductName string `json:"product_name"`
	ProductSlug string `json:"product_slug"`
	ImageURL    string `json:"image_url,omitempty"`
	PriceCents  int64  `json:"price_cents"`
}

// SubtotalCents is the line total for this item.
func (item *Item) SubtotalCents() int64 {
	return item.PriceCents * int64(item.Quantity)
}

// Summary is the full cart view returned to the client.
type Summary struct {
	Items      []*Item `json:"items"`
	ItemCount  int     `json:"item_count"`
	TotalCents int64   `json:"total_cents"`
}

// # Field Identifiers

const (
	FieldProductID = "product_id"
	FieldQuantity  = "quantity"
)
