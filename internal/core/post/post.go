// Copyright (c) 2026 FB-API. All rights reserved.

/*
Package post implements the user-generated content feed.

Every post belongs to exactly one owner, assigned from the authenticated
identity at creation time and never changed afterwards. All mutations are
gated by the ownership authorizer: existence is checked before ownership,
so a request against a deleted post reads as 404 regardless of caller.
*/
package post

import "time"

// # Domain Entities

// Post represents a single entry in the public feed.
type Post struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// AuthorUsername is denormalized into feed reads for display purposes.
	AuthorUsername string `json:"author_username,omitempty"`
}

// # Field Identifiers

const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldImageURL    = "image_url"
)
