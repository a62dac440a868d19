// Copyright (c) 2026 FB-API. All rights reserved.

package post

import (
	"context"

	"github.com/itstee2k3/fb-api/internal/platform/authz"
)

// # Post Data Access

// Repository defines the data access contract for feed posts.
type Repository interface {

	/*
		List returns a page of the global feed, newest first.

		Parameters:
		  - context: context.Context
		  - limit: int
		  - offset: int

		Returns:
		  - []*Post: Page of posts
		  - int: Total count for pagination metadata
		  - error: Retrieval failures
	*/
	List(context context.Context, limit, offset int) ([]*Post, int, error)

	/*
		ListByOwner returns a page of one user's posts, newest first.

		Parameters:
		  - context: context.Context
		  - ownerID: string
		  - limit: int
		  - offset: int

		Returns:
		  - []*Post: Page of posts
		  - int: Total count for pagination metadata
		  - error: Retrieval failures
	*/
	ListByOwner(context context.Context, ownerID string, limit, offset int) ([]*Post, int, error)

	/*
		FindByID returns the post with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Post: Hydrated entity
		  - error: apperr.NotFound or retrieval failures
	*/
	FindByID(context context.Context, id string) (*Post, error)

	/*
		OwnerOf takes an existence-and-ownership snapshot of a post.

		Description: The snapshot feeds the ownership authorizer before any
		mutation. A missing or deleted post reads as non-existent rather
		than as an error.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - authz.Resource: Existence flag and owner identity
		  - error: Retrieval failures only
	*/
	OwnerOf(context context.Context, id string) (authz.Resource, error)

	/*
		Create persists a brand-new post.

		Parameters:
		  - context: context.Context
		  - post: *Post

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, post *Post) error

	/*
		Update persists changes to a post's mutable fields.

		Parameters:
		  - context: context.Context
		  - post: *Post

		Returns:
		  - error: Persistence failures
	*/
	Update(context context.Context, post *Post) error

	/*
		SoftDelete marks the post as deleted without removing the row.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: Persistence failures
	*/
	SoftDelete(context context.Context, id string) error
}
