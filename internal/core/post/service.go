// Copyright (c) 2026 FB-API. All rights reserved.

package post

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/itstee2k3/fb-api/internal/platform/authz"
	"github.com/itstee2k3/fb-api/internal/platform/validate"
	"github.com/itstee2k3/fb-api/pkg/uuidv7"
)

// # Service Layer

// Service orchestrates the business logic for the content feed.
//
// Reads are public. Every mutation of an existing post is gated through
// [authz.Decide] on a fresh existence-and-ownership snapshot, taken before
// any write happens.
type Service struct {
	postRepository Repository
	logger         *slog.Logger
}

// NewService constructs a new [Service] with its repository dependency.
func NewService(postRepo Repository, logger *slog.Logger) *Service {
	return &Service{
		postRepository: postRepo,
		logger:         logger,
	}
}

// # Feed Lookups

/*
ListFeed retrieves a page of the global feed, newest first.

Parameters:
  - context: context.Context
  - limit: int (Max records to return)
  - offset: int (Pagination cursor)

Returns:
  - []*Post: Page of posts
  - int: Total count for pagination metadata
  - error: Repository failures
*/
func (service *Service) ListFeed(context context.Context, limit, offset int) ([]*Post, int, error) {
	return service.postRepository.List(context, limit, offset)
}

/*
ListByUser retrieves a page of a single user's posts, newest first.

Parameters:
  - context: context.Context
  - ownerID: string
  - limit: int
  - offset: int

Returns:
  - []*Post: Page of posts
  - int: Total count for pagination metadata
  - error: Repository failures
*/
func (service *Service) ListByUser(context context.Context, ownerID string, limit, offset int) ([]*Post, int, error) {
	return service.postRepository.ListByOwner(context, ownerID, limit, offset)
}

/*
GetPost fetches a single post by its UUID.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *Post: The hydrated entity
  - error: apperr.NotFound if no match is found
*/
func (service *Service) GetPost(context context.Context, id string) (*Post, error) {
	return service.postRepository.FindByID(context, id)
}

// # Feed Management

// CreateInput holds the author-supplied fields of a new post.
type CreateInput struct {
	Title       string
	Description string
	ImageURL    string
}

/*
CreatePost publishes a new entry into the feed.

Description: The owner is taken from the authenticated caller, never from
the request body, and is immutable for the life of the post.

Parameters:
  - context: context.Context
  - callerID: string (Authenticated identity)
  - input: CreateInput

Returns:
  - *Post: The persisted entity
  - error: Validation or persistence errors
*/
func (service *Service) CreatePost(context context.Context, callerID string, input CreateInput) (*Post, error) {

	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).
		MaxLen(FieldTitle, input.Title, 200).
		MaxLen(FieldDescription, input.Description, 2000).
		MaxLen(FieldImageURL, input.ImageURL, 500)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	created := &Post{
		ID:          uuidv7.New(),
		OwnerID:     callerID,
		Title:       input.Title,
		Description: input.Description,
		ImageURL:    input.ImageURL,
	}

	if err := service.postRepository.Create(context, created); err != nil {
		return nil, fmt.Errorf("post_service_create_failed: %w", err)
	}

	service.logger.Info("post_created",
		slog.String("post_id", created.ID),
		slog.String("owner_id", callerID),
	)

	return created, nil
}

// UpdateInput holds the mutable subset of a post's fields.
type UpdateInput struct {
	Title       *string
	Description *string
	ImageURL    *string
}

/*
UpdatePost applies modifications to an existing post.

Description: Snapshots existence and ownership first and runs the decision
before any write. A missing post yields 404; a post owned by someone else
yields 403. The owner field itself is never touched.

Parameters:
  - context: context.Context
  - callerID: string (Authenticated identity)
  - id: string
  - input: UpdateInput

Returns:
  - *Post: The updated entity
  - error: NotFound, Forbidden, validation, or persistence errors
*/
func (service *Service) UpdatePost(context context.Context, callerID, id string, input UpdateInput) (*Post, error) {

	snapshot, err := service.postRepository.OwnerOf(context, id)
	if err != nil {
		return nil, fmt.Errorf("post_service_update_snapshot_failed: %w", err)
	}

	if err := authz.Decide(callerID, snapshot).Err("Post"); err != nil {
		return nil, err
	}

	existing, err := service.postRepository.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	// Apply delta updates
	if input.Title != nil {
		existing.Title = *input.Title
	}
	if input.Description != nil {
		existing.Description = *input.Description
	}
	if input.ImageURL != nil {
		existing.ImageURL = *input.ImageURL
	}

	validator := &validate.Validator{}
	validator.Required(FieldTitle, existing.Title).
		MaxLen(FieldTitle, existing.Title, 200).
		MaxLen(FieldDescription, existing.Description, 2000).
		MaxLen(FieldImageURL, existing.ImageURL, 500)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.postRepository.Update(context, existing); err != nil {
		return nil, fmt.Errorf("post_service_update_failed: %w", err)
	}

	service.logger.Info("post_updated", slog.String("post_id", id))

	return existing, nil
}

/*
DeletePost removes a post from the feed.

Description: Same authorization gate as UpdatePost, then a soft delete.
The record remains in the database but disappears from all reads.

Parameters:
  - context: context.Context
  - callerID: string (Authenticated identity)
  - id: string

Returns:
  - error: NotFound, Forbidden, or persistence errors
*/
func (service *Service) DeletePost(context context.Context, callerID, id string) error {

	snapshot, err := service.postRepository.OwnerOf(context, id)
	if err != nil {
		return fmt.Errorf("post_service_delete_snapshot_failed: %w", err)
	}

	if err := authz.Decide(callerID, snapshot).Err("Post"); err != nil {
		return err
	}

	if err := service.postRepository.SoftDelete(context, id); err != nil {
		return fmt.Errorf("post_service_delete_failed: %w", err)
	}

	service.logger.Warn("post_deleted", slog.String("post_id", id))

	return nil
}
