// Copyright (c) 2026 FB-API. All rights reserved.

package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/itstee2k3/fb-api/internal/platform/apperr"
	"github.com/itstee2k3/fb-api/internal/platform/middleware"
	requestutil "github.com/itstee2k3/fb-api/internal/platform/request"
	"github.com/itstee2k3/fb-api/internal/platform/respond"
	"github.com/itstee2k3/fb-api/internal/platform/validate"
	"github.com/itstee2k3/fb-api/pkg/pagination"
	"github.com/itstee2k3/fb-api/pkg/uuidv7"
)

// Handler implements the HTTP layer for the content feed.
type Handler struct {
	postService *Service
}

// NewHandler constructs a new post [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{postService: service}
}

// Routes returns a [chi.Router] configured with the feed domain's endpoints.
//
// # Endpoints
//   - GET  /              : Public paginated feed.
//   - GET  /{id}          : Public single post.
//   - GET  /user/{userId} : Public posts of one author.
//   - POST /              : Authed creation (owner = caller).
//   - PUT  /{id}          : Authed, owner-gated update.
//   - DELETE /{id}        : Authed, owner-gated deletion.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public reads
	router.Get("/", handler.listFeed)
	router.Get("/{id}", handler.getPost)
	router.Get("/user/{userId}", handler.listByUser)

	// Authenticated writes
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/", handler.createPost)
		r.Put("/{id}", handler.updatePost)
		r.Delete("/{id}", handler.deletePost)
	})

	return router
}

// # Request Payloads

type createPostRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

type updatePostRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
}

// # Read Endpoints

/*
GET /api/v1/posts.

Description: Returns the public feed, newest first, with pagination metadata.

Response:
  - 200: []Post: Page of posts
*/
func (handler *Handler) listFeed(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	posts, total, err := handler.postService.ListFeed(request.Context(), params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, posts, pagination.NewMeta(params.Page, params.Limit, total))
}

/*
GET /api/v1/posts/{id}.

Description: Returns a single post by its UUID.

Response:
  - 200: Post: Hydrated entity
  - 404: ErrNotFound: Unknown or deleted post
*/
func (handler *Handler) getPost(writer http.ResponseWriter, request *http.Request) {
	postID := chi.URLParam(request, "id")

	if !uuidv7.IsValid(postID) {
		respond.Error(writer, request, apperr.NotFound("Post"))
		return
	}

	found, err := handler.postService.GetPost(request.Context(), postID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, found)
}

/*
GET /api/v1/posts/user/{userId}.

Description: Returns one author's posts, newest first.

Response:
  - 200: []Post: Page of posts
  - 404: ErrNotFound: Malformed user identifier
*/
func (handler *Handler) listByUser(writer http.ResponseWriter, request *http.Request) {
	ownerID := chi.URLParam(request, "userId")

	if !uuidv7.IsValid(ownerID) {
		respond.Error(writer, request, apperr.NotFound("User"))
		return
	}

	params := pagination.FromRequest(request)

	posts, total, err := handler.postService.ListByUser(request.Context(), ownerID, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, posts, pagination.NewMeta(params.Page, params.Limit, total))
}

// # Write Endpoints

/*
POST /api/v1/posts.

Description: Publishes a new post owned by the authenticated caller.

Request:
  - Body: createPostRequest (Title, Description, ImageURL)

Response:
  - 201: Post: The created entity
  - 400: ErrInvalidJSON: Bad input or validation failure
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) createPost(writer http.ResponseWriter, request *http.Request) {
	callerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input createPostRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	created, err := handler.postService.CreatePost(request.Context(), callerID, CreateInput{
		Title:       input.Title,
		Description: input.Description,
		ImageURL:    input.ImageURL,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, created)
}

/*
PUT /api/v1/posts/{id}.

Description: Updates a post the caller owns. Existence is evaluated before
ownership: a deleted post yields 404 even for its former owner.

Request:
  - Body: updatePostRequest (Partial JSON)

Response:
  - 200: Post: The updated entity
  - 401: ErrUnauthorized: Authentication required
  - 403: ErrForbidden: Caller does not own the post
  - 404: ErrNotFound: Unknown or deleted post
*/
func (handler *Handler) updatePost(writer http.ResponseWriter, request *http.Request) {
	callerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	postID := chi.URLParam(request, "id")
	if !uuidv7.IsValid(postID) {
		respond.Error(writer, request, apperr.NotFound("Post"))
		return
	}

	var input updatePostRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	updated, err := handler.postService.UpdatePost(request.Context(), callerID, postID, UpdateInput{
		Title:       input.Title,
		Description: input.Description,
		ImageURL:    input.ImageURL,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, updated)
}

/*
DELETE /api/v1/posts/{id}.

Description: Soft-deletes a post the caller owns, using the same gate as
updates.

Response:
  - 204: No Content: Post deleted
  - 401: ErrUnauthorized: Authentication required
  - 403: ErrForbidden: Caller does not own the post
  - 404: ErrNotFound: Unknown or deleted post
*/
func (handler *Handler) deletePost(writer http.ResponseWriter, request *http.Request) {
	callerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	postID := chi.URLParam(request, "id")
	if !uuidv7.IsValid(postID) {
		respond.Error(writer, request, apperr.NotFound("Post"))
		return
	}

	if err := handler.postService.DeletePost(request.Context(), callerID, postID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
