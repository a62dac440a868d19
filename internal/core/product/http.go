// Copyright (c) 2026 FB-API. All rights reserved.

package product

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/itstee2k3/fb-api/internal/platform/middleware"
	requestutil "github.com/itstee2k3/fb-api/internal/platform/request"
	"github.com/itstee2k3/fb-api/internal/platform/respond"
	"github.com/itstee2k3/fb-api/internal/platform/sec"
	"github.com/itstee2k3/fb-api/internal/platform/validate"
	"github.com/itstee2k3/fb-api/pkg/pagination"
)

// Handler implements the HTTP layer for the catalogue.
type Handler struct {
	productService *Service
}

// NewHandler constructs a new product [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{productService: service}
}

// Routes returns a [chi.Router] configured with the catalogue endpoints.
//
// # Endpoints
//   - GET    /             : Public paginated catalogue, searchable via ?q=.
//   - GET    /{identifier} : Public single product, by UUID or slug.
//   - POST   /             : Admin-only creation.
//   - PUT    /{id}         : Admin-only update.
//   - DELETE /{id}         : Admin-only deletion.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public reads
	router.Get("/", handler.listProducts)
	router.Get("/{identifier}", handler.getProduct)

	// Admin-gated writes. Membership is an exact check on the "admin" role.
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(sec.RoleAdmin))
		r.Post("/", handler.createProduct)
		r.Put("/{id}", handler.updateProduct)
		r.Delete("/{id}", handler.deleteProduct)
	})

	return router
}

// # Request Payloads

type createProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	PriceCents  int64  `json:"price_cents"`
	Stock       int    `json:"stock"`
}

type updateProductRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	PriceCents  *int64  `json:"price_cents"`
	Stock       *int    `json:"stock"`
}

// # Read Endpoints

/*
GET /api/v1/products.

Description: Returns the public catalogue with pagination metadata. The
optional ?q= parameter filters by a case-insensitive name match.

Response:
  - 200: []Product: Page of products
*/
func (handler *Handler) listProducts(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	search := request.URL.Query().Get("q")

	products, total, err := handler.productService.ListProducts(request.Context(), search, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, products, pagination.NewMeta(params.Page, params.Limit, total))
}

/*
GET /api/v1/products/{identifier}.

Description: Returns a single product by UUID or URL slug.

Response:
  - 200: Product: Hydrated entity
  - 404: ErrNotFound: Unknown or deleted product
*/
func (handler *Handler) getProduct(writer http.ResponseWriter, request *http.Request) {
	identifier := chi.URLParam(request, "identifier")

	found, err := handler.productService.GetProduct(request.Context(), identifier)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, found)
}

// # Admin Endpoints

/*
POST /api/v1/products.

Description: Creates a new catalogue record. Restricted to admins.

Request:
  - Body: createProductRequest (Name, Description, ImageURL, PriceCents, Stock)

Response:
  - 201: Product: The created entity
  - 400: ErrInvalidJSON: Bad input or validation failure
  - 403: ErrForbidden: Caller lacks the admin role
  - 409: ErrConflict: Slug already exists
*/
func (handler *Handler) createProduct(writer http.ResponseWriter, request *http.Request) {
	var input createProductRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	created, err := handler.productService.CreateProduct(request.Context(), CreateInput{
		Name:        input.Name,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		PriceCents:  input.PriceCents,
		Stock:       input.Stock,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, created)
}

/*
PUT /api/v1/products/{id}.

Description: Applies partial updates to a catalogue record. Restricted to admins.

Request:
  - Body: updateProductRequest (Partial JSON)

Response:
  - 200: Product: The updated entity
  - 403: ErrForbidden: Caller lacks the admin role
  - 404: ErrNotFound: Unknown or deleted product
*/
func (handler *Handler) updateProduct(writer http.ResponseWriter, request *http.Request) {
	productID := chi.URLParam(request, "id")

	var input updateProductRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	updated, err := handler.productService.UpdateProduct(request.Context(), productID, UpdateInput{
		Name:        input.Name,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		PriceCents:  input.PriceCents,
		Stock:       input.Stock,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, updated)
}

/*
DELETE /api/v1/products/{id}.

Description: Soft-deletes a catalogue record. Restricted to admins.

Response:
  - 204: No Content: Product deleted
  - 403: ErrForbidden: Caller lacks the admin role
*/
func (handler *Handler) deleteProduct(writer http.ResponseWriter, request *http.Request) {
	productID := chi.URLParam(request, "id")

	if err := handler.productService.DeleteProduct(request.Context(), productID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
