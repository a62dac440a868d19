// Copyright (c) 2026 FB-API. All rights reserved.

package cart

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/itstee2k3/fb-api/internal/platform/apperr"
	"github.com/itstee2k3/fb-api/internal/platform/middleware"
	requestutil "github.com/itstee2k3/fb-api/internal/platform/request"
	"github.com/itstee2k3/fb-api/internal/platform/respond"
	"github.com/itstee2k3/fb-api/internal/platform/validate"
	"github.com/itstee2k3/fb-api/pkg/uuidv7"
)

// Handler implements the HTTP layer for the shopping cart.
type Handler struct {
	cartService *Service
}

// NewHandler constructs a new cart [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{cartService: service}
}

// Routes returns a [chi.Router] configured with the cart domain's endpoints.
// Every endpoint requires authentication: a cart only exists relative to
// the caller.
//
// # Endpoints
//   - GET    /                    : The caller's cart with totals.
//   - POST   /items               : Add (or accumulate) a product.
//   - PUT    /items/{productId}   : Set a line's quantity.
//   - DELETE /items/{productId}   : Remove a line.
//   - DELETE /                    : Empty the cart.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Use(middleware.RequireAuth)

	router.Get("/", handler.getCart)
	router.Post("/items", handler.addItem)
	router.Put("/items/{productId}", handler.updateQuantity)
	router.Delete("/items/{productId}", handler.removeItem)
	router.Delete("/", handler.clearCart)

	return router
}

// # Request Payloads

type addItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// # Endpoints

/*
GET /api/v1/cart.

Description: Returns the caller's cart lines with per-line subtotals and
a grand total in cents.

Response:
  - 200: Summary: Items, item count and total
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) getCart(writer http.ResponseWriter, request *http.Request) {
	callerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	summary, err := handler.cartService.GetCart(request.Context(), callerID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, summary)
}

/*
POST /api/v1/cart/items.

Description: Adds a product to the caller's cart. Adding a product that
is already in the cart accumulates the quantity.

Request:
  - Body: addItemRequest (ProductID, Quantity)

Response:
  - 204: No Content: Item added
  - 400: ErrInvalidJSON: Bad input or validation failure
  - 401: ErrUnauthorized: Authentication required
  - 404: ErrNotFound: Unknown or deleted product
*/
func (handler *Handler) addItem(writer http.ResponseWriter, request *http.Request) {
	callerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input addItemRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if err := handler.cartService.AddItem(request.Context(), callerID, AddInput{
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
	}); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
PUT /api/v1/cart/items/{productId}.

Description: Sets the absolute quantity of one cart line.

Request:
  - Body: updateQuantityRequest (Quantity)

Response:
  - 204: No Content: Quantity updated
  - 400: ErrInvalidJSON: Bad input or validation failure
  - 401: ErrUnauthorized: Authentication required
  - 404: ErrNotFound: The product is not in the caller's cart
*/
func (handler *Handler) updateQuantity(writer http.ResponseWriter, request *http.Request) {
	callerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	productID := chi.URLParam(request, "productId")
	if !uuidv7.IsValid(productID) {
		respond.Error(writer, request, apperr.NotFound("Cart item"))
		return
	}

	var input updateQuantityRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if err := handler.cartService.UpdateQuantity(request.Context(), callerID, productID, input.Quantity); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
DELETE /api/v1/cart/items/{productId}.

Description: Removes one line from the caller's cart.

Response:
  - 204: No Content: Line removed
  - 401: ErrUnauthorized: Authentication required
  - 404: ErrNotFound: The product is not in the caller's cart
*/
func (handler *Handler) removeItem(writer http.ResponseWriter, request *http.Request) {
	callerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	productID := chi.URLParam(request, "productId")
	if !uuidv7.IsValid(productID) {
		respond.Error(writer, request, apperr.NotFound("Cart item"))
		return
	}

	if err := handler.cartService.RemoveItem(request.Context(), callerID, productID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
DELETE /api/v1/cart.

Description: Empties the caller's cart. Succeeds on an already empty cart.

Response:
  - 204: No Content: Cart cleared
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) clearCart(writer http.ResponseWriter, request *http.Request) {
	callerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.cartService.ClearCart(request.Context(), callerID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
