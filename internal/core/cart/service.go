// Copyright (c) 2026 FB-API. All rights reserved.

package cart

import (
	"context"
	"log/slog"

	"github.com/itstee2k3/fb-api/internal/platform/validate"
)

// # Limits

const (
	// MaxQuantityPerLine caps how many units of one product a single
	// cart line may hold.
	MaxQuantityPerLine = 99
)

// # Service

// Service owns the cart workflows. Every method takes the authenticated
// caller's userID; callers can only ever see and mutate their own cart.
type Service struct {
	cartRepository Repository
	catalog        ProductCatalog
	logger         *slog.Logger
}

// NewService wires the cart service with its storage and catalogue lookups.
func NewService(cartRepo Repository, catalog ProductCatalog, logger *slog.Logger) *Service {
	return &Service{
		cartRepository: cartRepo,
		catalog:        catalog,
		logger:         logger,
	}
}

// # Reads

/*
GetCart returns the caller's full cart with line subtotals and a grand total.

Parameters:
  - context: context.Context
  - userID: string (the authenticated caller)

Returns:
  - *Summary: items, item count and total in cents; never nil on success
  - error: storage failure
*/
func (service *Service) GetCart(context context.Context, userID string) (*Summary, error) {
	items, err := service.cartRepository.ListByUser(context, userID)
	if err != nil {
		return nil, err
	}

	summary := &Summary{Items: items, ItemCount: len(items)}
	for _, item := range items {
		summary.TotalCents += item.SubtotalCents()
	}
	if summary.Items == nil {
		summary.Items = []*Item{}
	}

	return summary, nil
}

// # Mutations

// AddInput carries the payload for adding a product to the cart.
type AddInput struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

/*
AddItem puts a product into the caller's cart, accumulating quantity when
the product is already present.

Description: The product must exist (and not be soft-deleted) at the time
of the add; a vanished product yields Not Found rather than a dangling
cart line.

Parameters:
  - context: context.Context
  - userID: string (the authenticated caller)
  - input: AddInput

Returns:
  - error: VALIDATION_ERROR on a bad quantity, NOT_FOUND on an unknown
    product, or a storage failure
*/
func (service *Service) AddItem(context context.Context, userID string, input AddInput) error {
	validator := &validate.Validator{}
	validator.Required(FieldProductID, input.ProductID)
	validator.Range(FieldQuantity, input.Quantity, 1, MaxQuantityPerLine)
	if err := validator.Err(); err != nil {
		return err
	}

	// Existence check keeps the cart free of lines pointing at nothing.
	if _, err := service.catalog.FindByID(context, input.ProductID); err != nil {
		return err
	}

	if err := service.cartRepository.Add(context, userID, input.ProductID, input.Quantity); err != nil {
		return err
	}

	service.logger.Info("cart item added",
		"user_id", userID,
		"product_id", input.ProductID,
		"quantity", input.Quantity,
	)
	return nil
}

/*
UpdateQuantity replaces the quantity of an existing cart line.

Parameters:
  - context: context.Context
  - userID: string (the authenticated caller)
  - productID: string
  - quantity: int (the new absolute quantity, 1..MaxQuantityPerLine)

Returns:
  - error: VALIDATION_ERROR on a bad quantity, NOT_FOUND when the line
    is not in the caller's cart
*/
func (service *Service) UpdateQuantity(context context.Context, userID, productID string, quantity int) error {
	validator := &validate.Validator{}
	validator.Range(FieldQuantity, quantity, 1, MaxQuantityPerLine)
	if err := validator.Err(); err != nil {
		return err
	}

	return service.cartRepository.SetQuantity(context, userID, productID, quantity)
}

/*
RemoveItem deletes a single line from the caller's cart.

Returns:
  - error: NOT_FOUND when the line is not in the caller's cart
*/
func (service *Service) RemoveItem(context context.Context, userID, productID string) error {
	if err := service.cartRepository.Remove(context, userID, productID); err != nil {
		return err
	}

	service.logger.Info("cart item removed", "user_id", userID, "product_id", productID)
	return nil
}

/*
ClearCart removes everything from the caller's cart. Clearing an already
empty cart succeeds.
*/
func (service *Service) ClearCart(context context.Context, userID string) error {
	if err := service.cartRepository.Clear(context, userID); err != nil {
		return err
	}

	service.logger.Info("cart cleared", "user_id", userID)
	return nil
}
