// Copyright (c) 2026 FB-API. All rights reserved.

package product

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/itstee2k3/fb-api/internal/platform/validate"
	"github.com/itstee2k3/fb-api/pkg/slug"
	"github.com/itstee2k3/fb-api/pkg/uuidv7"
)

// # Service Layer

// Service orchestrates the business logic for the catalogue.
// It acts as the primary entry point for managing product metadata.
type Service struct {
	productRepository Repository
	logger            *slog.Logger
}

// NewService constructs a new [Service] with its repository dependency.
func NewService(productRepo Repository, logger *slog.Logger) *Service {
	return &Service{
		productRepository: productRepo,
		logger:            logger,
	}
}

// # Catalogue Lookups

/*
ListProducts retrieves a paginated, optionally name-filtered catalogue page.

Parameters:
  - context: context.Context
  - search: string (Case-insensitive name filter, empty means all)
  - limit: int (Max records to return)
  - offset: int (Pagination cursor)

Returns:
  - []*Product: Page of matching products
  - int: Total count of records matching the filter
  - error: Repository level errors
*/
func (service *Service) ListProducts(context context.Context, search string, limit, offset int) ([]*Product, int, error) {
	return service.productRepository.List(context, search, limit, offset)
}

/*
GetProduct fetches a single product by UUID or SEO Slug.

Description: The service determines the lookup strategy from the identifier
format. A UUID performs a primary key lookup; anything else resolves via
the unique URL slug.

Parameters:
  - context: context.Context
  - identifier: string (UUID or Slug)

Returns:
  - *Product: The hydrated domain entity
  - error: apperr.NotFound if no match is found
*/
func (service *Service) GetProduct(context context.Context, identifier string) (*Product, error) {

	// Identity format detection
	if uuidv7.IsValid(identifier) {
		return service.productRepository.FindByID(context, identifier)
	}

	// Slug resolution
	return service.productRepository.FindBySlug(context, identifier)
}

// # Catalogue Management

// CreateInput holds the admin-supplied fields of a new product.
type CreateInput struct {
	Name        string
	Description string
	ImageURL    string
	PriceCents  int64
	Stock       int
}

/*
CreateProduct initialises a new catalogue record.

Description: Performs business validation on the metadata, generates a
stable UUID v7 identity, and derives an SEO-friendly slug from the name
before persisting.

Parameters:
  - context: context.Context
  - input: CreateInput

Returns:
  - *Product: The persisted entity
  - error: Validation or persistence errors
*/
func (service *Service) CreateProduct(context context.Context, input CreateInput) (*Product, error) {

	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).
		MaxLen(FieldName, input.Name, 200).
		MaxLen(FieldDescription, input.Description, 2000).
		Positive(FieldPriceCents, input.PriceCents).
		Range(FieldStock, input.Stock, 0, 1_000_000)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	created := &Product{
		ID:          uuidv7.New(),
		Name:        input.Name,
		Slug:        slug.From(input.Name),
		Description: input.Description,
		ImageURL:    input.ImageURL,
		PriceCents:  input.PriceCents,
		Stock:       input.Stock,
	}

	if err := service.productRepository.Create(context, created); err != nil {
		return nil, fmt.Errorf("product_service_create_failed: %w", err)
	}

	service.logger.Info("product_created",
		slog.String("product_id", created.ID),
		slog.String("name", created.Name),
	)

	return created, nil
}

// UpdateInput holds the mutable subset of a product's fields.
type UpdateInput struct {
	Name        *string
	Description *string
	ImageURL    *string
	PriceCents  *int64
	Stock       *int
}

/*
UpdateProduct applies modifications to an existing catalogue record.

Description: Supports partial updates. Renaming regenerates the slug so
URL identity follows the display name.

Parameters:
  - context: context.Context
  - id: string
  - input: UpdateInput

Returns:
  - *Product: The updated entity
  - error: NotFound, validation, or persistence errors
*/
func (service *Service) UpdateProduct(context context.Context, id string, input UpdateInput) (*Product, error) {

	existing, err := service.productRepository.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	// Apply delta updates
	if input.Name != nil {
		existing.Name = *input.Name
		existing.Slug = slug.From(*input.Name)
	}
	if input.Description != nil {
		existing.Description = *input.Description
	}
	if input.ImageURL != nil {
		existing.ImageURL = *input.ImageURL
	}
	if input.PriceCents != nil {
		existing.PriceCents = *input.PriceCents
	}
	if input.Stock != nil {
		existing.Stock = *input.Stock
	}

	validator := &validate.Validator{}
	validator.Required(FieldName, existing.Name).
		MaxLen(FieldName, existing.Name, 200).
		Positive(FieldPriceCents, existing.PriceCents).
		Range(FieldStock, existing.Stock, 0, 1_000_000)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.productRepository.Update(context, existing); err != nil {
		return nil, fmt.Errorf("product_service_update_failed: %w", err)
	}

	service.logger.Info("product_updated", slog.String("product_id", id))

	return existing, nil
}

/*
DeleteProduct removes a product from active discovery.

Description: Implements soft-delete logic. The record remains in the
database but disappears from catalogue reads and new cart additions.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - error: Persistence error if removal fails
*/
func (service *Service) DeleteProduct(context context.Context, id string) error {
	if err := service.productRepository.SoftDelete(context, id); err != nil {
		return err
	}

	service.logger.Warn("product_deleted", slog.String("product_id", id))

	return nil
}
