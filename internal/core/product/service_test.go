// Copyright (c) 2026 FB-API. All rights reserved.

package product_test

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itstee2k3/fb-api/internal/core/product"
	"github.com/itstee2k3/fb-api/internal/platform/apperr"
)

// fakeRepository is an in-memory Repository for exercising the Service.
type fakeRepository struct {
	products map[string]*product.Product
	deleted  map[string]bool
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		products: make(map[string]*product.Product),
		deleted:  make(map[string]bool),
	}
}

func (repository *fakeRepository) List(_ context.Context, search string, limit, offset int) ([]*product.Product, int, error) {
	matching := make([]*product.Product, 0)
	for id, candidate := range repository.products {
		if repository.deleted[id] {
			continue
		}
		if search == "" || strings.Contains(strings.ToLower(candidate.Name), strings.ToLower(search)) {
			matching = append(matching, candidate)
		}
	}
	return matching, len(matching), nil
}

func (repository *fakeRepository) FindByID(_ context.Context, id string) (*product.Product, error) {
	if found, ok := repository.products[id]; ok && !repository.deleted[id] {
		copied := *found
		return &copied, nil
	}
	return nil, apperr.NotFound("Product")
}

func (repository *fakeRepository) FindBySlug(_ context.Context, slug string) (*product.Product, error) {
	for id, candidate := range repository.products {
		if candidate.Slug == slug && !repository.deleted[id] {
			copied := *candidate
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("Product")
}

func (repository *fakeRepository) Create(_ context.Context, created *product.Product) error {
	for _, existing := range repository.products {
		if existing.Slug == created.Slug {
			return apperr.Conflict("Resource already exists")
		}
	}
	repository.products[created.ID] = created
	return nil
}

func (repository *fakeRepository) Update(_ context.Context, updated *product.Product) error {
	repository.products[updated.ID] = updated
	return nil
}

func (repository *fakeRepository) SoftDelete(_ context.Context, id string) error {
	repository.deleted[id] = true
	return nil
}

func newTestService() (*product.Service, *fakeRepository) {
	repository := newFakeRepository()
	return product.NewService(repository, slog.Default()), repository
}

// # Creation

func TestService_CreateProduct(t *testing.T) {
	service, _ := newTestService()

	created, err := service.CreateProduct(context.Background(), product.CreateInput{
		Name:       "Gaming Mouse G502",
		PriceCents: 4999,
		Stock:      12,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "gaming-mouse-g502", created.Slug)
	assert.Equal(t, int64(4999), created.PriceCents)
}

func TestService_CreateProduct_Validation(t *testing.T) {
	service, _ := newTestService()

	tests := []struct {
		name  string
		input product.CreateInput
	}{
		{name: "missing name", input: product.CreateInput{PriceCents: 100}},
		{name: "zero price", input: product.CreateInput{Name: "Free Stuff", PriceCents: 0}},
		{name: "negative price", input: product.CreateInput{Name: "Refund", PriceCents: -100}},
		{name: "negative stock", input: product.CreateInput{Name: "Thing", PriceCents: 100, Stock: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateProduct(context.Background(), tt.input)
			require.Error(t, err)

			failed := apperr.As(err)
			require.NotNil(t, failed)
			assert.Equal(t, "VALIDATION_ERROR", failed.Code)
		})
	}
}

// # Lookups

func TestService_GetProduct_ByIDAndSlug(t *testing.T) {
	service, _ := newTestService()

	created, err := service.CreateProduct(context.Background(), product.CreateInput{
		Name: "Mechanical Keyboard", PriceCents: 8900,
	})
	require.NoError(t, err)

	byID, err := service.GetProduct(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, byID.ID)

	bySlug, err := service.GetProduct(context.Background(), "mechanical-keyboard")
	require.NoError(t, err)
	assert.Equal(t, created.ID, bySlug.ID)
}

func TestService_ListProducts_Search(t *testing.T) {
	service, _ := newTestService()

	for _, name := range []string{"Gaming Mouse", "Gaming Keyboard", "Office Chair"} {
		_, err := service.CreateProduct(context.Background(), product.CreateInput{
			Name: name, PriceCents: 1000,
		})
		require.NoError(t, err)
	}

	matching, total, err := service.ListProducts(context.Background(), "gaming", 20, 0)
	require.NoError(t, err)

	assert.Equal(t, 2, total)
	assert.Len(t, matching, 2)
}

// # Mutation

func TestService_UpdateProduct_RenameRegeneratesSlug(t *testing.T) {
	service, _ := newTestService()

	created, err := service.CreateProduct(context.Background(), product.CreateInput{
		Name: "Old Name", PriceCents: 500,
	})
	require.NoError(t, err)

	newName := "Shiny New Name"
	updated, err := service.UpdateProduct(context.Background(), created.ID, product.UpdateInput{
		Name: &newName,
	})
	require.NoError(t, err)

	assert.Equal(t, "shiny-new-name", updated.Slug)
	assert.Equal(t, int64(500), updated.PriceCents, "untouched fields survive a partial update")
}

func TestService_DeleteProduct_HidesFromReads(t *testing.T) {
	service, _ := newTestService()

	created, err := service.CreateProduct(context.Background(), product.CreateInput{
		Name: "Ephemeral", PriceCents: 100,
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteProduct(context.Background(), created.ID))

	_, err = service.GetProduct(context.Background(), created.ID)
	assert.True(t, apperr.IsNotFound(err))
}
