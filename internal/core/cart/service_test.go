// Copyright (c) 2026 FB-API. All rights reserved.

package cart_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itstee2k3/fb-api/internal/core/cart"
	"github.com/itstee2k3/fb-api/internal/core/product"
	"github.com/itstee2k3/fb-api/internal/platform/apperr"
)

// lineKey identifies one cart line in the in-memory fakes.
type lineKey struct {
	userID    string
	productID string
}

type fakeRepository struct {
	lines    map[lineKey]*cart.Item
	products map[string]*product.Product
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		lines:    make(map[lineKey]*cart.Item),
		products: make(map[string]*product.Product),
	}
}

func (repository *fakeRepository) ListByUser(_ context.Context, userID string) ([]*cart.Item, error) {
	var items []*cart.Item
	for key, line := range repository.lines {
		if key.userID != userID {
			continue
		}
		catalogue, ok := repository.products[key.productID]
		if !ok {
			continue
		}
		copied := *line
		copied.ProductName = catalogue.Name
		copied.ProductSlug = catalogue.Slug
		copied.PriceCents = catalogue.PriceCents
		items = append(items, &copied)
	}
	return items, nil
}

func (repository *fakeRepository) Add(_ context.Context, userID, productID string, quantity int) error {
	key := lineKey{userID: userID, productID: productID}
	if existing, ok := repository.lines[key]; ok {
		existing.Quantity += quantity
		existing.UpdatedAt = time.Now().UTC()
		return nil
	}
	repository.lines[key] = &cart.Item{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	return nil
}

func (repository *fakeRepository) SetQuantity(_ context.Context, userID, productID string, quantity int) error {
	key := lineKey{userID: userID, productID: productID}
	existing, ok := repository.lines[key]
	if !ok {
		return apperr.NotFound("Cart item")
	}
	existing.Quantity = quantity
	return nil
}

func (repository *fakeRepository) Remove(_ context.Context, userID, productID string) error {
	key := lineKey{userID: userID, productID: productID}
	if _, ok := repository.lines[key]; !ok {
		return apperr.NotFound("Cart item")
	}
	delete(repository.lines, key)
	return nil
}

func (repository *fakeRepository) Clear(_ context.Context, userID string) error {
	for key := range repository.lines {
		if key.userID == userID {
			delete(repository.lines, key)
		}
	}
	return nil
}

// fakeCatalog serves product existence checks from the shared product map.
type fakeCatalog struct {
	products map[string]*product.Product
}

func (catalog *fakeCatalog) FindByID(_ context.Context, id string) (*product.Product, error) {
	if found, ok := catalog.products[id]; ok {
		return found, nil
	}
	return nil, apperr.NotFound("Product")
}

type cartFixture struct {
	service    *cart.Service
	repository *fakeRepository
}

func newCartFixture() *cartFixture {
	repository := newFakeRepository()
	catalog := &fakeCatalog{products: repository.products}
	return &cartFixture{
		service:    cart.NewService(repository, catalog, slog.Default()),
		repository: repository,
	}
}

func (fixture *cartFixture) stockProduct(id, name string, priceCents int64) {
	fixture.repository.products[id] = &product.Product{
		ID: id, Name: name, PriceCents: priceCents,
	}
}

// # Adding

func TestService_AddItem_Accumulates(t *testing.T) {
	fixture := newCartFixture()
	fixture.stockProduct("p1", "Gaming Mouse", 4999)

	ctx := context.Background()
	require.NoError(t, fixture.service.AddItem(ctx, "u1", cart.AddInput{ProductID: "p1", Quantity: 2}))
	require.NoError(t, fixture.service.AddItem(ctx, "u1", cart.AddInput{ProductID: "p1", Quantity: 3}))

	summary, err := fixture.service.GetCart(ctx, "u1")
	require.NoError(t, err)

	require.Len(t, summary.Items, 1)
	assert.Equal(t, 5, summary.Items[0].Quantity)
}

func TestService_AddItem_UnknownProduct(t *testing.T) {
	fixture := newCartFixture()

	err := fixture.service.AddItem(context.Background(), "u1", cart.AddInput{ProductID: "ghost", Quantity: 1})
	assert.True(t, apperr.IsNotFound(err))
}

func TestService_AddItem_QuantityBounds(t *testing.T) {
	fixture := newCartFixture()
	fixture.stockProduct("p1", "Gaming Mouse", 4999)

	for _, quantity := range []int{0, -1, cart.MaxQuantityPerLine + 1} {
		err := fixture.service.AddItem(context.Background(), "u1", cart.AddInput{ProductID: "p1", Quantity: quantity})
		require.Error(t, err)

		failed := apperr.As(err)
		require.NotNil(t, failed)
		assert.Equal(t, "VALIDATION_ERROR", failed.Code)
	}
}

// # Totals

func TestService_GetCart_Totals(t *testing.T) {
	fixture := newCartFixture()
	fixture.stockProduct("p1", "Gaming Mouse", 4999)
	fixture.stockProduct("p2", "Mouse Pad", 1250)

	ctx := context.Background()
	require.NoError(t, fixture.service.AddItem(ctx, "u1", cart.AddInput{ProductID: "p1", Quantity: 2}))
	require.NoError(t, fixture.service.AddItem(ctx, "u1", cart.AddInput{ProductID: "p2", Quantity: 1}))

	summary, err := fixture.service.GetCart(ctx, "u1")
	require.NoError(t, err)

	assert.Equal(t, 2, summary.ItemCount)
	assert.Equal(t, int64(2*4999+1250), summary.TotalCents)
}

func TestService_GetCart_EmptyIsNotAnError(t *testing.T) {
	fixture := newCartFixture()

	summary, err := fixture.service.GetCart(context.Background(), "u1")
	require.NoError(t, err)

	assert.NotNil(t, summary.Items)
	assert.Zero(t, summary.ItemCount)
	assert.Zero(t, summary.TotalCents)
}

// # Mutation and isolation

func TestService_UpdateQuantity(t *testing.T) {
	fixture := newCartFixture()
	fixture.stockProduct("p1", "Gaming Mouse", 4999)

	ctx := context.Background()
	require.NoError(t, fixture.service.AddItem(ctx, "u1", cart.AddInput{ProductID: "p1", Quantity: 2}))
	require.NoError(t, fixture.service.UpdateQuantity(ctx, "u1", "p1", 7))

	summary, err := fixture.service.GetCart(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 7, summary.Items[0].Quantity)

	err = fixture.service.UpdateQuantity(ctx, "u1", "p-missing", 3)
	assert.True(t, apperr.IsNotFound(err))
}

func TestService_RemoveItem(t *testing.T) {
	fixture := newCartFixture()
	fixture.stockProduct("p1", "Gaming Mouse", 4999)

	ctx := context.Background()
	require.NoError(t, fixture.service.AddItem(ctx, "u1", cart.AddInput{ProductID: "p1", Quantity: 1}))
	require.NoError(t, fixture.service.RemoveItem(ctx, "u1", "p1"))

	err := fixture.service.RemoveItem(ctx, "u1", "p1")
	assert.True(t, apperr.IsNotFound(err), "removing twice reports the line as gone")
}

func TestService_ClearCart_ScopedToCaller(t *testing.T) {
	fixture := newCartFixture()
	fixture.stockProduct("p1", "Gaming Mouse", 4999)

	ctx := context.Background()
	require.NoError(t, fixture.service.AddItem(ctx, "u1", cart.AddInput{ProductID: "p1", Quantity: 1}))
	require.NoError(t, fixture.service.AddItem(ctx, "u2", cart.AddInput{ProductID: "p1", Quantity: 4}))

	require.NoError(t, fixture.service.ClearCart(ctx, "u1"))
	require.NoError(t, fixture.service.ClearCart(ctx, "u1"), "clearing an empty cart succeeds")

	mine, err := fixture.service.GetCart(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, mine.Items)

	theirs, err := fixture.service.GetCart(ctx, "u2")
	require.NoError(t, err)
	require.Len(t, theirs.Items, 1, "another user's cart is untouched")
	assert.Equal(t, 4, theirs.Items[0].Quantity)
}
