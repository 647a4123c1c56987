package services

import (
	"context"
	"testing"

	"fudge-kettle/models"
	"fudge-kettle/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProducts() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Classic Fudge", Price: 500, Stock: 10},
		{ID: 2, Name: "Maple Walnut", Price: 300, Stock: 5},
	}
}

func TestCartService_AddAccumulates(t *testing.T) {
	ctx := context.Background()
	svc := NewCartService(NewMemoryCartStore(), newFakeCatalog(testProducts()...))

	require.NoError(t, svc.Add(ctx, "s1", 1, 2))
	require.NoError(t, svc.Add(ctx, "s1", 1, 3))

	cart, err := svc.Snapshot(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, map[int]int{1: 5}, cart)
}

func TestCartService_AddDefaultsToOne(t *testing.T) {
	ctx := context.Background()
	svc := NewCartService(NewMemoryCartStore(), newFakeCatalog(testProducts()...))

	require.NoError(t, svc.Add(ctx, "s1", 2, 0))

	cart, err := svc.Snapshot(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, map[int]int{2: 1}, cart)
}

func TestCartService_ViewComputesTotals(t *testing.T) {
	ctx := context.Background()
	svc := NewCartService(NewMemoryCartStore(), newFakeCatalog(testProducts()...))

	require.NoError(t, svc.Add(ctx, "s1", 1, 2))
	require.NoError(t, svc.Add(ctx, "s1", 2, 1))

	view, err := svc.View(ctx, "s1")
	require.NoError(t, err)

	// 2 x 5.00 + 1 x 3.00 = 13.00
	assert.Equal(t, 1300, view.Total)
	require.Len(t, view.Items, 2)
	assert.Equal(t, 1, view.Items[0].Product.ID)
	assert.Equal(t, 2, view.Items[0].Quantity)
	assert.Equal(t, 1000, view.Items[0].LineTotal)
	assert.Equal(t, 2, view.Items[1].Product.ID)
	assert.Equal(t, 1, view.Items[1].Quantity)
	assert.Equal(t, 300, view.Items[1].LineTotal)
}

func TestCartService_ViewEmptyCart(t *testing.T) {
	ctx := context.Background()
	svc := NewCartService(NewMemoryCartStore(), newFakeCatalog(testProducts()...))

	view, err := svc.View(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Zero(t, view.Total)
}

func TestCartService_AddUnknownProduct(t *testing.T) {
	ctx := context.Background()
	svc := NewCartService(NewMemoryCartStore(), newFakeCatalog(testProducts()...))

	err := svc.Add(ctx, "s1", 99, 1)
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)

	cart, err := svc.Snapshot(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestCartService_ViewVanishedProductFailsWhole(t *testing.T) {
	ctx := context.Background()
	catalog := newFakeCatalog(testProducts()...)
	svc := NewCartService(NewMemoryCartStore(), catalog)

	require.NoError(t, svc.Add(ctx, "s1", 1, 1))
	require.NoError(t, svc.Add(ctx, "s1", 2, 1))
	require.NoError(t, catalog.Delete(ctx, 2))

	view, err := svc.View(ctx, "s1")
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
	assert.Nil(t, view)
}

func TestCartService_ViewDoesNotMutate(t *testing.T) {
	ctx := context.Background()
	svc := NewCartService(NewMemoryCartStore(), newFakeCatalog(testProducts()...))

	require.NoError(t, svc.Add(ctx, "s1", 1, 2))
	_, err := svc.View(ctx, "s1")
	require.NoError(t, err)

	cart, err := svc.Snapshot(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, map[int]int{1: 2}, cart)
}

func TestCartService_Clear(t *testing.T) {
	ctx := context.Background()
	svc := NewCartService(NewMemoryCartStore(), newFakeCatalog(testProducts()...))

	require.NoError(t, svc.Add(ctx, "s1", 1, 2))
	require.NoError(t, svc.Clear(ctx, "s1"))

	cart, err := svc.Snapshot(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestCartService_SessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	svc := NewCartService(NewMemoryCartStore(), newFakeCatalog(testProducts()...))

	require.NoError(t, svc.Add(ctx, "alice", 1, 2))
	require.NoError(t, svc.Add(ctx, "bob", 2, 1))

	aliceCart, err := svc.Snapshot(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, map[int]int{1: 2}, aliceCart)

	bobCart, err := svc.Snapshot(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, map[int]int{2: 1}, bobCart)
}
