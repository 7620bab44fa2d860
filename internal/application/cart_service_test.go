package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draperhq/storefront-api/internal/domain/apperr"
)

func newCartFixture() (*CartService, *memProducts, *memCarts) {
	products := newMemProducts()
	carts := newMemCarts(products)
	return &CartService{Carts: carts, Products: products}, products, carts
}

func TestAddItemCreatesCartOnFirstUse(t *testing.T) {
	svc, products, _ := newCartFixture()
	ctx := context.Background()
	p := products.add("Linen Blackout Curtains", 8999, 10)

	cart, err := svc.AddItem(ctx, "user-1", p.ID, 2)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, "Linen Blackout Curtains", cart.Items[0].ProductName)
	assert.Equal(t, int64(8999), cart.Items[0].UnitPriceCents)
}

func TestAddItemIsAdditiveForExistingLine(t *testing.T) {
	svc, products, _ := newCartFixture()
	ctx := context.Background()
	p := products.add("Sheer Voile Panel", 2499, 10)

	_, err := svc.AddItem(ctx, "user-1", p.ID, 2)
	require.NoError(t, err)
	cart, err := svc.AddItem(ctx, "user-1", p.ID, 3)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1, "same product must merge into one line")
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestAddItemValidation(t *testing.T) {
	svc, products, _ := newCartFixture()
	ctx := context.Background()
	p := products.add("Bamboo Roman Shade", 6499, 3)

	_, err := svc.AddItem(ctx, "user-1", p.ID, 0)
	assert.ErrorIs(t, err, apperr.ErrValidation, "quantity below one")

	_, err = svc.AddItem(ctx, "user-1", "missing-product", 1)
	assert.ErrorIs(t, err, apperr.ErrValidation, "unknown product")

	_, err = svc.AddItem(ctx, "user-1", p.ID, 4)
	assert.ErrorIs(t, err, apperr.ErrValidation, "over stock")
}

func TestRemoveItemMissingLineIsNoop(t *testing.T) {
	svc, products, _ := newCartFixture()
	ctx := context.Background()
	p := products.add("Wool Throw Blanket", 5499, 10)
	other := products.add("Velvet Cushion Cover", 1899, 10)

	_, err := svc.AddItem(ctx, "user-1", p.ID, 1)
	require.NoError(t, err)

	cart, err := svc.RemoveItem(ctx, "user-1", other.ID)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func TestRemoveLastItemDeletesCart(t *testing.T) {
	svc, products, carts := newCartFixture()
	ctx := context.Background()
	p := products.add("Curtain Tieback Pair", 1299, 10)

	_, err := svc.AddItem(ctx, "user-1", p.ID, 1)
	require.NoError(t, err)

	cart, err := svc.RemoveItem(ctx, "user-1", p.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	stored, err := carts.GetByUserID(ctx, "user-1")
	require.NoError(t, err)
	assert.Nil(t, stored, "empty cart row must not linger")
}

func TestCartOperationsWithoutCart(t *testing.T) {
	svc, _, _ := newCartFixture()
	ctx := context.Background()

	_, err := svc.Get(ctx, "nobody")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = svc.RemoveItem(ctx, "nobody", "whatever")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	err = svc.Clear(ctx, "nobody")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCartReflectsCurrentCatalogPrices(t *testing.T) {
	svc, products, _ := newCartFixture()
	ctx := context.Background()
	p := products.add("Motorised Roller Blind", 15999, 10)

	_, err := svc.AddItem(ctx, "user-1", p.ID, 1)
	require.NoError(t, err)

	products.byID[p.ID].PriceCents = 13999

	cart, err := svc.Get(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(13999), cart.Items[0].UnitPriceCents, "cart reads resolve live prices")
}
