package memstore

import (
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccounts_AddCartItem_MergesSameTriple(t *testing.T) {
	accounts := NewAccounts(DefaultCatalog())

	first, err := accounts.AddCartItem("user-1", service.AddCartItemInput{ProductID: 1, Quantity: 1, SelectedSize: "42"})
	require.NoError(t, err)
	second, err := accounts.AddCartItem("user-1", service.AddCartItemInput{ProductID: 1, Quantity: 2, SelectedSize: "42"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 3, second.Quantity)
	assert.InDelta(t, 3*89.90, second.TotalPrice, 0.001)

	items, summary := accounts.Cart("user-1")
	require.Len(t, items, 1)
	assert.Equal(t, 3, summary.TotalItems)
}

func TestAccounts_AddCartItem_DistinctVariantsAreSeparateLines(t *testing.T) {
	accounts := NewAccounts(DefaultCatalog())

	_, err := accounts.AddCartItem("user-1", service.AddCartItemInput{ProductID: 1, Quantity: 1, SelectedSize: "42"})
	require.NoError(t, err)
	_, err = accounts.AddCartItem("user-1", service.AddCartItemInput{ProductID: 1, Quantity: 1, SelectedSize: "43"})
	require.NoError(t, err)

	items, _ := accounts.Cart("user-1")
	assert.Len(t, items, 2)
}

func TestAccounts_AddCartItem_UnknownProduct(t *testing.T) {
	accounts := NewAccounts(DefaultCatalog())

	_, err := accounts.AddCartItem("user-1", service.AddCartItemInput{ProductID: 999, Quantity: 1})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestAccounts_UpdateAndRemoveCartItem(t *testing.T) {
	accounts := NewAccounts(DefaultCatalog())

	item, err := accounts.AddCartItem("user-1", service.AddCartItemInput{ProductID: 2, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, accounts.UpdateCartItem("user-1", item.ID, 4))
	items, summary := accounts.Cart("user-1")
	require.Len(t, items, 1)
	assert.Equal(t, 4, items[0].Quantity)
	assert.InDelta(t, 4*14.50, summary.TotalPrice, 0.001)

	require.NoError(t, accounts.RemoveCartItem("user-1", item.ID))
	items, _ = accounts.Cart("user-1")
	assert.Empty(t, items)

	assert.ErrorIs(t, accounts.UpdateCartItem("user-1", item.ID, 1), ErrLineNotFound)
	assert.ErrorIs(t, accounts.RemoveCartItem("user-1", item.ID), ErrLineNotFound)
}

func TestAccounts_AccountsAreIsolated(t *testing.T) {
	accounts := NewAccounts(DefaultCatalog())

	_, err := accounts.AddCartItem("user-1", service.AddCartItemInput{ProductID: 1, Quantity: 1})
	require.NoError(t, err)

	items, _ := accounts.Cart("user-2")
	assert.Empty(t, items)
}

func TestAccounts_WishlistRejectsDuplicates(t *testing.T) {
	accounts := NewAccounts(DefaultCatalog())

	item, err := accounts.AddWishlistItem("user-1", 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), item.Product.ID)

	_, err = accounts.AddWishlistItem("user-1", 3)
	assert.ErrorIs(t, err, ErrDuplicateWishlist)

	assert.Len(t, accounts.Wishlist("user-1"), 1)
}

func TestAccounts_WishlistRemoveAndClear(t *testing.T) {
	accounts := NewAccounts(DefaultCatalog())

	_, err := accounts.AddWishlistItem("user-1", 3)
	require.NoError(t, err)
	_, err = accounts.AddWishlistItem("user-1", 4)
	require.NoError(t, err)

	accounts.RemoveWishlistItem("user-1", 3)
	assert.Len(t, accounts.Wishlist("user-1"), 1)

	// Removing something absent is a no-op.
	accounts.RemoveWishlistItem("user-1", 3)

	accounts.ClearWishlist("user-1")
	assert.Empty(t, accounts.Wishlist("user-1"))
}

func TestAccounts_ClearCart(t *testing.T) {
	accounts := NewAccounts(DefaultCatalog())

	_, err := accounts.AddCartItem("user-1", service.AddCartItemInput{ProductID: 1, Quantity: 2})
	require.NoError(t, err)

	accounts.ClearCart("user-1")
	items, summary := accounts.Cart("user-1")
	assert.Empty(t, items)
	assert.Equal(t, entity.CartSummary{}, summary)
}
