// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// AddToCartInput carries one add-to-cart action, guest or authenticated.
type AddToCartInput struct {
	ProductID     int64  `validate:"required,gt=0"`
	Quantity      int    `validate:"required,gt=0"`
	SelectedSize  string
	SelectedColor string
}

// Key returns the identity triple of the line being added.
func (in AddToCartInput) Key() entity.CartLineKey {
	return entity.CartLineKey{
		ProductID:     in.ProductID,
		SelectedSize:  in.SelectedSize,
		SelectedColor: in.SelectedColor,
	}
}

// GuestCartUsecase mutates the device-local cart of an unauthenticated
// session. Every operation reads, transforms and writes the full collection;
// mutations return the updated collection so callers can render it without a
// second read. Storage write failures are non-fatal and absorbed here.
type GuestCartUsecase interface {
	// Items returns the current guest cart collection.
	Items(ctx context.Context) []entity.LocalCartItem

	// AddItem appends a new line, or merges into an existing line with the
	// same identity key by summing quantities and refreshing the timestamp.
	AddItem(ctx context.Context, input AddToCartInput) []entity.LocalCartItem

	// UpdateQuantity overwrites the quantity of an existing line. Missing
	// key is a no-op; quantity zero or below removes the line instead.
	UpdateQuantity(ctx context.Context, key entity.CartLineKey, quantity int) []entity.LocalCartItem

	// RemoveItem drops the line with the given identity key. Idempotent.
	RemoveItem(ctx context.Context, key entity.CartLineKey) []entity.LocalCartItem

	// Clear removes the whole collection from storage.
	Clear(ctx context.Context) error

	// ItemCount is the sum of line quantities, computed from storage.
	ItemCount(ctx context.Context) int
}

// GuestWishlistUsecase mutates the device-local wishlist of an
// unauthenticated session. Identity is the product ID; at most one entry per
// product.
type GuestWishlistUsecase interface {
	// Items returns the current guest wishlist collection.
	Items(ctx context.Context) []entity.LocalWishlistItem

	// AddItem adds a product. Adding a product already present refreshes its
	// timestamp without creating a second entry.
	AddItem(ctx context.Context, productID int64) []entity.LocalWishlistItem

	// RemoveItem drops the entry for a product. Idempotent.
	RemoveItem(ctx context.Context, productID int64) []entity.LocalWishlistItem

	// Clear removes the whole collection from storage.
	Clear(ctx context.Context) error

	// ItemCount is the number of entries, computed from storage.
	ItemCount(ctx context.Context) int
}
