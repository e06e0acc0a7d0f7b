// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// GuestStore is the encoded per-device store holding the cart and wishlist of
// an unauthenticated session.
//
// Reads never fail: a missing entry, an undecodable payload, or unavailable
// storage all degrade to an empty collection, because guest cart
// functionality is best-effort and must not block browsing. Writes report
// failure but callers treat it as "the in-memory copy is not durable", never
// as a fatal condition.
type GuestStore interface {
	// SaveCartItems persists the full guest cart collection.
	SaveCartItems(ctx context.Context, items []entity.LocalCartItem) error

	// ReadCartItems returns the persisted guest cart, or an empty slice.
	ReadCartItems(ctx context.Context) []entity.LocalCartItem

	// ClearCart removes the persisted cart entry. Idempotent.
	ClearCart(ctx context.Context) error

	// SaveWishlistItems persists the full guest wishlist collection.
	SaveWishlistItems(ctx context.Context, items []entity.LocalWishlistItem) error

	// ReadWishlistItems returns the persisted guest wishlist, or an empty slice.
	ReadWishlistItems(ctx context.Context) []entity.LocalWishlistItem

	// ClearWishlist removes the persisted wishlist entry. Idempotent.
	ClearWishlist(ctx context.Context) error
}
