// Package service declares the domain-facing contracts implemented by the
// infrastructure layer.
package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// ErrSessionExpired is returned by the commerce clients when the remote
// service answers with a 401-class status. Callers must treat it as "session
// no longer authenticated", not as a generic failure.
var ErrSessionExpired = errors.New("session no longer authenticated")

// APIError is the structured failure shape of the commerce API.
type APIError struct {
	StatusCode int    // HTTP-like status
	Code       string // business error code when the service provides one
	Message    string // user-facing message from the service
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("commerce api: %d %s: %s", e.StatusCode, e.Code, e.Message)
	}

	return fmt.Sprintf("commerce api: %d: %s", e.StatusCode, e.Message)
}

// IsAlreadyExists reports whether err is the commerce service rejecting a
// duplicate, either by conflict status or by an "already exists"-shaped
// message. The wishlist endpoint signals duplicates this way instead of
// ignoring them silently.
func IsAlreadyExists(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	if apiErr.StatusCode == http.StatusConflict {
		return true
	}

	return strings.Contains(strings.ToLower(apiErr.Message), "already exist")
}

// AddCartItemInput is the payload for adding a line to the remote cart.
type AddCartItemInput struct {
	ProductID     int64  `json:"productId" validate:"required,gt=0"`
	Quantity      int    `json:"quantity" validate:"required,gt=0"`
	SelectedSize  string `json:"selectedSize,omitempty"`
	SelectedColor string `json:"selectedColor,omitempty"`
}

// CartAPI is the authenticated cart surface of the commerce service.
// All calls may fail with *APIError; 401-class failures are wrapped in
// ErrSessionExpired.
type CartAPI interface {
	// FetchCart returns the account's current cart. An empty cart is a valid
	// result, not an error.
	FetchCart(ctx context.Context) (*entity.RemoteCart, error)

	// AddItem creates a line (or lets the server merge it) and returns the
	// server-owned result.
	AddItem(ctx context.Context, input AddCartItemInput) (*entity.RemoteCartItem, error)

	// UpdateItemQuantity overwrites the quantity of a line by its server ID.
	UpdateItemQuantity(ctx context.Context, itemID int64, quantity int) error

	// RemoveItem deletes a line by its server ID.
	RemoveItem(ctx context.Context, itemID int64) error

	// ClearCart deletes every line of the account's cart.
	ClearCart(ctx context.Context) error
}

// WishlistAPI is the authenticated wishlist surface of the commerce service.
// Wishlist identity is the product ID alone, so no server line ID is needed
// for removal.
type WishlistAPI interface {
	// FetchWishlist returns the account's wishlist entries.
	FetchWishlist(ctx context.Context) ([]entity.RemoteWishlistItem, error)

	// AddToWishlist adds a product. The service may reject duplicates with an
	// "already exists" error; see IsAlreadyExists.
	AddToWishlist(ctx context.Context, productID int64) error

	// RemoveFromWishlist removes a product.
	RemoveFromWishlist(ctx context.Context, productID int64) error

	// ClearWishlist removes every entry.
	ClearWishlist(ctx context.Context) error
}
