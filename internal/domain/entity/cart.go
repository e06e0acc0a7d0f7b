// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"
	"strings"
)

// LocalCartItem is a cart line accumulated by a guest session. It carries
// identity, quantity and a timestamp only; price and catalog data are always
// resolved through a separate product lookup at render time so the local copy
// can never go stale.
type LocalCartItem struct {
	ProductID     int64  `json:"productId"`
	Quantity      int    `json:"quantity"`
	SelectedSize  string `json:"selectedSize,omitempty"`
	SelectedColor string `json:"selectedColor,omitempty"`
	Timestamp     int64  `json:"timestamp"` // milliseconds since epoch
}

// Key returns the identity key of the line: (productId, size, color).
// Two lines with the same key are the same line.
func (i LocalCartItem) Key() CartLineKey {
	return CartLineKey{
		ProductID:     i.ProductID,
		SelectedSize:  i.SelectedSize,
		SelectedColor: i.SelectedColor,
	}
}

// CartLineKey is the identity triple distinguishing one cart line from another.
type CartLineKey struct {
	ProductID     int64
	SelectedSize  string
	SelectedColor string
}

// String renders the key for error reporting.
func (k CartLineKey) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "product %d", k.ProductID)
	if k.SelectedSize != "" {
		fmt.Fprintf(&b, " size %s", k.SelectedSize)
	}
	if k.SelectedColor != "" {
		fmt.Fprintf(&b, " color %s", k.SelectedColor)
	}

	return b.String()
}

// RemoteCartItem is a cart line owned by the commerce service. The server
// assigns the line ID and keeps the price snapshot; the client never guesses
// either.
type RemoteCartItem struct {
	ID            int64   `json:"id"`
	ProductID     int64   `json:"productId"`
	Quantity      int     `json:"quantity"`
	TotalPrice    float64 `json:"totalPrice"`
	SelectedSize  string  `json:"selectedSize,omitempty"`
	SelectedColor string  `json:"selectedColor,omitempty"`
	Product       Product `json:"Product"`
}

// Key returns the same identity triple used for local lines, so local and
// remote collections can be matched during reconciliation.
func (i RemoteCartItem) Key() CartLineKey {
	return CartLineKey{
		ProductID:     i.ProductID,
		SelectedSize:  i.SelectedSize,
		SelectedColor: i.SelectedColor,
	}
}

// UnitPrice derives the per-unit price from the server's line total.
func (i RemoteCartItem) UnitPrice() float64 {
	if i.Quantity <= 0 {
		return 0
	}

	return i.TotalPrice / float64(i.Quantity)
}

// CartSummary is the aggregate view the commerce service returns alongside
// the cart lines.
type CartSummary struct {
	TotalItems int     `json:"totalItems"`
	TotalPrice float64 `json:"totalPrice"`
}

// RemoteCart is the authoritative cart of an authenticated account.
type RemoteCart struct {
	Items   []RemoteCartItem `json:"items"`
	Summary CartSummary      `json:"summary"`
}
