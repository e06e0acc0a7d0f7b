package entity

// LocalWishlistItem is a wishlist entry accumulated by a guest session.
// Identity is the product ID alone; at most one entry per product.
type LocalWishlistItem struct {
	ProductID int64 `json:"productId"`
	Timestamp int64 `json:"timestamp"` // milliseconds since epoch
}

// RemoteWishlistItem is a wishlist entry owned by the commerce service.
type RemoteWishlistItem struct {
	ID      int64   `json:"id"`
	Product Product `json:"Product"`
}
