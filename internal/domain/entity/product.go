package entity

// Product is the catalog snapshot the commerce service embeds in cart and
// wishlist lines. It is display data only and is never persisted locally.
type Product struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"imageUrl,omitempty"`
}
