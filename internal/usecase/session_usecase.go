package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// LineRef identifies a cart line to mutate. Authenticated sessions address
// lines by the server-assigned item ID; guest sessions address them by the
// identity triple. Callers fill whichever side matches the session state.
type LineRef struct {
	ItemID int64
	Key    entity.CartLineKey
}

// CartView is the cart snapshot published to observers. Exactly one of
// GuestItems and Items is populated depending on the session state; guest
// lines carry no price data, so the UI resolves display data through the
// catalog.
type CartView struct {
	Loading    bool
	Guest      bool
	GuestItems []entity.LocalCartItem
	Items      []entity.RemoteCartItem
	Summary    entity.CartSummary
}

// WishlistView is the wishlist snapshot published to observers.
type WishlistView struct {
	Loading    bool
	Guest      bool
	GuestItems []entity.LocalWishlistItem
	Items      []entity.RemoteWishlistItem
}

// MergeOutcome aggregates the two reconciliation reports produced by a login
// transition.
type MergeOutcome struct {
	Cart     *CartMergeReport
	Wishlist *WishlistMergeReport
}

// SessionUsecase is the long-lived cart/wishlist context a UI observes. It
// routes every operation to the guest store or the remote client based on the
// current authentication state, and performs optimistic updates with rollback
// for authenticated cart mutations.
type SessionUsecase interface {
	// OnAuthChange is the single authentication transition callback. The
	// guest-to-authenticated edge triggers reconciliation exactly once and
	// returns its outcome; every other call returns nil. Invoking it again
	// with an unchanged state is a no-op.
	OnAuthChange(ctx context.Context, state entity.AuthState) (*MergeOutcome, error)

	// Cart returns the current published cart view.
	Cart() CartView

	// Wishlist returns the current published wishlist view.
	Wishlist() WishlistView

	// SubscribeCart registers an observer for cart snapshots and returns an
	// unsubscribe function. The observer immediately receives the current view.
	SubscribeCart(fn func(CartView)) func()

	// SubscribeWishlist registers an observer for wishlist snapshots.
	SubscribeWishlist(fn func(WishlistView)) func()

	// AddToCart adds a line. Not optimistic for authenticated sessions: the
	// server assigns identity and price, so the call waits for the ack and
	// then refreshes.
	AddToCart(ctx context.Context, input AddToCartInput) error

	// UpdateQuantity changes a line's quantity. Optimistic for authenticated
	// sessions: the recomputed view is published before the network call
	// resolves, and a failure re-fetches the authoritative state.
	UpdateQuantity(ctx context.Context, ref LineRef, quantity int) error

	// RemoveItem removes a line. Optimistic, same contract as UpdateQuantity.
	RemoveItem(ctx context.Context, ref LineRef) error

	// ClearCart empties the cart. Not optimistic.
	ClearCart(ctx context.Context) error

	// AddToWishlist adds a product to the wishlist for the current state.
	AddToWishlist(ctx context.Context, productID int64) error

	// RemoveFromWishlist removes a product from the wishlist.
	RemoveFromWishlist(ctx context.Context, productID int64) error

	// CartItemCount is the badge counter: sum of quantities.
	CartItemCount(ctx context.Context) int

	// WishlistItemCount is the badge counter: number of entries.
	WishlistItemCount(ctx context.Context) int

	// Refresh re-fetches authoritative remote state for authenticated
	// sessions and republishes. Guest sessions republish from local storage.
	Refresh(ctx context.Context) error
}
