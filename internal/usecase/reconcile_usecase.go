package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CartMergeReport is the result of one cart reconciliation pass. Partial
// failure is a first-class outcome, not an error: callers use the counts to
// decide what to tell the user, and the local cart is cleared only when
// FailedCount is zero.
type CartMergeReport struct {
	Success     bool
	SyncedCount int
	FailedCount int
	Errors      []string
	// Cart is the authoritative remote cart re-fetched after the pass, so
	// the caller can render the post-merge state immediately. Nil when even
	// the re-fetch failed.
	Cart *entity.RemoteCart
}

// WishlistMergeReport is the wishlist counterpart of CartMergeReport.
type WishlistMergeReport struct {
	Success     bool
	SyncedCount int
	FailedCount int
	Errors      []string
	Wishlist    []entity.RemoteWishlistItem
}

// ReconcileUsecase merges guest-accumulated local state into the
// authenticated account's server-owned state. It runs once per login
// transition; the session context owns that gating.
//
// Neither pass returns an error: a remote service that cannot be reached at
// all degrades to a report with zero synced and everything failed, so the
// caller can still render whatever local state remains.
type ReconcileUsecase interface {
	MergeCart(ctx context.Context) *CartMergeReport
	MergeWishlist(ctx context.Context) *WishlistMergeReport
}
