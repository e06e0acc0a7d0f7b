package impl

import (
	"context"
	"sync"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"
)

// remoteSource routes the session at the commerce service and owns the
// in-memory view of the server's cart and wishlist.
//
// UpdateQuantity and RemoveItem are optimistic: the recomputed view is
// published before the network call resolves, and on failure the view is
// replaced with a freshly fetched authoritative one while the error is still
// reported to the caller. Each line carries a monotonic version token; a
// completion whose token is no longer current belongs to a superseded
// mutation and must not roll back the newer view.
type remoteSource struct {
	cartAPI     service.CartAPI
	wishlistAPI service.WishlistAPI
	publishCart func(usecase.CartView)
	publishWish func(usecase.WishlistView)

	sfg singleflight.Group

	mu       sync.Mutex
	cart     entity.RemoteCart
	wishlist []entity.RemoteWishlistItem
	versions map[int64]uint64
}

func newRemoteSource(
	cartAPI service.CartAPI,
	wishlistAPI service.WishlistAPI,
	publishCart func(usecase.CartView),
	publishWish func(usecase.WishlistView),
) *remoteSource {
	return &remoteSource{
		cartAPI:     cartAPI,
		wishlistAPI: wishlistAPI,
		publishCart: publishCart,
		publishWish: publishWish,
		versions:    map[int64]uint64{},
	}
}

// seed installs state already fetched by the reconciliation pass, so the
// session does not fetch a third time right after login.
func (r *remoteSource) seed(cart *entity.RemoteCart, wishlist []entity.RemoteWishlistItem) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cart != nil {
		r.cart = *cart
	}
	if wishlist != nil {
		r.wishlist = wishlist
	}
}

// publishAll publishes the current cached views.
func (r *remoteSource) publishAll() {
	r.mu.Lock()
	cartView := r.cartViewLocked()
	wishView := r.wishViewLocked()
	r.mu.Unlock()

	r.publishCart(cartView)
	r.publishWish(wishView)
}

// refresh re-fetches both collections from the service. Concurrent refreshes
// collapse into one network call per collection.
func (r *remoteSource) refresh(ctx context.Context) error {
	if err := r.refreshCart(ctx); err != nil {
		return err
	}

	return r.refreshWishlist(ctx)
}

func (r *remoteSource) refreshCart(ctx context.Context) error {
	v, err, _ := r.sfg.Do("cart", func() (any, error) {
		return r.cartAPI.FetchCart(ctx)
	})
	if err != nil {
		return err
	}

	cart := v.(*entity.RemoteCart)
	r.mu.Lock()
	r.cart = *cart
	view := r.cartViewLocked()
	r.mu.Unlock()
	r.publishCart(view)

	return nil
}

func (r *remoteSource) refreshWishlist(ctx context.Context) error {
	v, err, _ := r.sfg.Do("wishlist", func() (any, error) {
		return r.wishlistAPI.FetchWishlist(ctx)
	})
	if err != nil {
		return err
	}

	items := v.([]entity.RemoteWishlistItem)
	r.mu.Lock()
	r.wishlist = items
	view := r.wishViewLocked()
	r.mu.Unlock()
	r.publishWish(view)

	return nil
}

// addToCart is not optimistic: the post-state carries a server-assigned line
// ID and price snapshot that cannot be predicted client-side, so the call
// waits for the ack and then refreshes.
func (r *remoteSource) addToCart(ctx context.Context, input usecase.AddToCartInput) error {
	if _, err := r.cartAPI.AddItem(ctx, service.AddCartItemInput{
		ProductID:     input.ProductID,
		Quantity:      input.Quantity,
		SelectedSize:  input.SelectedSize,
		SelectedColor: input.SelectedColor,
	}); err != nil {
		return err
	}

	return r.refreshCart(ctx)
}

func (r *remoteSource) updateQuantity(ctx context.Context, ref usecase.LineRef, quantity int) error {
	// The quantity invariant holds remotely too: zero or below is a removal.
	if quantity <= 0 {
		return r.removeItem(ctx, ref)
	}

	r.mu.Lock()
	idx := r.lineIndexLocked(ref.ItemID)
	if idx < 0 {
		r.mu.Unlock()

		return errors.Wrapf(ErrLineNotFound, "line %d", ref.ItemID)
	}

	// Provisional view: new line total = unit price x new quantity, new
	// aggregates = sum over lines. Published before the network call.
	unit := r.cart.Items[idx].UnitPrice()
	r.cart.Items[idx].Quantity = quantity
	r.cart.Items[idx].TotalPrice = unit * float64(quantity)
	r.recomputeSummaryLocked()
	token := r.bumpVersionLocked(ref.ItemID)
	view := r.cartViewLocked()
	r.mu.Unlock()
	r.publishCart(view)

	if err := r.cartAPI.UpdateItemQuantity(ctx, ref.ItemID, quantity); err != nil {
		r.rollback(ctx, ref.ItemID, token)

		return err
	}

	return nil
}

func (r *remoteSource) removeItem(ctx context.Context, ref usecase.LineRef) error {
	r.mu.Lock()
	idx := r.lineIndexLocked(ref.ItemID)
	if idx < 0 {
		r.mu.Unlock()

		return errors.Wrapf(ErrLineNotFound, "line %d", ref.ItemID)
	}

	r.cart.Items = append(r.cart.Items[:idx], r.cart.Items[idx+1:]...)
	r.recomputeSummaryLocked()
	token := r.bumpVersionLocked(ref.ItemID)
	view := r.cartViewLocked()
	r.mu.Unlock()
	r.publishCart(view)

	if err := r.cartAPI.RemoveItem(ctx, ref.ItemID); err != nil {
		r.rollback(ctx, ref.ItemID, token)

		return err
	}

	return nil
}

func (r *remoteSource) clearCart(ctx context.Context) error {
	if err := r.cartAPI.ClearCart(ctx); err != nil {
		return err
	}

	return r.refreshCart(ctx)
}

func (r *remoteSource) addToWishlist(ctx context.Context, productID int64) error {
	if err := r.wishlistAPI.AddToWishlist(ctx, productID); err != nil && !service.IsAlreadyExists(err) {
		return err
	}

	return r.refreshWishlist(ctx)
}

func (r *remoteSource) removeFromWishlist(ctx context.Context, productID int64) error {
	if err := r.wishlistAPI.RemoveFromWishlist(ctx, productID); err != nil {
		return err
	}

	return r.refreshWishlist(ctx)
}

func (r *remoteSource) cartCount(ctx context.Context) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, item := range r.cart.Items {
		count += item.Quantity
	}

	return count
}

func (r *remoteSource) wishlistCount(ctx context.Context) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.wishlist)
}

// rollback discards the optimistic view by re-fetching the authoritative
// state, unless a newer mutation for the line has been published since; in
// that case this completion lost the race and the newer view stands.
func (r *remoteSource) rollback(ctx context.Context, itemID int64, token uint64) {
	r.mu.Lock()
	superseded := r.versions[itemID] != token
	r.mu.Unlock()
	if superseded {
		return
	}

	// Best effort: the caller already receives the mutation error, and a
	// failed re-fetch leaves the next refresh to reconcile the view.
	_ = r.refreshCart(ctx)
}

func (r *remoteSource) lineIndexLocked(itemID int64) int {
	for i := range r.cart.Items {
		if r.cart.Items[i].ID == itemID {
			return i
		}
	}

	return -1
}

func (r *remoteSource) bumpVersionLocked(itemID int64) uint64 {
	r.versions[itemID]++

	return r.versions[itemID]
}

func (r *remoteSource) recomputeSummaryLocked() {
	summary := entity.CartSummary{}
	for _, item := range r.cart.Items {
		summary.TotalItems += item.Quantity
		summary.TotalPrice += item.TotalPrice
	}
	r.cart.Summary = summary
}

func (r *remoteSource) cartViewLocked() usecase.CartView {
	items := make([]entity.RemoteCartItem, len(r.cart.Items))
	copy(items, r.cart.Items)

	return usecase.CartView{Items: items, Summary: r.cart.Summary}
}

func (r *remoteSource) wishViewLocked() usecase.WishlistView {
	items := make([]entity.RemoteWishlistItem, len(r.wishlist))
	copy(items, r.wishlist)

	return usecase.WishlistView{Items: items}
}
