package impl

import (
	"context"

	"storefront/internal/usecase"
)

// guestSource routes the session at the device-local store. Remote state is
// never consulted while it is active.
type guestSource struct {
	cart        usecase.GuestCartUsecase
	wishlist    usecase.GuestWishlistUsecase
	publishCart func(usecase.CartView)
	publishWish func(usecase.WishlistView)
}

func newGuestSource(
	cart usecase.GuestCartUsecase,
	wishlist usecase.GuestWishlistUsecase,
	publishCart func(usecase.CartView),
	publishWish func(usecase.WishlistView),
) *guestSource {
	return &guestSource{
		cart:        cart,
		wishlist:    wishlist,
		publishCart: publishCart,
		publishWish: publishWish,
	}
}

func (g *guestSource) refresh(ctx context.Context) error {
	g.publishCart(usecase.CartView{Guest: true, GuestItems: g.cart.Items(ctx)})
	g.publishWish(usecase.WishlistView{Guest: true, GuestItems: g.wishlist.Items(ctx)})

	return nil
}

func (g *guestSource) addToCart(ctx context.Context, input usecase.AddToCartInput) error {
	items := g.cart.AddItem(ctx, input)
	g.publishCart(usecase.CartView{Guest: true, GuestItems: items})

	return nil
}

func (g *guestSource) updateQuantity(ctx context.Context, ref usecase.LineRef, quantity int) error {
	items := g.cart.UpdateQuantity(ctx, ref.Key, quantity)
	g.publishCart(usecase.CartView{Guest: true, GuestItems: items})

	return nil
}

func (g *guestSource) removeItem(ctx context.Context, ref usecase.LineRef) error {
	items := g.cart.RemoveItem(ctx, ref.Key)
	g.publishCart(usecase.CartView{Guest: true, GuestItems: items})

	return nil
}

func (g *guestSource) clearCart(ctx context.Context) error {
	if err := g.cart.Clear(ctx); err != nil {
		return err
	}
	g.publishCart(usecase.CartView{Guest: true, GuestItems: nil})

	return nil
}

func (g *guestSource) addToWishlist(ctx context.Context, productID int64) error {
	items := g.wishlist.AddItem(ctx, productID)
	g.publishWish(usecase.WishlistView{Guest: true, GuestItems: items})

	return nil
}

func (g *guestSource) removeFromWishlist(ctx context.Context, productID int64) error {
	items := g.wishlist.RemoveItem(ctx, productID)
	g.publishWish(usecase.WishlistView{Guest: true, GuestItems: items})

	return nil
}

func (g *guestSource) cartCount(ctx context.Context) int {
	return g.cart.ItemCount(ctx)
}

func (g *guestSource) wishlistCount(ctx context.Context) int {
	return g.wishlist.ItemCount(ctx)
}
