package impl

import (
	"context"
	"log/slog"
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/infra/localstore"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sessionFixtures wires a session over a real local store and mocked commerce
// clients, the same split the production wiring uses.
type sessionFixtures struct {
	service     usecase.SessionUsecase
	store       *localstore.Store
	cartAPI     *mockSvc.MockCartAPI
	wishlistAPI *mockSvc.MockWishlistAPI
}

func createTestSessionService(t *testing.T) sessionFixtures {
	t.Helper()

	store := newGuestStoreForTest(t)
	cartAPI := mockSvc.NewMockCartAPI(t)
	wishlistAPI := mockSvc.NewMockWishlistAPI(t)
	logger := slog.Default()

	session := NewSessionService(
		store,
		NewGuestCartService(store, logger),
		NewGuestWishlistService(store, logger),
		cartAPI,
		wishlistAPI,
		NewReconcileService(store, cartAPI, wishlistAPI, logger),
		logger,
	)

	return sessionFixtures{
		service:     session,
		store:       store,
		cartAPI:     cartAPI,
		wishlistAPI: wishlistAPI,
	}
}

func authenticated(subject string) entity.AuthState {
	return entity.AuthState{Authenticated: true, Subject: subject}
}

// A guest session never touches the commerce mocks; the asserting mocks fail
// the test on any unexpected call.
func TestSessionService_GuestRoutesToLocalStore(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	err := fx.service.AddToCart(ctx, usecase.AddToCartInput{ProductID: 5, Quantity: 2})
	require.NoError(t, err)
	err = fx.service.AddToWishlist(ctx, 3)
	require.NoError(t, err)

	view := fx.service.Cart()
	assert.True(t, view.Guest)
	require.Len(t, view.GuestItems, 1)
	assert.Equal(t, int64(5), view.GuestItems[0].ProductID)

	assert.Equal(t, 2, fx.service.CartItemCount(ctx))
	assert.Equal(t, 1, fx.service.WishlistItemCount(ctx))

	// The guest view survives the session object: it is read back from storage.
	require.Len(t, fx.store.ReadCartItems(ctx), 1)
}

func TestSessionService_AddToCart_RejectsInvalidInput(t *testing.T) {
	fx := createTestSessionService(t)

	err := fx.service.AddToCart(context.Background(), usecase.AddToCartInput{ProductID: 5, Quantity: 0})
	assert.Error(t, err)
}

func TestSessionService_LoginMergesGuestStateOnce(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	require.NoError(t, fx.service.AddToCart(ctx, usecase.AddToCartInput{ProductID: 5, Quantity: 2}))
	require.NoError(t, fx.service.AddToWishlist(ctx, 3))

	fx.cartAPI.EXPECT().FetchCart(ctx).Return(&entity.RemoteCart{}, nil).Once()
	fx.cartAPI.EXPECT().
		AddItem(ctx, service.AddCartItemInput{ProductID: 5, Quantity: 2}).
		Return(&entity.RemoteCartItem{ID: 42, ProductID: 5, Quantity: 2, TotalPrice: 200}, nil).Once()
	merged := remoteCartWith(entity.RemoteCartItem{ID: 42, ProductID: 5, Quantity: 2, TotalPrice: 200})
	fx.cartAPI.EXPECT().FetchCart(ctx).Return(merged, nil).Once()

	fx.wishlistAPI.EXPECT().AddToWishlist(ctx, int64(3)).Return(nil).Once()
	fx.wishlistAPI.EXPECT().FetchWishlist(ctx).
		Return([]entity.RemoteWishlistItem{{ID: 9, Product: entity.Product{ID: 3}}}, nil).Once()

	var views []usecase.CartView
	unsubscribe := fx.service.SubscribeCart(func(v usecase.CartView) { views = append(views, v) })
	defer unsubscribe()

	outcome, err := fx.service.OnAuthChange(ctx, authenticated("user-1"))
	require.NoError(t, err)
	require.NotNil(t, outcome)
	assert.True(t, outcome.Cart.Success)
	assert.Equal(t, 1, outcome.Cart.SyncedCount)
	assert.True(t, outcome.Wishlist.Success)

	// Observers saw a loading placeholder while the merge ran, then the
	// authoritative view.
	var sawLoading bool
	for _, v := range views {
		if v.Loading {
			sawLoading = true
		}
	}
	assert.True(t, sawLoading)

	view := fx.service.Cart()
	assert.False(t, view.Guest)
	assert.False(t, view.Loading)
	require.Len(t, view.Items, 1)
	assert.Equal(t, int64(42), view.Items[0].ID)
	assert.Equal(t, 2, fx.service.CartItemCount(ctx))
	assert.Equal(t, 1, fx.service.WishlistItemCount(ctx))

	// Local storage was released by the successful merge.
	assert.Empty(t, fx.store.ReadCartItems(ctx))
	assert.Empty(t, fx.store.ReadWishlistItems(ctx))

	// Re-observing the same state runs nothing: the mocks have no remaining
	// expectations to consume.
	outcome, err = fx.service.OnAuthChange(ctx, authenticated("user-1"))
	require.NoError(t, err)
	assert.Nil(t, outcome)
}

func TestSessionService_LogoutRevertsToGuestView(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.cartAPI.EXPECT().FetchCart(ctx).Return(&entity.RemoteCart{}, nil).Once()
	fx.wishlistAPI.EXPECT().FetchWishlist(ctx).Return([]entity.RemoteWishlistItem{}, nil).Once()

	_, err := fx.service.OnAuthChange(ctx, authenticated("user-1"))
	require.NoError(t, err)
	assert.False(t, fx.service.Cart().Guest)

	_, err = fx.service.OnAuthChange(ctx, entity.AuthState{})
	require.NoError(t, err)

	view := fx.service.Cart()
	assert.True(t, view.Guest)
	assert.Empty(t, view.GuestItems)
}

// A failed post-merge re-fetch is retried once when the source is installed so
// the session does not stay on the loading placeholder.
func TestSessionService_LoginRetriesFetchAfterMergeDegrade(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	require.NoError(t, fx.service.AddToCart(ctx, usecase.AddToCartInput{ProductID: 5, Quantity: 2}))

	// The merge pass cannot reach the service at all.
	fx.cartAPI.EXPECT().FetchCart(ctx).Return(nil, errors.New("connection refused")).Once()
	fx.wishlistAPI.EXPECT().FetchWishlist(ctx).Return(nil, errors.New("connection refused")).Once()

	// The retry succeeds.
	remote := remoteCartWith(entity.RemoteCartItem{ID: 7, ProductID: 8, Quantity: 1, TotalPrice: 50})
	fx.cartAPI.EXPECT().FetchCart(ctx).Return(remote, nil).Once()
	fx.wishlistAPI.EXPECT().FetchWishlist(ctx).Return([]entity.RemoteWishlistItem{}, nil).Once()

	outcome, err := fx.service.OnAuthChange(ctx, authenticated("user-1"))
	require.NoError(t, err)
	assert.False(t, outcome.Cart.Success)
	assert.Equal(t, 1, outcome.Cart.FailedCount)

	view := fx.service.Cart()
	assert.False(t, view.Loading)
	require.Len(t, view.Items, 1)
	assert.Equal(t, int64(7), view.Items[0].ID)

	// The unmerged guest line is still safe in local storage.
	require.Len(t, fx.store.ReadCartItems(ctx), 1)
}

func loginWithRemoteCart(t *testing.T, fx sessionFixtures, cart *entity.RemoteCart) {
	t.Helper()
	ctx := context.Background()

	fx.cartAPI.EXPECT().FetchCart(ctx).Return(cart, nil).Once()
	fx.wishlistAPI.EXPECT().FetchWishlist(ctx).Return([]entity.RemoteWishlistItem{}, nil).Once()

	_, err := fx.service.OnAuthChange(ctx, authenticated("user-1"))
	require.NoError(t, err)
}

func TestSessionService_UpdateQuantity_PublishesBeforeNetworkResolves(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	loginWithRemoteCart(t, fx,
		remoteCartWith(entity.RemoteCartItem{ID: 42, ProductID: 5, Quantity: 1, TotalPrice: 100}))

	fx.cartAPI.EXPECT().UpdateItemQuantity(ctx, int64(42), 3).
		RunAndReturn(func(context.Context, int64, int) error {
			// The provisional view is already published at this point.
			view := fx.service.Cart()
			require.Len(t, view.Items, 1)
			assert.Equal(t, 3, view.Items[0].Quantity)
			assert.InDelta(t, 300, view.Items[0].TotalPrice, 0.001)
			assert.InDelta(t, 300, view.Summary.TotalPrice, 0.001)

			return nil
		}).Once()

	err := fx.service.UpdateQuantity(ctx, usecase.LineRef{ItemID: 42}, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, fx.service.CartItemCount(ctx))
}

func TestSessionService_UpdateQuantity_RollsBackToAuthoritativeOnFailure(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	loginWithRemoteCart(t, fx,
		remoteCartWith(entity.RemoteCartItem{ID: 42, ProductID: 5, Quantity: 1, TotalPrice: 100}))

	fx.cartAPI.EXPECT().UpdateItemQuantity(ctx, int64(42), 3).
		Return(errors.New("service unavailable")).Once()
	authoritative := remoteCartWith(entity.RemoteCartItem{ID: 42, ProductID: 5, Quantity: 1, TotalPrice: 100})
	fx.cartAPI.EXPECT().FetchCart(ctx).Return(authoritative, nil).Once()

	err := fx.service.UpdateQuantity(ctx, usecase.LineRef{ItemID: 42}, 3)
	require.Error(t, err)

	view := fx.service.Cart()
	require.Len(t, view.Items, 1)
	assert.Equal(t, 1, view.Items[0].Quantity)
	assert.InDelta(t, 100, view.Summary.TotalPrice, 0.001)
}

func TestSessionService_UpdateQuantity_ZeroRemovesLine(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	loginWithRemoteCart(t, fx,
		remoteCartWith(entity.RemoteCartItem{ID: 42, ProductID: 5, Quantity: 2, TotalPrice: 200}))

	fx.cartAPI.EXPECT().RemoveItem(ctx, int64(42)).Return(nil).Once()

	err := fx.service.UpdateQuantity(ctx, usecase.LineRef{ItemID: 42}, 0)
	require.NoError(t, err)
	assert.Empty(t, fx.service.Cart().Items)
	assert.Zero(t, fx.service.CartItemCount(ctx))
}

func TestSessionService_UpdateQuantity_UnknownLine(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	loginWithRemoteCart(t, fx, remoteCartWith())

	err := fx.service.UpdateQuantity(ctx, usecase.LineRef{ItemID: 99}, 2)
	assert.ErrorIs(t, err, ErrLineNotFound)
}

// A completion that lost the race against a newer mutation of the same line
// must not replace the newer view. The nested call below publishes a second
// mutation while the first one is still in flight.
func TestRemoteSource_SupersededFailureDoesNotRollBack(t *testing.T) {
	cartAPI := mockSvc.NewMockCartAPI(t)
	wishlistAPI := mockSvc.NewMockWishlistAPI(t)

	var current usecase.CartView
	source := newRemoteSource(cartAPI, wishlistAPI,
		func(v usecase.CartView) { current = v },
		func(usecase.WishlistView) {})
	source.seed(remoteCartWith(entity.RemoteCartItem{ID: 42, ProductID: 5, Quantity: 1, TotalPrice: 100}), nil)

	ctx := context.Background()
	ref := usecase.LineRef{ItemID: 42}

	cartAPI.EXPECT().UpdateItemQuantity(ctx, int64(42), 3).
		RunAndReturn(func(context.Context, int64, int) error {
			// A newer mutation for the same line completes first.
			cartAPI.EXPECT().UpdateItemQuantity(ctx, int64(42), 5).Return(nil).Once()
			require.NoError(t, source.updateQuantity(ctx, ref, 5))

			return errors.New("service unavailable")
		}).Once()

	// No FetchCart expectation: a rollback fetch here would fail the test.
	err := source.updateQuantity(ctx, ref, 3)
	require.Error(t, err)

	require.Len(t, current.Items, 1)
	assert.Equal(t, 5, current.Items[0].Quantity)
}

func TestSessionService_ClearCartRefreshesFromRemote(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	loginWithRemoteCart(t, fx,
		remoteCartWith(entity.RemoteCartItem{ID: 42, ProductID: 5, Quantity: 2, TotalPrice: 200}))

	fx.cartAPI.EXPECT().ClearCart(ctx).Return(nil).Once()
	fx.cartAPI.EXPECT().FetchCart(ctx).Return(&entity.RemoteCart{}, nil).Once()

	require.NoError(t, fx.service.ClearCart(ctx))
	assert.Empty(t, fx.service.Cart().Items)
}

func TestSessionService_WishlistDuplicateAddIsTolerated(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	loginWithRemoteCart(t, fx, remoteCartWith())

	duplicate := &service.APIError{StatusCode: http.StatusConflict, Message: "Product already exists in wishlist"}
	fx.wishlistAPI.EXPECT().AddToWishlist(ctx, int64(3)).Return(duplicate).Once()
	fx.wishlistAPI.EXPECT().FetchWishlist(ctx).
		Return([]entity.RemoteWishlistItem{{ID: 9, Product: entity.Product{ID: 3}}}, nil).Once()

	require.NoError(t, fx.service.AddToWishlist(ctx, 3))
	assert.Equal(t, 1, fx.service.WishlistItemCount(ctx))
}

// A 401-class failure downgrades the session to guest; the caller still sees
// the error so it can prompt for a fresh login.
func TestSessionService_ExpiredTokenRevertsToGuest(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	loginWithRemoteCart(t, fx,
		remoteCartWith(entity.RemoteCartItem{ID: 42, ProductID: 5, Quantity: 1, TotalPrice: 100}))

	expired := errors.Wrap(service.ErrSessionExpired, "commerce api: 401: token expired")
	fx.cartAPI.EXPECT().RemoveItem(ctx, int64(42)).Return(expired).Once()
	// The optimistic rollback re-fetch fails the same way and is ignored.
	fx.cartAPI.EXPECT().FetchCart(ctx).Return(nil, expired).Once()

	err := fx.service.RemoveItem(ctx, usecase.LineRef{ItemID: 42})
	require.ErrorIs(t, err, service.ErrSessionExpired)

	view := fx.service.Cart()
	assert.True(t, view.Guest)
	assert.Empty(t, view.Items)
}

func TestSessionService_SubscriptionLifecycle(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	calls := 0
	unsubscribe := fx.service.SubscribeCart(func(usecase.CartView) { calls++ })
	assert.Equal(t, 1, calls) // immediate snapshot

	require.NoError(t, fx.service.AddToCart(ctx, usecase.AddToCartInput{ProductID: 5, Quantity: 1}))
	assert.Equal(t, 2, calls)

	unsubscribe()
	require.NoError(t, fx.service.AddToCart(ctx, usecase.AddToCartInput{ProductID: 6, Quantity: 1}))
	assert.Equal(t, 2, calls)
}

func TestSessionService_RefreshRepublishesGuestState(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	require.NoError(t, fx.service.AddToCart(ctx, usecase.AddToCartInput{ProductID: 5, Quantity: 1}))

	var last usecase.CartView
	unsubscribe := fx.service.SubscribeCart(func(v usecase.CartView) { last = v })
	defer unsubscribe()

	require.NoError(t, fx.service.Refresh(ctx))
	assert.True(t, last.Guest)
	require.Len(t, last.GuestItems, 1)
}
