package impl

import (
	"context"
	"log/slog"
	"sync"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// ErrLineNotFound is returned when a mutation addresses a cart line the
// current view does not contain.
var ErrLineNotFound = errors.New("cart line not found")

// dataSource is the capability surface the session routes through. Exactly
// one variant is active at a time: guestSource over the local store, or
// remoteSource over the commerce client. The variant is selected once per
// authentication transition, so no call site branches on "is user present".
type dataSource interface {
	refresh(ctx context.Context) error
	addToCart(ctx context.Context, input usecase.AddToCartInput) error
	updateQuantity(ctx context.Context, ref usecase.LineRef, quantity int) error
	removeItem(ctx context.Context, ref usecase.LineRef) error
	clearCart(ctx context.Context) error
	addToWishlist(ctx context.Context, productID int64) error
	removeFromWishlist(ctx context.Context, productID int64) error
	cartCount(ctx context.Context) int
	wishlistCount(ctx context.Context) int
}

type sessionService struct {
	guestCart     usecase.GuestCartUsecase
	guestWishlist usecase.GuestWishlistUsecase
	cartAPI       service.CartAPI
	wishlistAPI   service.WishlistAPI
	reconciler    usecase.ReconcileUsecase
	store         repository.GuestStore
	validate      *validator.Validate
	logger        *slog.Logger

	mu        sync.Mutex
	auth      entity.AuthState
	source    dataSource
	cartView  usecase.CartView
	wishView  usecase.WishlistView
	cartSubs  map[int]func(usecase.CartView)
	wishSubs  map[int]func(usecase.WishlistView)
	nextSubID int
}

// NewSessionService creates the session-scoped cart/wishlist context. A new
// session starts as a guest routed at the local store.
func NewSessionService(
	store repository.GuestStore,
	guestCart usecase.GuestCartUsecase,
	guestWishlist usecase.GuestWishlistUsecase,
	cartAPI service.CartAPI,
	wishlistAPI service.WishlistAPI,
	reconciler usecase.ReconcileUsecase,
	logger *slog.Logger,
) usecase.SessionUsecase {
	s := &sessionService{
		guestCart:     guestCart,
		guestWishlist: guestWishlist,
		cartAPI:       cartAPI,
		wishlistAPI:   wishlistAPI,
		reconciler:    reconciler,
		store:         store,
		validate:      validator.New(validator.WithRequiredStructEnabled()),
		logger:        logger,
		cartSubs:      map[int]func(usecase.CartView){},
		wishSubs:      map[int]func(usecase.WishlistView){},
	}
	s.source = newGuestSource(guestCart, guestWishlist, s.publishCart, s.publishWishlist)
	s.cartView = usecase.CartView{Guest: true}
	s.wishView = usecase.WishlistView{Guest: true}

	return s
}

// OnAuthChange applies an authentication state transition. Only the
// guest-to-authenticated edge triggers reconciliation, and only once for that
// login: re-invoking with an unchanged state is a no-op, so rendering cycles
// that merely observe "still logged in" never re-run the merge.
func (s *sessionService) OnAuthChange(ctx context.Context, state entity.AuthState) (*usecase.MergeOutcome, error) {
	s.mu.Lock()
	prev := s.auth
	sameState := prev.Authenticated == state.Authenticated && prev.Subject == state.Subject
	if sameState {
		s.mu.Unlock()

		return nil, nil
	}
	s.auth = state
	s.mu.Unlock()

	if state.Guest() {
		// Logout: route back to the local store. No merge-back occurs; the
		// store is implicitly empty or fresh for the next guest.
		s.installGuestSource(ctx)
		s.logger.Info("session is now guest")

		return nil, nil
	}

	// Login edge (or account switch, which is a logout plus a login).
	s.logger.Info("session authenticated, reconciling guest state", slog.String("subject", state.Subject))
	s.setLoading(true)

	outcome := &usecase.MergeOutcome{
		Cart:     s.reconciler.MergeCart(ctx),
		Wishlist: s.reconciler.MergeWishlist(ctx),
	}

	remote := newRemoteSource(s.cartAPI, s.wishlistAPI, s.publishCart, s.publishWishlist)
	remote.seed(outcome.Cart.Cart, outcome.Wishlist.Wishlist)

	s.mu.Lock()
	s.source = remote
	s.mu.Unlock()

	if outcome.Cart.Cart == nil || outcome.Wishlist.Wishlist == nil {
		// The post-merge re-fetch failed; try once more so observers get an
		// authoritative view instead of a stale loading screen.
		if err := remote.refresh(ctx); err != nil {
			s.logger.Warn("post-login refresh failed", slog.Any("error", err))
		}
	}
	remote.publishAll()

	return outcome, nil
}

// Cart returns the current published cart view.
func (s *sessionService) Cart() usecase.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cartView
}

// Wishlist returns the current published wishlist view.
func (s *sessionService) Wishlist() usecase.WishlistView {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.wishView
}

// SubscribeCart registers an observer for cart snapshots. The observer is
// called immediately with the current view and on every subsequent publish.
func (s *sessionService) SubscribeCart(fn func(usecase.CartView)) func() {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.cartSubs[id] = fn
	current := s.cartView
	s.mu.Unlock()

	fn(current)

	return func() {
		s.mu.Lock()
		delete(s.cartSubs, id)
		s.mu.Unlock()
	}
}

// SubscribeWishlist registers an observer for wishlist snapshots.
func (s *sessionService) SubscribeWishlist(fn func(usecase.WishlistView)) func() {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.wishSubs[id] = fn
	current := s.wishView
	s.mu.Unlock()

	fn(current)

	return func() {
		s.mu.Lock()
		delete(s.wishSubs, id)
		s.mu.Unlock()
	}
}

func (s *sessionService) AddToCart(ctx context.Context, input usecase.AddToCartInput) error {
	if err := s.validate.Struct(input); err != nil {
		return errors.Wrap(err, "invalid add to cart input")
	}

	return s.route(ctx, func(src dataSource) error { return src.addToCart(ctx, input) })
}

func (s *sessionService) UpdateQuantity(ctx context.Context, ref usecase.LineRef, quantity int) error {
	return s.route(ctx, func(src dataSource) error { return src.updateQuantity(ctx, ref, quantity) })
}

func (s *sessionService) RemoveItem(ctx context.Context, ref usecase.LineRef) error {
	return s.route(ctx, func(src dataSource) error { return src.removeItem(ctx, ref) })
}

func (s *sessionService) ClearCart(ctx context.Context) error {
	return s.route(ctx, func(src dataSource) error { return src.clearCart(ctx) })
}

func (s *sessionService) AddToWishlist(ctx context.Context, productID int64) error {
	return s.route(ctx, func(src dataSource) error { return src.addToWishlist(ctx, productID) })
}

func (s *sessionService) RemoveFromWishlist(ctx context.Context, productID int64) error {
	return s.route(ctx, func(src dataSource) error { return src.removeFromWishlist(ctx, productID) })
}

func (s *sessionService) CartItemCount(ctx context.Context) int {
	return s.currentSource().cartCount(ctx)
}

func (s *sessionService) WishlistItemCount(ctx context.Context) int {
	return s.currentSource().wishlistCount(ctx)
}

func (s *sessionService) Refresh(ctx context.Context) error {
	return s.route(ctx, func(src dataSource) error { return src.refresh(ctx) })
}

// route runs an operation against the active source and downgrades the
// session when the remote service reports the token is no longer valid.
func (s *sessionService) route(ctx context.Context, op func(dataSource) error) error {
	err := op(s.currentSource())
	if err != nil && errors.Is(err, service.ErrSessionExpired) {
		s.expireSession(ctx)
	}

	return err
}

func (s *sessionService) currentSource() dataSource {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.source
}

// expireSession treats a 401-class failure as "logged out": in-memory remote
// state is dropped and the session routes back to the (empty) local store.
func (s *sessionService) expireSession(ctx context.Context) {
	s.mu.Lock()
	if s.auth.Guest() {
		s.mu.Unlock()

		return
	}
	s.auth = entity.AuthState{}
	s.mu.Unlock()

	s.logger.Warn("session expired, reverting to guest view")
	s.installGuestSource(ctx)
}

func (s *sessionService) installGuestSource(ctx context.Context) {
	guest := newGuestSource(s.guestCart, s.guestWishlist, s.publishCart, s.publishWishlist)

	s.mu.Lock()
	s.source = guest
	s.mu.Unlock()

	if err := guest.refresh(ctx); err != nil {
		s.logger.Warn("guest view refresh failed", slog.Any("error", err))
	}
}

// setLoading publishes loading placeholders so observers never see a mixed
// local/remote view while reconciliation is in flight.
func (s *sessionService) setLoading(loading bool) {
	s.publishCart(usecase.CartView{Loading: loading})
	s.publishWishlist(usecase.WishlistView{Loading: loading})
}

func (s *sessionService) publishCart(view usecase.CartView) {
	s.mu.Lock()
	s.cartView = view
	subs := make([]func(usecase.CartView), 0, len(s.cartSubs))
	for _, fn := range s.cartSubs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(view)
	}
}

func (s *sessionService) publishWishlist(view usecase.WishlistView) {
	s.mu.Lock()
	s.wishView = view
	subs := make([]func(usecase.WishlistView), 0, len(s.wishSubs))
	for _, fn := range s.wishSubs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(view)
	}
}
