package impl

import (
	"context"
	"fmt"
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
)

type reconcileService struct {
	store    repository.GuestStore
	cart     service.CartAPI
	wishlist service.WishlistAPI
	logger   *slog.Logger
}

// NewReconcileService creates the engine that merges guest-accumulated local
// state into the authenticated account's remote state.
func NewReconcileService(
	store repository.GuestStore,
	cart service.CartAPI,
	wishlist service.WishlistAPI,
	logger *slog.Logger,
) usecase.ReconcileUsecase {
	return &reconcileService{
		store:    store,
		cart:     cart,
		wishlist: wishlist,
		logger:   logger,
	}
}

// MergeCart runs one cart reconciliation pass.
//
// For a local line whose identity triple already exists remotely, the remote
// quantity wins and no mutation is issued: server state is authoritative for
// lines the account already has, so guest actions for them are redundant
// rather than additive. Missing lines are added one by one; an individual
// failure is recorded and the pass continues. Local storage is cleared only
// when every line succeeded, which keeps a retried pass lossless and
// idempotent: already-synced lines are simply re-observed as existing.
func (s *reconcileService) MergeCart(ctx context.Context) *usecase.CartMergeReport {
	report := &usecase.CartMergeReport{}

	local := s.store.ReadCartItems(ctx)
	if len(local) == 0 {
		report.Success = true
		report.Cart = s.refetchCart(ctx)

		return report
	}

	remote, err := s.cart.FetchCart(ctx)
	if err != nil {
		// Remote unreachable: nothing synced, everything failed, local
		// state untouched so the caller can still render it.
		s.logger.Warn("cart merge aborted, remote unavailable", slog.Any("error", err))
		report.FailedCount = len(local)
		report.Errors = append(report.Errors, err.Error())

		return report
	}

	existing := make(map[entity.CartLineKey]struct{}, len(remote.Items))
	for _, item := range remote.Items {
		existing[item.Key()] = struct{}{}
	}

	for _, item := range local {
		if _, ok := existing[item.Key()]; ok {
			// Remote quantity wins for pre-existing lines.
			report.SyncedCount++

			continue
		}

		_, err := s.cart.AddItem(ctx, service.AddCartItemInput{
			ProductID:     item.ProductID,
			Quantity:      item.Quantity,
			SelectedSize:  item.SelectedSize,
			SelectedColor: item.SelectedColor,
		})
		if err != nil {
			report.FailedCount++
			report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", item.Key(), err))

			continue
		}
		report.SyncedCount++
	}

	report.Success = report.FailedCount == 0
	if report.Success {
		// Clearing only on full success means a retry never loses data.
		if err := s.store.ClearCart(ctx); err != nil {
			s.logger.Warn("merged cart not cleared from local store", slog.Any("error", err))
		}
	}

	report.Cart = s.refetchCart(ctx)
	s.logger.Info("cart merge finished",
		slog.Int("synced", report.SyncedCount),
		slog.Int("failed", report.FailedCount))

	return report
}

// MergeWishlist runs one wishlist reconciliation pass. Since wishlist lines
// have no quantity, an add is always attempted; the service rejecting a
// duplicate counts as success because the desired end state is already there.
func (s *reconcileService) MergeWishlist(ctx context.Context) *usecase.WishlistMergeReport {
	report := &usecase.WishlistMergeReport{}

	local := s.store.ReadWishlistItems(ctx)
	if len(local) == 0 {
		report.Success = true
		report.Wishlist = s.refetchWishlist(ctx)

		return report
	}

	for _, item := range local {
		err := s.wishlist.AddToWishlist(ctx, item.ProductID)
		if err != nil && !service.IsAlreadyExists(err) {
			report.FailedCount++
			report.Errors = append(report.Errors, fmt.Sprintf("product %d: %v", item.ProductID, err))

			continue
		}
		report.SyncedCount++
	}

	report.Success = report.FailedCount == 0
	if report.Success {
		if err := s.store.ClearWishlist(ctx); err != nil {
			s.logger.Warn("merged wishlist not cleared from local store", slog.Any("error", err))
		}
	}

	report.Wishlist = s.refetchWishlist(ctx)
	s.logger.Info("wishlist merge finished",
		slog.Int("synced", report.SyncedCount),
		slog.Int("failed", report.FailedCount))

	return report
}

// refetchCart fetches the authoritative cart after a pass, regardless of
// partial failure, so the caller can render the post-merge state.
func (s *reconcileService) refetchCart(ctx context.Context) *entity.RemoteCart {
	cart, err := s.cart.FetchCart(ctx)
	if err != nil {
		s.logger.Warn("post-merge cart fetch failed", slog.Any("error", err))

		return nil
	}

	return cart
}

func (s *reconcileService) refetchWishlist(ctx context.Context) []entity.RemoteWishlistItem {
	items, err := s.wishlist.FetchWishlist(ctx)
	if err != nil {
		s.logger.Warn("post-merge wishlist fetch failed", slog.Any("error", err))

		return nil
	}

	return items
}
