package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"
)

type guestWishlistService struct {
	store  repository.GuestStore
	logger *slog.Logger
	now    func() int64
}

// NewGuestWishlistService creates the guest wishlist manager over the local store.
func NewGuestWishlistService(store repository.GuestStore, logger *slog.Logger) usecase.GuestWishlistUsecase {
	return &guestWishlistService{
		store:  store,
		logger: logger,
		now:    func() int64 { return time.Now().UnixMilli() },
	}
}

func (s *guestWishlistService) Items(ctx context.Context) []entity.LocalWishlistItem {
	return s.store.ReadWishlistItems(ctx)
}

func (s *guestWishlistService) AddItem(ctx context.Context, productID int64) []entity.LocalWishlistItem {
	items := s.store.ReadWishlistItems(ctx)

	for i := range items {
		if items[i].ProductID == productID {
			// Already present: refresh the timestamp, never duplicate.
			items[i].Timestamp = s.now()
			s.persist(ctx, items)

			return items
		}
	}

	items = append(items, entity.LocalWishlistItem{ProductID: productID, Timestamp: s.now()})
	s.persist(ctx, items)

	return items
}

func (s *guestWishlistService) RemoveItem(ctx context.Context, productID int64) []entity.LocalWishlistItem {
	items := s.store.ReadWishlistItems(ctx)

	kept := items[:0]
	for _, item := range items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return items
	}

	s.persist(ctx, kept)

	return kept
}

func (s *guestWishlistService) Clear(ctx context.Context) error {
	return s.store.ClearWishlist(ctx)
}

func (s *guestWishlistService) ItemCount(ctx context.Context) int {
	return len(s.store.ReadWishlistItems(ctx))
}

func (s *guestWishlistService) persist(ctx context.Context, items []entity.LocalWishlistItem) {
	if err := s.store.SaveWishlistItems(ctx, items); err != nil {
		s.logger.Warn("guest wishlist not persisted", slog.Any("error", err))
	}
}
