// Package impl provides the concrete implementations of the usecase layer.
package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"
)

type guestCartService struct {
	store  repository.GuestStore
	logger *slog.Logger
	now    func() int64 // milliseconds since epoch
}

// NewGuestCartService creates the guest cart manager over the local store.
func NewGuestCartService(store repository.GuestStore, logger *slog.Logger) usecase.GuestCartUsecase {
	return &guestCartService{
		store:  store,
		logger: logger,
		now:    func() int64 { return time.Now().UnixMilli() },
	}
}

func (s *guestCartService) Items(ctx context.Context) []entity.LocalCartItem {
	return s.store.ReadCartItems(ctx)
}

func (s *guestCartService) AddItem(ctx context.Context, input usecase.AddToCartInput) []entity.LocalCartItem {
	items := s.store.ReadCartItems(ctx)
	key := input.Key()

	merged := false
	for i := range items {
		if items[i].Key() == key {
			items[i].Quantity += input.Quantity
			items[i].Timestamp = s.now()
			merged = true

			break
		}
	}

	if !merged {
		items = append(items, entity.LocalCartItem{
			ProductID:     input.ProductID,
			Quantity:      input.Quantity,
			SelectedSize:  input.SelectedSize,
			SelectedColor: input.SelectedColor,
			Timestamp:     s.now(),
		})
	}

	s.persist(ctx, items)

	return items
}

func (s *guestCartService) UpdateQuantity(ctx context.Context, key entity.CartLineKey, quantity int) []entity.LocalCartItem {
	// Driving a line to zero or below removes it instead.
	if quantity <= 0 {
		return s.RemoveItem(ctx, key)
	}

	items := s.store.ReadCartItems(ctx)
	for i := range items {
		if items[i].Key() != key {
			continue
		}
		items[i].Quantity = quantity
		items[i].Timestamp = s.now()
		s.persist(ctx, items)

		break
	}

	// Missing key is a no-op, never a create.
	return items
}

func (s *guestCartService) RemoveItem(ctx context.Context, key entity.CartLineKey) []entity.LocalCartItem {
	items := s.store.ReadCartItems(ctx)

	kept := items[:0]
	for _, item := range items {
		if item.Key() != key {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return items
	}

	s.persist(ctx, kept)

	return kept
}

func (s *guestCartService) Clear(ctx context.Context) error {
	return s.store.ClearCart(ctx)
}

func (s *guestCartService) ItemCount(ctx context.Context) int {
	// Always derived from storage, so the badge cannot drift from the data.
	count := 0
	for _, item := range s.store.ReadCartItems(ctx) {
		count += item.Quantity
	}

	return count
}

// persist writes the collection back. A write failure only means the
// in-memory copy is not durable, so it is logged and swallowed.
func (s *guestCartService) persist(ctx context.Context, items []entity.LocalCartItem) {
	if err := s.store.SaveCartItems(ctx, items); err != nil {
		s.logger.Warn("guest cart not persisted", slog.Any("error", err))
	}
}
