// Package impl provides the concrete use case services.
package impl

import (
	"context"
	"log/slog"
	"sync"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"
)

type cartService struct {
	logger *slog.Logger
	store  repository.CartStore

	mu          sync.Mutex
	items       []entity.CartLineItem
	subscribers []func(items []entity.CartLineItem)
}

// NewCartUsecase creates the cart service and primes it from the persisted
// snapshot. A load failure starts with an empty cart rather than failing
// startup.
func NewCartUsecase(ctx context.Context, logger *slog.Logger, store repository.CartStore) usecase.CartUsecase {
	svc := &cartService{
		logger: logger,
		store:  store,
	}

	items, err := store.Load(ctx)
	if err != nil {
		logger.Warn("load persisted cart failed, starting empty", slog.Any("error", err))
	} else {
		svc.items = items
	}

	return svc
}

func (s *cartService) Add(ctx context.Context, item entity.CartLineItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	s.mu.Lock()
	merged := false
	for i := range s.items {
		if s.items[i].Matches(item.ProductID, item.VariantID) {
			s.items[i].Quantity += item.Quantity
			merged = true

			break
		}
	}
	if !merged {
		s.items = append(s.items, item)
	}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.persistAndNotify(ctx, snapshot)
}

func (s *cartService) Remove(ctx context.Context, productID int64, variantID *int64) {
	s.mu.Lock()
	kept := s.items[:0]
	for _, item := range s.items {
		if !item.Matches(productID, variantID) {
			kept = append(kept, item)
		}
	}
	s.items = kept
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.persistAndNotify(ctx, snapshot)
}

func (s *cartService) UpdateQuantity(ctx context.Context, productID int64, variantID *int64, quantity int64) {
	// A quantity below one keeps the line with a single unit. Removal is
	// an explicit operation, never a side effect of a quantity update.
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].Matches(productID, variantID) {
			s.items[i].Quantity = quantity

			break
		}
	}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.persistAndNotify(ctx, snapshot)
}

func (s *cartService) Clear(ctx context.Context) {
	s.mu.Lock()
	s.items = nil
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.persistAndNotify(ctx, snapshot)
}

func (s *cartService) Items() []entity.CartLineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

func (s *cartService) TotalItemCount() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	for i := range s.items {
		count += s.items[i].Quantity
	}

	return count
}

func (s *cartService) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for i := range s.items {
		total += s.items[i].LineTotal()
	}

	return total
}

func (s *cartService) Subscribe(fn func(items []entity.CartLineItem)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.subscribers = append(s.subscribers, fn)
}

func (s *cartService) snapshotLocked() []entity.CartLineItem {
	snapshot := make([]entity.CartLineItem, len(s.items))
	copy(snapshot, s.items)

	return snapshot
}

// persistAndNotify mirrors the cart to storage and fans the change out to
// subscribers. Persistence failures are logged, never surfaced; the
// in-memory cart stays authoritative.
func (s *cartService) persistAndNotify(ctx context.Context, snapshot []entity.CartLineItem) {
	if err := s.store.Save(ctx, snapshot); err != nil {
		s.logger.Warn("persist cart failed", slog.Any("error", err))
	}

	s.mu.Lock()
	subscribers := make([]func(items []entity.CartLineItem), len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.mu.Unlock()

	for _, fn := range subscribers {
		fn(snapshot)
	}
}
