package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// CheckoutUsecase turns a cart snapshot into a hosted checkout session.
type CheckoutUsecase interface {
	// CreateSession prices the items, computes the shipping tier, and
	// creates a provider session. It fails with ErrEmptyCart when no
	// items are given.
	CreateSession(ctx context.Context, items []entity.CartLineItem) (*service.CheckoutHandle, error)
}
