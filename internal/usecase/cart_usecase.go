// Package usecase defines the application's inbound ports. Implementations
// live under impl; the delivery layer depends only on these interfaces.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CartUsecase manages the server-held shopping cart. Mutations always
// succeed against the in-memory state; persistence is best-effort and
// never blocks a mutation.
type CartUsecase interface {
	// Add merges the item into the cart. An existing line with the same
	// product and variant identity absorbs the quantity; otherwise a new
	// line is appended.
	Add(ctx context.Context, item entity.CartLineItem)

	// Remove deletes every line matching the product and variant identity.
	// Removing an absent line is a no-op.
	Remove(ctx context.Context, productID int64, variantID *int64)

	// UpdateQuantity sets the quantity of the matching line. Quantities
	// below one are clamped to one.
	UpdateQuantity(ctx context.Context, productID int64, variantID *int64, quantity int64)

	// Clear empties the cart.
	Clear(ctx context.Context)

	// Items returns a snapshot of the current cart lines.
	Items() []entity.CartLineItem

	// TotalItemCount returns the sum of line quantities.
	TotalItemCount() int64

	// TotalPrice returns the sum of line totals in decimal currency units.
	TotalPrice() float64

	// Subscribe registers a callback invoked after every cart change.
	Subscribe(fn func(items []entity.CartLineItem))
}
