package repository

import "context"

// StockRepository reads and writes the per-item inventory counters.
// A nil stock value means the item is untracked (unlimited).
type StockRepository interface {
	// ProductStock returns the current stock for a product, or nil when
	// the product's inventory is untracked.
	ProductStock(ctx context.Context, productID int64) (*int64, error)

	// SetProductStock writes the stock counter for a product.
	SetProductStock(ctx context.Context, productID int64, stock int64) error

	// VariantStock returns the current stock for a variant, or nil when
	// the variant's inventory is untracked.
	VariantStock(ctx context.Context, variantID int64) (*int64, error)

	// SetVariantStock writes the stock counter for a variant.
	SetVariantStock(ctx context.Context, variantID int64, stock int64) error
}
