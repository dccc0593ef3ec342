package usecase

import "context"

// StockAdjustment is one purchased line to decrement.
type StockAdjustment struct {
	ProductID int64  `json:"id" validate:"required"`
	VariantID *int64 `json:"variantId,omitempty"`
	Quantity  int64  `json:"quantity" validate:"required,min=1"`
}

// StockAdjustmentResult reports the outcome for one adjustment.
type StockAdjustmentResult struct {
	ProductID int64  `json:"itemId"`
	VariantID *int64 `json:"variantId,omitempty"`
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
}

// StockUsecase decrements tracked stock after a purchase.
type StockUsecase interface {
	// AdjustForPurchase processes each adjustment independently and
	// returns per-item results plus whether every item succeeded. One
	// failing item never aborts the others.
	AdjustForPurchase(ctx context.Context, items []StockAdjustment) ([]StockAdjustmentResult, bool)
}
