package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/repository"
	"storefront/internal/usecase"
)

type stockService struct {
	logger *slog.Logger
	stocks repository.StockRepository
}

// NewStockUsecase creates the stock service.
func NewStockUsecase(logger *slog.Logger, stocks repository.StockRepository) usecase.StockUsecase {
	return &stockService{
		logger: logger,
		stocks: stocks,
	}
}

func (s *stockService) AdjustForPurchase(ctx context.Context, items []usecase.StockAdjustment) ([]usecase.StockAdjustmentResult, bool) {
	results := make([]usecase.StockAdjustmentResult, 0, len(items))
	allOK := true

	// Each item is adjusted independently so one bad item never blocks the
	// rest of the purchase.
	for _, item := range items {
		result := usecase.StockAdjustmentResult{
			ProductID: item.ProductID,
			VariantID: item.VariantID,
			Success:   true,
		}

		if err := s.adjustOne(ctx, item); err != nil {
			result.Success = false
			result.Error = err.Error()
			allOK = false
		}

		results = append(results, result)
	}

	return results, allOK
}

func (s *stockService) adjustOne(ctx context.Context, item usecase.StockAdjustment) error {
	var (
		current *int64
		err     error
	)
	if item.VariantID != nil {
		current, err = s.stocks.VariantStock(ctx, *item.VariantID)
	} else {
		current, err = s.stocks.ProductStock(ctx, item.ProductID)
	}
	if err != nil {
		return err
	}

	// Untracked inventory never changes.
	if current == nil {
		return nil
	}

	// Clamp at zero: an oversold counter stays at zero instead of going
	// negative.
	next := *current - item.Quantity
	if next < 0 {
		next = 0
	}

	if item.VariantID != nil {
		err = s.stocks.SetVariantStock(ctx, *item.VariantID, next)
	} else {
		err = s.stocks.SetProductStock(ctx, item.ProductID, next)
	}
	if err != nil {
		return err
	}

	s.logger.Info("stock adjusted",
		slog.Int64("product_id", item.ProductID),
		slog.Int64("from", *current),
		slog.Int64("to", next))

	return nil
}
