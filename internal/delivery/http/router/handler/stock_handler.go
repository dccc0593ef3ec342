package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/usecase"
)

// StockHandler handles post-purchase stock adjustments
type StockHandler struct {
	logger *slog.Logger
	stock  usecase.StockUsecase
}

// NewStockHandler creates a new StockHandler instance
func NewStockHandler(logger *slog.Logger, stock usecase.StockUsecase) *StockHandler {
	return &StockHandler{
		logger: logger,
		stock:  stock,
	}
}

type updateStockRequest struct {
	Items []usecase.StockAdjustment `json:"items" validate:"required,min=1,dive"`
}

type updateStockResponse struct {
	Success bool                            `json:"success"`
	Updates []usecase.StockAdjustmentResult `json:"updates"`
	Message string                          `json:"message,omitempty"`
}

// UpdateStock decrements inventory for the submitted purchased items. Items
// are processed independently; the response reports per-item outcomes.
func (h *StockHandler) UpdateStock(c echo.Context) error {
	var req updateStockRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return writeBareError(c, err)
	}

	results, allOK := h.stock.AdjustForPurchase(c.Request().Context(), req.Items)

	resp := updateStockResponse{
		Success: allOK,
		Updates: results,
	}
	if !allOK {
		resp.Message = "Some stock updates failed"
	}

	return c.JSON(http.StatusOK, resp)
}
