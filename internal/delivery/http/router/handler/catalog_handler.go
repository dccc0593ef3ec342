package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"
)

// CatalogHandler serves the read-only product catalog
type CatalogHandler struct {
	logger  *slog.Logger
	catalog usecase.CatalogUsecase
}

// NewCatalogHandler creates a new CatalogHandler instance
func NewCatalogHandler(logger *slog.Logger, catalog usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{
		logger:  logger,
		catalog: catalog,
	}
}

// ListProducts returns every product in the catalog.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.catalog.ListProducts(c.Request().Context()), "")
}

// GetProduct returns one product with its variants, images and category.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_REQUEST", "product id must be an integer")
	}

	detail, err := h.catalog.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, detail, "")
}

// ListCategories returns every category.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.catalog.ListCategories(c.Request().Context()), "")
}
