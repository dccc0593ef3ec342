package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"
)

// CartHandler handles the server-held shopping cart
type CartHandler struct {
	logger *slog.Logger
	cart   usecase.CartUsecase
}

// NewCartHandler creates a new CartHandler instance
func NewCartHandler(logger *slog.Logger, cart usecase.CartUsecase) *CartHandler {
	return &CartHandler{
		logger: logger,
		cart:   cart,
	}
}

type cartView struct {
	Items      []entity.CartLineItem `json:"items"`
	ItemCount  int64                 `json:"itemCount"`
	TotalPrice float64               `json:"totalPrice"`
}

type updateCartItemRequest struct {
	ProductID int64  `json:"productId" validate:"required"`
	VariantID *int64 `json:"variantId,omitempty"`
	Quantity  int64  `json:"quantity" validate:"required"`
}

// GetCart returns the current cart contents and totals.
func (h *CartHandler) GetCart(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.view(), "")
}

// AddItem adds a line to the cart, merging into an existing line with the
// same product and variant.
func (h *CartHandler) AddItem(c echo.Context) error {
	var item entity.CartLineItem
	if err := c.Bind(&item); err != nil {
		return response.BadRequest(c, "INVALID_REQUEST", "Invalid request body")
	}
	if item.ProductID == 0 {
		return response.BadRequest(c, "INVALID_REQUEST", "product_id is required")
	}

	h.cart.Add(c.Request().Context(), item)

	return response.Success(c, http.StatusOK, h.view(), "Item added to cart")
}

// UpdateItem sets the quantity of a cart line.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	var req updateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_REQUEST", "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	h.cart.UpdateQuantity(c.Request().Context(), req.ProductID, req.VariantID, req.Quantity)

	return response.Success(c, http.StatusOK, h.view(), "Cart updated")
}

// RemoveItem deletes a cart line identified by query parameters, since
// DELETE requests carry no body.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	productID, err := strconv.ParseInt(c.QueryParam("productId"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_REQUEST", "productId query parameter is required")
	}

	var variantID *int64
	if raw := c.QueryParam("variantId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_REQUEST", "variantId must be an integer")
		}
		variantID = &id
	}

	h.cart.Remove(c.Request().Context(), productID, variantID)

	return response.Success(c, http.StatusOK, h.view(), "Item removed from cart")
}

// ClearCart empties the cart.
func (h *CartHandler) ClearCart(c echo.Context) error {
	h.cart.Clear(c.Request().Context())

	return response.Success(c, http.StatusOK, h.view(), "Cart cleared")
}

func (h *CartHandler) view() cartView {
	items := h.cart.Items()
	if items == nil {
		items = []entity.CartLineItem{}
	}

	return cartView{
		Items:      items,
		ItemCount:  h.cart.TotalItemCount(),
		TotalPrice: h.cart.TotalPrice(),
	}
}
