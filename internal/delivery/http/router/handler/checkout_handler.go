// Package handler contains the HTTP request handlers.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"
)

// CheckoutHandler handles checkout session creation
type CheckoutHandler struct {
	logger   *slog.Logger
	checkout usecase.CheckoutUsecase
}

// NewCheckoutHandler creates a new CheckoutHandler instance
func NewCheckoutHandler(logger *slog.Logger, checkout usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{
		logger:   logger,
		checkout: checkout,
	}
}

type createCheckoutSessionRequest struct {
	Items []entity.CartLineItem `json:"items"`
}

// CreateSession creates a hosted checkout session from the submitted cart.
// The response shape matches what the storefront client expects: a bare
// sessionId on success, a bare error message otherwise.
func (h *CheckoutHandler) CreateSession(c echo.Context) error {
	var req createCheckoutSessionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	handle, err := h.checkout.CreateSession(c.Request().Context(), req.Items)
	if err != nil {
		return writeBareError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"sessionId": handle.SessionID})
}

// writeBareError renders the client-contract error shape {"error": message}
// with the status carried by the typed error.
func writeBareError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return c.JSON(appErr.HTTPCode(), map[string]string{"error": appErr.Message()})
	}

	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
