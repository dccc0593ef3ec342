package handler

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/usecase"
)

// WebhookHandler handles payment provider webhook deliveries
type WebhookHandler struct {
	logger      *slog.Logger
	fulfillment usecase.FulfillmentUsecase
}

// NewWebhookHandler creates a new WebhookHandler instance
func NewWebhookHandler(logger *slog.Logger, fulfillment usecase.FulfillmentUsecase) *WebhookHandler {
	return &WebhookHandler{
		logger:      logger,
		fulfillment: fulfillment,
	}
}

// HandleStripeEvent verifies and processes one webhook delivery. The raw
// body is needed unparsed for signature verification.
func (h *WebhookHandler) HandleStripeEvent(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Failed to read request body"})
	}

	signature := c.Request().Header.Get("Stripe-Signature")
	if err := h.fulfillment.HandleEvent(c.Request().Context(), payload, signature); err != nil {
		h.logger.Error("webhook processing failed", slog.Any("error", err))

		return writeBareError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]bool{"received": true})
}
