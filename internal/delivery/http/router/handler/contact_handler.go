package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"
)

// ContactHandler handles contact form submissions
type ContactHandler struct {
	logger  *slog.Logger
	contact usecase.ContactUsecase
}

// NewContactHandler creates a new ContactHandler instance
func NewContactHandler(logger *slog.Logger, contact usecase.ContactUsecase) *ContactHandler {
	return &ContactHandler{
		logger:  logger,
		contact: contact,
	}
}

// SubmitInquiry forwards a contact form submission to the shop owner.
func (h *ContactHandler) SubmitInquiry(c echo.Context) error {
	var req usecase.ContactInquiry
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_REQUEST", "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	inquiryID, err := h.contact.SubmitInquiry(c.Request().Context(), &req)
	if err != nil {
		return err
	}

	h.logger.Info("contact inquiry forwarded", slog.String("inquiryId", inquiryID))

	return c.JSON(http.StatusOK, map[string]string{"message": "Email sent successfully"})
}
