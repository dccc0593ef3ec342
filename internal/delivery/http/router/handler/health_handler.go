package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/delivery/http/response"
)

// HealthCheck reports process liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"status": "ok",
	}, "")
}
