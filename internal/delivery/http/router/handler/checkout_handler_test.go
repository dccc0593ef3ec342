package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockuc "storefront/internal/mocks/usecase"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func performJSON(e *echo.Echo, method, target, body string) (*httptest.ResponseRecorder, echo.Context) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return rec, e.NewContext(req, rec)
}

func TestCheckoutHandler_CreateSession(t *testing.T) {
	checkout := new(mockuc.MockCheckoutUsecase)
	checkout.On("CreateSession", mock.Anything, mock.Anything).
		Return(&service.CheckoutHandle{SessionID: "cs_test_123", URL: "https://pay.example.com"}, nil)

	h := NewCheckoutHandler(newDiscardLogger(), checkout)
	rec, c := performJSON(echo.New(), http.MethodPost, "/api/create-checkout-session",
		`{"items":[{"product_id":1,"name":"Tour Hat","price":24.99,"quantity":2}]}`)

	require.NoError(t, h.CreateSession(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"sessionId":"cs_test_123"}`, rec.Body.String())
}

func TestCheckoutHandler_EmptyCart(t *testing.T) {
	checkout := new(mockuc.MockCheckoutUsecase)
	checkout.On("CreateSession", mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrEmptyCart)

	h := NewCheckoutHandler(newDiscardLogger(), checkout)
	rec, c := performJSON(echo.New(), http.MethodPost, "/api/create-checkout-session", `{"items":[]}`)

	require.NoError(t, h.CreateSession(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"No items provided"}`, rec.Body.String())
}

func TestCheckoutHandler_GatewayFailure(t *testing.T) {
	checkout := new(mockuc.MockCheckoutUsecase)
	checkout.On("CreateSession", mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrCheckoutFailed)

	h := NewCheckoutHandler(newDiscardLogger(), checkout)
	rec, c := performJSON(echo.New(), http.MethodPost, "/api/create-checkout-session",
		`{"items":[{"product_id":1,"quantity":1}]}`)

	require.NoError(t, h.CreateSession(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to create checkout session"}`, rec.Body.String())
}
