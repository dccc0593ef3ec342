package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront/internal/delivery/http/validator"
	mockuc "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"
)

func newValidatingEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func TestStockHandler_AllSucceed(t *testing.T) {
	stock := new(mockuc.MockStockUsecase)
	stock.On("AdjustForPurchase", mock.Anything, mock.Anything).
		Return([]usecase.StockAdjustmentResult{
			{ProductID: 1, Success: true},
			{ProductID: 2, Success: true},
		}, true)

	h := NewStockHandler(newDiscardLogger(), stock)
	rec, c := performJSON(newValidatingEcho(), http.MethodPost, "/api/update-stock",
		`{"items":[{"id":1,"quantity":2},{"id":2,"quantity":1}]}`)

	require.NoError(t, h.UpdateStock(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp updateStockResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Updates, 2)
	assert.Empty(t, resp.Message)
}

func TestStockHandler_PartialFailure(t *testing.T) {
	stock := new(mockuc.MockStockUsecase)
	stock.On("AdjustForPurchase", mock.Anything, mock.Anything).
		Return([]usecase.StockAdjustmentResult{
			{ProductID: 1, Success: false, Error: "database unavailable"},
			{ProductID: 2, Success: true},
		}, false)

	h := NewStockHandler(newDiscardLogger(), stock)
	rec, c := performJSON(newValidatingEcho(), http.MethodPost, "/api/update-stock",
		`{"items":[{"id":1,"quantity":1},{"id":2,"quantity":1}]}`)

	require.NoError(t, h.UpdateStock(c))
	// Partial failure still answers 200 with per-item outcomes.
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp updateStockResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Some stock updates failed", resp.Message)
	assert.False(t, resp.Updates[0].Success)
	assert.True(t, resp.Updates[1].Success)
}

func TestStockHandler_RejectsInvalidQuantity(t *testing.T) {
	stock := new(mockuc.MockStockUsecase)

	h := NewStockHandler(newDiscardLogger(), stock)
	rec, c := performJSON(newValidatingEcho(), http.MethodPost, "/api/update-stock",
		`{"items":[{"id":1,"quantity":0}]}`)

	require.NoError(t, h.UpdateStock(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	stock.AssertNotCalled(t, "AdjustForPurchase", mock.Anything, mock.Anything)
}

func TestStockHandler_RejectsEmptyItems(t *testing.T) {
	stock := new(mockuc.MockStockUsecase)

	h := NewStockHandler(newDiscardLogger(), stock)
	rec, c := performJSON(newValidatingEcho(), http.MethodPost, "/api/update-stock", `{"items":[]}`)

	require.NoError(t, h.UpdateStock(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
