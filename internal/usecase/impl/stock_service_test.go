package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	mockrepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"
)

func TestStockService_DecrementsTrackedProduct(t *testing.T) {
	stocks := new(mockrepo.MockStockRepository)
	stocks.On("ProductStock", mock.Anything, int64(1)).Return(int64Ptr(10), nil)
	stocks.On("SetProductStock", mock.Anything, int64(1), int64(7)).Return(nil)

	svc := NewStockUsecase(newDiscardLogger(), stocks)
	results, allOK := svc.AdjustForPurchase(context.Background(), []usecase.StockAdjustment{
		{ProductID: 1, Quantity: 3},
	})

	assert.True(t, allOK)
	require.Len(t, results, 1)
	assert.True(t, results[0].Success)
	stocks.AssertExpectations(t)
}

func TestStockService_DecrementsVariantWhenPresent(t *testing.T) {
	stocks := new(mockrepo.MockStockRepository)
	stocks.On("VariantStock", mock.Anything, int64(10)).Return(int64Ptr(5), nil)
	stocks.On("SetVariantStock", mock.Anything, int64(10), int64(4)).Return(nil)

	svc := NewStockUsecase(newDiscardLogger(), stocks)
	_, allOK := svc.AdjustForPurchase(context.Background(), []usecase.StockAdjustment{
		{ProductID: 1, VariantID: int64Ptr(10), Quantity: 1},
	})

	assert.True(t, allOK)
	stocks.AssertNotCalled(t, "ProductStock", mock.Anything, mock.Anything)
}

func TestStockService_ClampsAtZero(t *testing.T) {
	stocks := new(mockrepo.MockStockRepository)
	stocks.On("ProductStock", mock.Anything, int64(1)).Return(int64Ptr(2), nil)
	stocks.On("SetProductStock", mock.Anything, int64(1), int64(0)).Return(nil)

	svc := NewStockUsecase(newDiscardLogger(), stocks)
	results, allOK := svc.AdjustForPurchase(context.Background(), []usecase.StockAdjustment{
		{ProductID: 1, Quantity: 5},
	})

	assert.True(t, allOK)
	assert.True(t, results[0].Success)
	stocks.AssertExpectations(t)
}

func TestStockService_UntrackedIsNoOp(t *testing.T) {
	stocks := new(mockrepo.MockStockRepository)
	stocks.On("ProductStock", mock.Anything, int64(9)).Return(nil, nil)

	svc := NewStockUsecase(newDiscardLogger(), stocks)
	results, allOK := svc.AdjustForPurchase(context.Background(), []usecase.StockAdjustment{
		{ProductID: 9, Quantity: 4},
	})

	assert.True(t, allOK)
	assert.True(t, results[0].Success)
	stocks.AssertNotCalled(t, "SetProductStock", mock.Anything, mock.Anything, mock.Anything)
}

func TestStockService_OneFailureDoesNotAbortOthers(t *testing.T) {
	stocks := new(mockrepo.MockStockRepository)
	stocks.On("ProductStock", mock.Anything, int64(1)).Return(nil, assert.AnError)
	stocks.On("ProductStock", mock.Anything, int64(2)).Return(int64Ptr(3), nil)
	stocks.On("SetProductStock", mock.Anything, int64(2), int64(2)).Return(nil)

	svc := NewStockUsecase(newDiscardLogger(), stocks)
	results, allOK := svc.AdjustForPurchase(context.Background(), []usecase.StockAdjustment{
		{ProductID: 1, Quantity: 1},
		{ProductID: 2, Quantity: 1},
	})

	assert.False(t, allOK)
	require.Len(t, results, 2)
	assert.False(t, results[0].Success)
	assert.NotEmpty(t, results[0].Error)
	assert.True(t, results[1].Success)
}
