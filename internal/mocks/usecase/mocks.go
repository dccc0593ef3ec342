// Package usecase provides test doubles for the inbound ports.
package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
)

// MockCheckoutUsecase mocks usecase.CheckoutUsecase.
type MockCheckoutUsecase struct {
	mock.Mock
}

func (m *MockCheckoutUsecase) CreateSession(ctx context.Context, items []entity.CartLineItem) (*service.CheckoutHandle, error) {
	args := m.Called(ctx, items)
	handle, _ := args.Get(0).(*service.CheckoutHandle)

	return handle, args.Error(1)
}

// MockFulfillmentUsecase mocks usecase.FulfillmentUsecase.
type MockFulfillmentUsecase struct {
	mock.Mock
}

func (m *MockFulfillmentUsecase) HandleEvent(ctx context.Context, payload []byte, signature string) error {
	args := m.Called(ctx, payload, signature)

	return args.Error(0)
}

// MockCatalogUsecase mocks usecase.CatalogUsecase.
type MockCatalogUsecase struct {
	mock.Mock
}

func (m *MockCatalogUsecase) ListProducts(ctx context.Context) []entity.Product {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]entity.Product)

	return products
}

func (m *MockCatalogUsecase) GetProduct(ctx context.Context, productID int64) (*usecase.ProductDetail, error) {
	args := m.Called(ctx, productID)
	detail, _ := args.Get(0).(*usecase.ProductDetail)

	return detail, args.Error(1)
}

func (m *MockCatalogUsecase) ListCategories(ctx context.Context) []entity.Category {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]entity.Category)

	return categories
}

// MockStockUsecase mocks usecase.StockUsecase.
type MockStockUsecase struct {
	mock.Mock
}

func (m *MockStockUsecase) AdjustForPurchase(ctx context.Context, items []usecase.StockAdjustment) ([]usecase.StockAdjustmentResult, bool) {
	args := m.Called(ctx, items)
	results, _ := args.Get(0).([]usecase.StockAdjustmentResult)

	return results, args.Bool(1)
}
