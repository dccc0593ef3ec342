// Package repository provides test doubles for the repository ports.
package repository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"storefront/internal/domain/entity"
)

// MockCartStore mocks repository.CartStore.
type MockCartStore struct {
	mock.Mock
}

func (m *MockCartStore) Load(ctx context.Context) ([]entity.CartLineItem, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]entity.CartLineItem)

	return items, args.Error(1)
}

func (m *MockCartStore) Save(ctx context.Context, items []entity.CartLineItem) error {
	args := m.Called(ctx, items)

	return args.Error(0)
}

// MockCatalogRepository mocks repository.CatalogRepository.
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) ProductByID(id int64) (*entity.Product, error) {
	args := m.Called(id)
	product, _ := args.Get(0).(*entity.Product)

	return product, args.Error(1)
}

func (m *MockCatalogRepository) CategoryByID(id int64) (*entity.Category, error) {
	args := m.Called(id)
	category, _ := args.Get(0).(*entity.Category)

	return category, args.Error(1)
}

func (m *MockCatalogRepository) CategoryOfProduct(productID int64) (*entity.Category, error) {
	args := m.Called(productID)
	category, _ := args.Get(0).(*entity.Category)

	return category, args.Error(1)
}

func (m *MockCatalogRepository) VariantByID(id int64) (*entity.ProductVariant, error) {
	args := m.Called(id)
	variant, _ := args.Get(0).(*entity.ProductVariant)

	return variant, args.Error(1)
}

func (m *MockCatalogRepository) VariantsOfProduct(productID int64) []*entity.ProductVariant {
	args := m.Called(productID)
	variants, _ := args.Get(0).([]*entity.ProductVariant)

	return variants
}

func (m *MockCatalogRepository) ImagesOfProduct(productID int64) []*entity.ProductImage {
	args := m.Called(productID)
	images, _ := args.Get(0).([]*entity.ProductImage)

	return images
}

func (m *MockCatalogRepository) ImageForVariant(productID, variantID int64) *entity.ProductImage {
	args := m.Called(productID, variantID)
	image, _ := args.Get(0).(*entity.ProductImage)

	return image
}

func (m *MockCatalogRepository) UnitPrice(productID int64, variantID *int64) (float64, error) {
	args := m.Called(productID, variantID)

	return args.Get(0).(float64), args.Error(1)
}

func (m *MockCatalogRepository) ListProducts() []*entity.Product {
	args := m.Called()
	products, _ := args.Get(0).([]*entity.Product)

	return products
}

func (m *MockCatalogRepository) ListCategories() []*entity.Category {
	args := m.Called()
	categories, _ := args.Get(0).([]*entity.Category)

	return categories
}

// MockStockRepository mocks repository.StockRepository.
type MockStockRepository struct {
	mock.Mock
}

func (m *MockStockRepository) ProductStock(ctx context.Context, productID int64) (*int64, error) {
	args := m.Called(ctx, productID)
	stock, _ := args.Get(0).(*int64)

	return stock, args.Error(1)
}

func (m *MockStockRepository) SetProductStock(ctx context.Context, productID, stock int64) error {
	args := m.Called(ctx, productID, stock)

	return args.Error(0)
}

func (m *MockStockRepository) VariantStock(ctx context.Context, variantID int64) (*int64, error) {
	args := m.Called(ctx, variantID)
	stock, _ := args.Get(0).(*int64)

	return stock, args.Error(1)
}

func (m *MockStockRepository) SetVariantStock(ctx context.Context, variantID, stock int64) error {
	args := m.Called(ctx, variantID, stock)

	return args.Error(0)
}

// MockFulfillmentLedger mocks repository.FulfillmentLedger.
type MockFulfillmentLedger struct {
	mock.Mock
}

func (m *MockFulfillmentLedger) Claim(ctx context.Context, sessionID string) (bool, error) {
	args := m.Called(ctx, sessionID)

	return args.Bool(0), args.Error(1)
}
