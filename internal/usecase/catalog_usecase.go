package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// ProductDetail aggregates a product with its variants, images and category.
type ProductDetail struct {
	Product  entity.Product          `json:"product"`
	Category *entity.Category        `json:"category,omitempty"`
	Variants []entity.ProductVariant `json:"variants"`
	Images   []entity.ProductImage   `json:"images"`
}

// CatalogUsecase reads the static product catalog.
type CatalogUsecase interface {
	// ListProducts returns every product in the catalog.
	ListProducts(ctx context.Context) []entity.Product

	// GetProduct returns the full detail for one product. It fails with
	// ErrProductNotFound for an unknown id.
	GetProduct(ctx context.Context, productID int64) (*ProductDetail, error)

	// ListCategories returns every category.
	ListCategories(ctx context.Context) []entity.Category
}
