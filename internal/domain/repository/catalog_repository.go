// Package repository defines the persistence and data-access ports the
// use cases depend on. Concrete implementations live under internal/infra.
package repository

import (
	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

var (
	// ErrProductNotFound is returned when a product id is not in the catalog.
	ErrProductNotFound = errors.New("product not found in catalog")
	// ErrCategoryNotFound is returned when a category id is not in the catalog.
	ErrCategoryNotFound = errors.New("category not found in catalog")
	// ErrVariantNotFound is returned when a variant id is not in the catalog.
	ErrVariantNotFound = errors.New("variant not found in catalog")
)

// CatalogRepository is a read-only view over the static product data export.
// The catalog is loaded once at startup and never mutated, so lookups take
// no context and return shared entities that callers must not modify.
type CatalogRepository interface {
	// ProductByID returns the product with the given id.
	ProductByID(id int64) (*entity.Product, error)

	// CategoryByID returns the category with the given id.
	CategoryByID(id int64) (*entity.Category, error)

	// CategoryOfProduct resolves the category a product belongs to.
	CategoryOfProduct(productID int64) (*entity.Category, error)

	// VariantByID returns the variant with the given id.
	VariantByID(id int64) (*entity.ProductVariant, error)

	// VariantsOfProduct returns all variants of a product, in export order.
	VariantsOfProduct(productID int64) []*entity.ProductVariant

	// ImagesOfProduct returns all images of a product, in export order.
	ImagesOfProduct(productID int64) []*entity.ProductImage

	// ImageForVariant picks the image tagged with the given variant,
	// falling back to the product's first image. Returns nil when the
	// product has no images at all.
	ImageForVariant(productID, variantID int64) *entity.ProductImage

	// UnitPrice resolves the effective price for a product or one of its
	// variants (variant price override falls back to the product price).
	UnitPrice(productID int64, variantID *int64) (float64, error)

	// ListProducts returns every product in export order.
	ListProducts() []*entity.Product

	// ListCategories returns every category in export order.
	ListCategories() []*entity.Category
}
