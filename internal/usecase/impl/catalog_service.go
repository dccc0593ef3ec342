package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"
)

type catalogService struct {
	logger  *slog.Logger
	catalog repository.CatalogRepository
}

// NewCatalogUsecase creates the catalog read service.
func NewCatalogUsecase(logger *slog.Logger, catalog repository.CatalogRepository) usecase.CatalogUsecase {
	return &catalogService{
		logger:  logger,
		catalog: catalog,
	}
}

func (s *catalogService) ListProducts(_ context.Context) []entity.Product {
	products := s.catalog.ListProducts()
	out := make([]entity.Product, 0, len(products))
	for _, product := range products {
		out = append(out, *product)
	}

	return out
}

func (s *catalogService) GetProduct(_ context.Context, productID int64) (*usecase.ProductDetail, error) {
	product, err := s.catalog.ProductByID(productID)
	if err != nil {
		return nil, domainerrors.ErrProductNotFound
	}

	detail := &usecase.ProductDetail{
		Product:  *product,
		Variants: make([]entity.ProductVariant, 0),
		Images:   make([]entity.ProductImage, 0),
	}

	if category, err := s.catalog.CategoryOfProduct(productID); err == nil {
		detail.Category = category
	}
	for _, variant := range s.catalog.VariantsOfProduct(productID) {
		detail.Variants = append(detail.Variants, *variant)
	}
	for _, image := range s.catalog.ImagesOfProduct(productID) {
		detail.Images = append(detail.Images, *image)
	}

	return detail, nil
}

func (s *catalogService) ListCategories(_ context.Context) []entity.Category {
	categories := s.catalog.ListCategories()
	out := make([]entity.Category, 0, len(categories))
	for _, category := range categories {
		out = append(out, *category)
	}

	return out
}
