// Package catalog loads the static product data export into an in-memory
// read-only repository.
package catalog

import (
	"encoding/json"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// export mirrors the on-disk layout of the data export.
type export struct {
	Categories []*entity.Category       `json:"categories"`
	Products   []*entity.Product        `json:"products"`
	Variants   []*entity.ProductVariant `json:"variants"`
	Images     []*entity.ProductImage   `json:"images"`
}

type catalogRepository struct {
	products   []*entity.Product
	categories []*entity.Category

	productsByID   map[int64]*entity.Product
	categoriesByID map[int64]*entity.Category
	variantsByID   map[int64]*entity.ProductVariant
	variantsByProd map[int64][]*entity.ProductVariant
	imagesByProd   map[int64][]*entity.ProductImage
}

// New loads the catalog file and builds the lookup indexes. A broken export
// fails startup; the storefront is useless without its catalog.
func New(params Params) (repository.CatalogRepository, error) {
	raw, err := os.ReadFile(params.Config.Catalog.Path)
	if err != nil {
		return nil, errors.Wrap(err, "read catalog file")
	}

	var data export
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, errors.Wrap(err, "parse catalog file")
	}

	repo, err := build(&data)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("catalog loaded",
		slog.String("path", params.Config.Catalog.Path),
		slog.Int("products", len(repo.products)),
		slog.Int("categories", len(repo.categories)),
		slog.Int("variants", len(repo.variantsByID)))

	return repo, nil
}

func build(data *export) (*catalogRepository, error) {
	repo := &catalogRepository{
		products:       data.Products,
		categories:     data.Categories,
		productsByID:   make(map[int64]*entity.Product, len(data.Products)),
		categoriesByID: make(map[int64]*entity.Category, len(data.Categories)),
		variantsByID:   make(map[int64]*entity.ProductVariant, len(data.Variants)),
		variantsByProd: make(map[int64][]*entity.ProductVariant),
		imagesByProd:   make(map[int64][]*entity.ProductImage),
	}

	for _, category := range data.Categories {
		if _, exists := repo.categoriesByID[category.ID]; exists {
			return nil, errors.Errorf("duplicate category id %d", category.ID)
		}
		repo.categoriesByID[category.ID] = category
	}

	for _, product := range data.Products {
		if _, exists := repo.productsByID[product.ID]; exists {
			return nil, errors.Errorf("duplicate product id %d", product.ID)
		}
		if _, ok := repo.categoriesByID[product.CategoryID]; !ok {
			return nil, errors.Errorf("product %d references unknown category %d", product.ID, product.CategoryID)
		}
		if product.Price <= 0 {
			return nil, errors.Errorf("product %d has non-positive price %g", product.ID, product.Price)
		}
		repo.productsByID[product.ID] = product
	}

	for _, variant := range data.Variants {
		if _, exists := repo.variantsByID[variant.ID]; exists {
			return nil, errors.Errorf("duplicate variant id %d", variant.ID)
		}
		if _, ok := repo.productsByID[variant.ProductID]; !ok {
			return nil, errors.Errorf("variant %d references unknown product %d", variant.ID, variant.ProductID)
		}
		if variant.Price != nil && *variant.Price <= 0 {
			return nil, errors.Errorf("variant %d has non-positive price override %g", variant.ID, *variant.Price)
		}
		repo.variantsByID[variant.ID] = variant
		repo.variantsByProd[variant.ProductID] = append(repo.variantsByProd[variant.ProductID], variant)
	}

	for _, image := range data.Images {
		if _, ok := repo.productsByID[image.ProductID]; !ok {
			return nil, errors.Errorf("image %d references unknown product %d", image.ID, image.ProductID)
		}
		for _, variantID := range image.VariantIDs {
			if _, ok := repo.variantsByID[variantID]; !ok {
				return nil, errors.Errorf("image %d references unknown variant %d", image.ID, variantID)
			}
		}
		repo.imagesByProd[image.ProductID] = append(repo.imagesByProd[image.ProductID], image)
	}

	return repo, nil
}

func (r *catalogRepository) ProductByID(id int64) (*entity.Product, error) {
	product, ok := r.productsByID[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}

	return product, nil
}

func (r *catalogRepository) CategoryByID(id int64) (*entity.Category, error) {
	category, ok := r.categoriesByID[id]
	if !ok {
		return nil, repository.ErrCategoryNotFound
	}

	return category, nil
}

func (r *catalogRepository) CategoryOfProduct(productID int64) (*entity.Category, error) {
	product, err := r.ProductByID(productID)
	if err != nil {
		return nil, err
	}

	return r.CategoryByID(product.CategoryID)
}

func (r *catalogRepository) VariantByID(id int64) (*entity.ProductVariant, error) {
	variant, ok := r.variantsByID[id]
	if !ok {
		return nil, repository.ErrVariantNotFound
	}

	return variant, nil
}

func (r *catalogRepository) VariantsOfProduct(productID int64) []*entity.ProductVariant {
	return r.variantsByProd[productID]
}

func (r *catalogRepository) ImagesOfProduct(productID int64) []*entity.ProductImage {
	return r.imagesByProd[productID]
}

func (r *catalogRepository) ImageForVariant(productID, variantID int64) *entity.ProductImage {
	images := r.imagesByProd[productID]
	for _, image := range images {
		if image.Depicts(variantID) {
			return image
		}
	}
	if len(images) > 0 {
		return images[0]
	}

	return nil
}

func (r *catalogRepository) UnitPrice(productID int64, variantID *int64) (float64, error) {
	product, err := r.ProductByID(productID)
	if err != nil {
		return 0, err
	}
	if variantID == nil {
		return product.Price, nil
	}

	variant, err := r.VariantByID(*variantID)
	if err != nil {
		return 0, err
	}
	if variant.ProductID != productID {
		return 0, repository.ErrVariantNotFound
	}

	return variant.UnitPrice(product), nil
}

func (r *catalogRepository) ListProducts() []*entity.Product {
	return r.products
}

func (r *catalogRepository) ListCategories() []*entity.Category {
	return r.categories
}
