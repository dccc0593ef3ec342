package postgres

import (
	"context"

	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type stockRepository struct {
	db *gorm.DB
}

// NewStockRepository creates a new stock repository instance
func NewStockRepository(db *gorm.DB) repository.StockRepository {
	return &stockRepository{db: db}
}

func (r *stockRepository) ProductStock(ctx context.Context, productID int64) (*int64, error) {
	var record model.ProductStockModel
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		First(&record).Error
	if err != nil {
		// No row means the product's inventory is untracked.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "query product stock")
	}

	return &record.Stock, nil
}

func (r *stockRepository) SetProductStock(ctx context.Context, productID, stock int64) error {
	record := model.ProductStockModel{ProductID: productID, Stock: stock}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "product_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"stock", "updated_at"}),
		}).
		Create(&record).Error
	if err != nil {
		return errors.Wrap(err, "write product stock")
	}

	return nil
}

func (r *stockRepository) VariantStock(ctx context.Context, variantID int64) (*int64, error) {
	var record model.VariantStockModel
	err := r.db.WithContext(ctx).
		Where("variant_id = ?", variantID).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "query variant stock")
	}

	return &record.Stock, nil
}

func (r *stockRepository) SetVariantStock(ctx context.Context, variantID, stock int64) error {
	record := model.VariantStockModel{VariantID: variantID, Stock: stock}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "variant_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"stock", "updated_at"}),
		}).
		Create(&record).Error
	if err != nil {
		return errors.Wrap(err, "write variant stock")
	}

	return nil
}
