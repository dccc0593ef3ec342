// Package model defines the GORM persistence models. Only mutable state
// lives in the database; the catalog itself is a static export.
package model

import "time"

// ProductStockModel is the inventory counter for a product without variants.
type ProductStockModel struct {
	ProductID int64     `gorm:"column:product_id;primaryKey"`
	Stock     int64     `gorm:"column:stock;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName overrides the default table name
func (ProductStockModel) TableName() string {
	return "product_stock"
}

// VariantStockModel is the inventory counter for one product variant.
type VariantStockModel struct {
	VariantID int64     `gorm:"column:variant_id;primaryKey"`
	Stock     int64     `gorm:"column:stock;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName overrides the default table name
func (VariantStockModel) TableName() string {
	return "variant_stock"
}
