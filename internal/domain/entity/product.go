// Package entity contains the core business objects of the storefront,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// ShippingClass groups categories for shipping-fee selection.
type ShippingClass string

const (
	// ShippingClassNone marks categories with no recognized shipping tier.
	ShippingClassNone ShippingClass = ""
	// ShippingClassClothing marks apparel categories (hats, polos, hoodies).
	ShippingClassClothing ShippingClass = "clothing"
	// ShippingClassDivotTool marks the divot tool category.
	ShippingClassDivotTool ShippingClass = "divot_tool"
)

// Category groups products and decides which shipping tier a product
// contributes to the cart.
type Category struct {
	ID            int64         `json:"id"`
	Name          string        `json:"name"`
	ShippingClass ShippingClass `json:"shipping_class,omitempty"`
}

// Product is a catalog entry from the static data export. Products are
// immutable at runtime; stock counters live in the database, not here.
type Product struct {
	ID          int64     `json:"id"`
	CategoryID  int64     `json:"category_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Subtitle    string    `json:"subtitle,omitempty"`
	Header      string    `json:"header,omitempty"`
	Bullets     []string  `json:"bullets,omitempty"`
	SKU         string    `json:"sku"`
	Stock       *int64    `json:"stock"` // nil = unlimited/untracked
	Price       float64   `json:"price"` // decimal currency units
	Tag         string    `json:"tag,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProductVariant is a specific purchasable configuration of a product.
// Clothing variants carry color+size, divot tool variants carry type only.
type ProductVariant struct {
	ID        int64    `json:"id"`
	ProductID int64    `json:"product_id"`
	Color     string   `json:"color,omitempty"`
	Size      string   `json:"size,omitempty"`
	Type      string   `json:"type,omitempty"`
	Price     *float64 `json:"price"` // nil = inherit product price
	Stock     *int64   `json:"stock"` // nil = unlimited/untracked
	SKU       string   `json:"sku,omitempty"`
}

// ProductImage is a photo of a product, optionally tagged with the variant
// ids it depicts so the right photo can be shown for a selected variant.
type ProductImage struct {
	ID         int64   `json:"id"`
	ProductID  int64   `json:"product_id"`
	URL        string  `json:"url"`
	Alt        string  `json:"alt,omitempty"`
	VariantIDs []int64 `json:"variant_ids,omitempty"`
}

// Depicts reports whether the image is tagged with the given variant.
func (img *ProductImage) Depicts(variantID int64) bool {
	for _, id := range img.VariantIDs {
		if id == variantID {
			return true
		}
	}

	return false
}

// UnitPrice resolves the effective price of a variant, falling back to the
// parent product price when the variant has no override.
func (v *ProductVariant) UnitPrice(parent *Product) float64 {
	if v != nil && v.Price != nil {
		return *v.Price
	}

	return parent.Price
}
