package entity

// CustomBuildFee is a one-time charge attached to a configurator build,
// such as a logo engraving setup fee.
type CustomBuildFee struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// CustomBuild is the "build your own" configurator payload carried on a
// cart line for custom divot tools.
type CustomBuild struct {
	WoodType   string           `json:"wood_type"`
	LogoOption string           `json:"logo_option,omitempty"`
	Fees       []CustomBuildFee `json:"fees,omitempty"`
}

// CartLineItem is one entry in the shopper's cart. The unit price is a
// snapshot captured when the item was added and is never re-read from the
// catalog afterwards.
type CartLineItem struct {
	ProductID   int64        `json:"product_id"`
	VariantID   *int64       `json:"variant_id,omitempty"`
	Name        string       `json:"name"`
	Price       float64      `json:"price"` // unit price snapshot, decimal currency units
	Quantity    int64        `json:"quantity"`
	ImageURL    string       `json:"image_url,omitempty"`
	Color       string       `json:"color,omitempty"`
	Size        string       `json:"size,omitempty"`
	Type        string       `json:"type,omitempty"`
	CustomBuild *CustomBuild `json:"custom_build,omitempty"`
}

// Matches reports whether the line has the given cart identity. Two lines
// are the same entry iff product id and variant id match, where a missing
// variant id on both sides counts as a match.
func (li *CartLineItem) Matches(productID int64, variantID *int64) bool {
	if li.ProductID != productID {
		return false
	}
	if li.VariantID == nil || variantID == nil {
		return li.VariantID == nil && variantID == nil
	}

	return *li.VariantID == *variantID
}

// LineTotal is the line's contribution to the cart total.
func (li *CartLineItem) LineTotal() float64 {
	return li.Price * float64(li.Quantity)
}
