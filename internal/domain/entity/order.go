package entity

// ShippingAddress is the destination resolved for a completed order.
type ShippingAddress struct {
	Name       string `json:"name,omitempty"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// OrderLine is one purchased line reconstructed from a completed checkout
// session. ProductID/VariantID are recovered from the line metadata and are
// zero/nil when the provider did not echo them back.
type OrderLine struct {
	Name        string `json:"name"`
	Quantity    int64  `json:"quantity"`
	AmountTotal int64  `json:"amount_total"` // minor units
	ProductID   int64  `json:"product_id,omitempty"`
	VariantID   *int64 `json:"variant_id,omitempty"`
}

// OrderConfirmation is the derived order notification payload used for the
// transactional emails. It is reconstructed at webhook time and never stored.
type OrderConfirmation struct {
	OrderNumber    string           `json:"order_number"`
	SessionID      string           `json:"session_id"`
	CustomerName   string           `json:"customer_name,omitempty"`
	CustomerEmail  string           `json:"customer_email,omitempty"`
	Address        *ShippingAddress `json:"address,omitempty"`
	Lines          []OrderLine      `json:"lines"`
	AmountTotal    int64            `json:"amount_total"`    // minor units
	ShippingAmount int64            `json:"shipping_amount"` // minor units
	Currency       string           `json:"currency"`
}
