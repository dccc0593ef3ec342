// Package service defines ports to external collaborators (payment
// provider, email provider). Concrete adapters live under internal/infra.
package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// EventCheckoutCompleted is the provider event type that triggers order
// fulfillment. All other event types are acknowledged and ignored.
const EventCheckoutCompleted = "checkout.session.completed"

// CheckoutItem is one provider-side line item for a hosted checkout session.
type CheckoutItem struct {
	Name       string
	UnitAmount int64 // minor units
	Quantity   int64
	ImageURL   string
	Metadata   map[string]string // productId/variantId/color/size for reconciliation
}

// ShippingOption is the single computed fixed-amount shipping line attached
// to a session, with a delivery estimate window in business days.
type ShippingOption struct {
	Label   string
	Amount  int64 // minor units
	MinDays int64
	MaxDays int64
}

// CheckoutRequest carries everything needed to create a hosted session.
type CheckoutRequest struct {
	Items          []CheckoutItem
	Shipping       ShippingOption
	Currency       string
	AllowedCountry string
	SuccessURL     string
	CancelURL      string
}

// CheckoutHandle is the redirect handle returned after session creation.
// The application keeps only this; the session state lives with the provider.
type CheckoutHandle struct {
	SessionID string
	URL       string
}

// WebhookEvent is a verified provider notification. SessionID is set only
// for completed-checkout events.
type WebhookEvent struct {
	Type      string
	SessionID string
}

// SessionDetail is the fully expanded view of a completed session, with the
// three shipping-address candidates in fallback order: explicit shipping
// details, then the address collected with the customer details, then the
// customer's billing address.
type SessionDetail struct {
	ID               string
	CustomerName     string
	CustomerEmail    string
	ShippingDetails  *entity.ShippingAddress
	CollectedAddress *entity.ShippingAddress
	BillingAddress   *entity.ShippingAddress
	Lines            []entity.OrderLine
	AmountTotal      int64 // minor units
	ShippingAmount   int64 // minor units
	Currency         string
}

// PaymentGateway is the port to the hosted-checkout payment provider.
type PaymentGateway interface {
	// CreateCheckoutSession creates a hosted checkout session and returns
	// the redirect handle.
	CreateCheckoutSession(ctx context.Context, req *CheckoutRequest) (*CheckoutHandle, error)

	// GetSessionDetail re-fetches a session with line items and nested
	// product data expanded. The webhook payload only carries an id; the
	// authoritative data lives with the provider.
	GetSessionDetail(ctx context.Context, sessionID string) (*SessionDetail, error)

	// VerifyWebhook checks the payload signature against the shared secret
	// and parses the event. It fails with a typed error when the signature
	// is missing or invalid, or when no secret is configured.
	VerifyWebhook(payload []byte, signature string) (*WebhookEvent, error)
}
