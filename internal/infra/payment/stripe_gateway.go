// Package payment provides the Stripe-backed payment gateway.
package payment

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"

	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/checkout/session"
	"github.com/stripe/stripe-go/v80/webhook"
	"go.uber.org/fx"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type stripeGateway struct {
	logger *slog.Logger
	cfg    *config.StripeConfig
}

// New creates the Stripe gateway and sets the API key for the process.
func New(params Params) service.PaymentGateway {
	stripe.Key = params.Config.Stripe.SecretKey

	return &stripeGateway{
		logger: params.Logger,
		cfg:    params.Config.Stripe,
	}
}

func (g *stripeGateway) CreateCheckoutSession(ctx context.Context, req *service.CheckoutRequest) (*service.CheckoutHandle, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(req.Items))
	for _, item := range req.Items {
		productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name:     stripe.String(item.Name),
			Metadata: item.Metadata,
		}
		if item.ImageURL != "" {
			productData.Images = []*string{stripe.String(item.ImageURL)}
		}

		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(req.Currency),
				UnitAmount:  stripe.Int64(item.UnitAmount),
				ProductData: productData,
			},
			Quantity: stripe.Int64(item.Quantity),
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:  lineItems,
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
		ShippingAddressCollection: &stripe.CheckoutSessionShippingAddressCollectionParams{
			AllowedCountries: stripe.StringSlice([]string{req.AllowedCountry}),
		},
		ShippingOptions: []*stripe.CheckoutSessionShippingOptionParams{
			{
				ShippingRateData: &stripe.CheckoutSessionShippingOptionShippingRateDataParams{
					Type:        stripe.String("fixed_amount"),
					DisplayName: stripe.String(req.Shipping.Label),
					FixedAmount: &stripe.CheckoutSessionShippingOptionShippingRateDataFixedAmountParams{
						Amount:   stripe.Int64(req.Shipping.Amount),
						Currency: stripe.String(req.Currency),
					},
					DeliveryEstimate: &stripe.CheckoutSessionShippingOptionShippingRateDataDeliveryEstimateParams{
						Minimum: &stripe.CheckoutSessionShippingOptionShippingRateDataDeliveryEstimateMinimumParams{
							Unit:  stripe.String("business_day"),
							Value: stripe.Int64(req.Shipping.MinDays),
						},
						Maximum: &stripe.CheckoutSessionShippingOptionShippingRateDataDeliveryEstimateMaximumParams{
							Unit:  stripe.String("business_day"),
							Value: stripe.Int64(req.Shipping.MaxDays),
						},
					},
				},
			},
		},
	}
	params.Context = ctx

	sess, err := session.New(params)
	if err != nil {
		return nil, errors.Wrap(err, "create stripe checkout session")
	}

	return &service.CheckoutHandle{
		SessionID: sess.ID,
		URL:       sess.URL,
	}, nil
}

func (g *stripeGateway) GetSessionDetail(ctx context.Context, sessionID string) (*service.SessionDetail, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	params.AddExpand("line_items")
	params.AddExpand("line_items.data.price.product")
	params.AddExpand("customer")

	sess, err := session.Get(sessionID, params)
	if err != nil {
		return nil, errors.Wrap(err, "retrieve stripe checkout session")
	}

	detail := &service.SessionDetail{
		ID:             sess.ID,
		AmountTotal:    sess.AmountTotal,
		Currency:       string(sess.Currency),
		Lines:          mapLineItems(sess.LineItems),
		BillingAddress: mapCustomerAddress(sess.Customer),
	}
	if sess.ShippingCost != nil {
		detail.ShippingAmount = sess.ShippingCost.AmountTotal
	}
	if sess.ShippingDetails != nil {
		detail.ShippingDetails = mapAddress(sess.ShippingDetails.Name, sess.ShippingDetails.Address)
	}
	if sess.CustomerDetails != nil {
		detail.CustomerName = sess.CustomerDetails.Name
		detail.CustomerEmail = sess.CustomerDetails.Email
		detail.CollectedAddress = mapAddress(sess.CustomerDetails.Name, sess.CustomerDetails.Address)
	}

	return detail, nil
}

func (g *stripeGateway) VerifyWebhook(payload []byte, signature string) (*service.WebhookEvent, error) {
	if g.cfg.WebhookSecret == "" {
		return nil, domainerrors.ErrWebhookSecretMissing
	}
	if signature == "" {
		return nil, domainerrors.ErrWebhookSignatureMissing
	}

	event, err := webhook.ConstructEvent(payload, signature, g.cfg.WebhookSecret)
	if err != nil {
		return nil, domainerrors.ErrWebhookSignatureInvalid.WithDetails(err.Error())
	}

	verified := &service.WebhookEvent{Type: string(event.Type)}
	if verified.Type == service.EventCheckoutCompleted {
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return nil, errors.Wrap(err, "decode checkout session event")
		}
		verified.SessionID = sess.ID
	}

	return verified, nil
}

func mapLineItems(list *stripe.LineItemList) []entity.OrderLine {
	if list == nil {
		return nil
	}

	lines := make([]entity.OrderLine, 0, len(list.Data))
	for _, item := range list.Data {
		line := entity.OrderLine{
			Name:        item.Description,
			Quantity:    item.Quantity,
			AmountTotal: item.AmountTotal,
		}
		if item.Price != nil && item.Price.Product != nil {
			line.ProductID, line.VariantID = parseItemMetadata(item.Price.Product.Metadata)
		}
		lines = append(lines, line)
	}

	return lines
}

// parseItemMetadata recovers the catalog identity echoed back through the
// product metadata set at session creation.
func parseItemMetadata(metadata map[string]string) (int64, *int64) {
	productID, _ := strconv.ParseInt(metadata["productId"], 10, 64)

	var variantID *int64
	if raw, ok := metadata["variantId"]; ok {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			variantID = &id
		}
	}

	return productID, variantID
}

func mapAddress(name string, addr *stripe.Address) *entity.ShippingAddress {
	if addr == nil {
		return nil
	}

	return &entity.ShippingAddress{
		Name:       name,
		Line1:      addr.Line1,
		Line2:      addr.Line2,
		City:       addr.City,
		State:      addr.State,
		PostalCode: addr.PostalCode,
		Country:    addr.Country,
	}
}

func mapCustomerAddress(customer *stripe.Customer) *entity.ShippingAddress {
	if customer == nil {
		return nil
	}

	return mapAddress(customer.Name, customer.Address)
}
