package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
)

type checkoutService struct {
	logger  *slog.Logger
	catalog repository.CatalogRepository
	gateway service.PaymentGateway

	stripeCfg *config.StripeConfig
	shopCfg   *config.ShopConfig
}

// NewCheckoutUsecase creates the checkout service.
func NewCheckoutUsecase(
	logger *slog.Logger,
	catalog repository.CatalogRepository,
	gateway service.PaymentGateway,
	cfg *config.Config,
) usecase.CheckoutUsecase {
	return &checkoutService{
		logger:    logger,
		catalog:   catalog,
		gateway:   gateway,
		stripeCfg: cfg.Stripe,
		shopCfg:   cfg.Shop,
	}
}

func (s *checkoutService) CreateSession(ctx context.Context, items []entity.CartLineItem) (*service.CheckoutHandle, error) {
	if len(items) == 0 {
		return nil, domainerrors.ErrEmptyCart
	}

	checkoutItems := make([]service.CheckoutItem, 0, len(items))
	var subtotal float64
	classes := make(map[entity.ShippingClass]bool)

	for i := range items {
		item := &items[i]
		unitPrice := item.Price + customBuildFees(item.CustomBuild)
		subtotal += unitPrice * float64(item.Quantity)

		if category, err := s.catalog.CategoryOfProduct(item.ProductID); err == nil {
			classes[category.ShippingClass] = true
		}

		checkoutItems = append(checkoutItems, service.CheckoutItem{
			Name:       displayName(item),
			UnitAmount: entity.MinorUnits(unitPrice),
			Quantity:   item.Quantity,
			ImageURL:   item.ImageURL,
			Metadata:   itemMetadata(item),
		})
	}

	shippingAmount := shippingCost(subtotal, classes, s.shopCfg)

	req := &service.CheckoutRequest{
		Items: checkoutItems,
		Shipping: service.ShippingOption{
			Label:   shippingLabel(shippingAmount),
			Amount:  entity.MinorUnits(shippingAmount),
			MinDays: s.stripeCfg.DeliveryMinDays,
			MaxDays: s.stripeCfg.DeliveryMaxDays,
		},
		Currency:       s.stripeCfg.Currency,
		AllowedCountry: s.stripeCfg.AllowedCountry,
		SuccessURL:     s.stripeCfg.SuccessURL,
		CancelURL:      s.stripeCfg.CancelURL,
	}

	handle, err := s.gateway.CreateCheckoutSession(ctx, req)
	if err != nil {
		s.logger.Error("create checkout session failed",
			slog.Int("items", len(items)),
			slog.Any("error", err))

		return nil, domainerrors.ErrCheckoutFailed.WithDetails(err.Error())
	}

	s.logger.Info("checkout session created",
		slog.String("session_id", handle.SessionID),
		slog.Int("items", len(items)),
		slog.Float64("subtotal", subtotal),
		slog.Float64("shipping", shippingAmount))

	return handle, nil
}

// shippingCost picks the single shipping fee for a cart. Orders at or above
// the free threshold ship free; otherwise the highest applicable class rate
// wins, with clothing outranking divot tools.
func shippingCost(subtotal float64, classes map[entity.ShippingClass]bool, shop *config.ShopConfig) float64 {
	if subtotal >= shop.FreeShippingThreshold {
		return 0
	}
	if classes[entity.ShippingClassClothing] {
		return shop.ClothingShippingRate
	}
	if classes[entity.ShippingClassDivotTool] {
		return shop.DivotToolShippingRate
	}

	return 0
}

func shippingLabel(amount float64) string {
	if amount == 0 {
		return "Free Shipping"
	}

	return "Standard Shipping"
}

// displayName renders the provider-facing line name, with the variant
// descriptors the shopper picked appended for the receipt.
func displayName(item *entity.CartLineItem) string {
	parts := make([]string, 0, 3)
	if item.Color != "" {
		parts = append(parts, item.Color)
	}
	if item.Size != "" {
		parts = append(parts, item.Size)
	}
	if item.Type != "" {
		parts = append(parts, item.Type)
	}

	name := item.Name
	if item.CustomBuild != nil && item.CustomBuild.WoodType != "" {
		name = fmt.Sprintf("%s (%s)", name, item.CustomBuild.WoodType)
	}
	if len(parts) == 0 {
		return name
	}

	return fmt.Sprintf("%s - %s", name, strings.Join(parts, " / "))
}

func itemMetadata(item *entity.CartLineItem) map[string]string {
	metadata := map[string]string{
		"productId": strconv.FormatInt(item.ProductID, 10),
	}
	if item.VariantID != nil {
		metadata["variantId"] = strconv.FormatInt(*item.VariantID, 10)
	}
	if item.Color != "" {
		metadata["color"] = item.Color
	}
	if item.Size != "" {
		metadata["size"] = item.Size
	}

	return metadata
}

func customBuildFees(build *entity.CustomBuild) float64 {
	if build == nil {
		return 0
	}

	var total float64
	for _, fee := range build.Fees {
		total += fee.Amount
	}

	return total
}
