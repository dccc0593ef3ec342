package impl

import (
	"io"
	"log/slog"
	"time"

	"storefront/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Stripe = &config.StripeConfig{
		Currency:        "usd",
		AllowedCountry:  "US",
		SuccessURL:      "https://shop.example.com/checkout/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:       "https://shop.example.com/cart",
		DeliveryMinDays: 5,
		DeliveryMaxDays: 10,
	}
	cfg.Email = &config.EmailConfig{
		FromAddress:  "orders@shop.example.com",
		OwnerAddress: "owner@shop.example.com",
		SendInterval: time.Millisecond,
	}
	cfg.Shop = &config.ShopConfig{
		FreeShippingThreshold: 100,
		ClothingShippingRate:  9.99,
		DivotToolShippingRate: 4.99,
		OrderNumberPrefix:     "DVT",
	}

	return cfg
}

func int64Ptr(v int64) *int64 {
	return &v
}
