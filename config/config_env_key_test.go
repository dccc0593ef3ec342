package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"stripe": map[string]any{
			"webhookSecret": "",
		},
		"shop": map[string]any{
			"freeShippingThreshold": 100,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "STRIPE_WEBHOOKSECRET", want: "stripe.webhookSecret"},
		{envKey: "SHOP_FREESHIPPINGTHRESHOLD", want: "shop.freeShippingThreshold"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.Shop.FreeShippingThreshold != 100 {
		t.Fatalf("FreeShippingThreshold = %v, want 100", cfg.Shop.FreeShippingThreshold)
	}
	if cfg.Shop.ClothingShippingRate != 9.99 {
		t.Fatalf("ClothingShippingRate = %v, want 9.99", cfg.Shop.ClothingShippingRate)
	}
	if cfg.Shop.DivotToolShippingRate >= cfg.Shop.ClothingShippingRate {
		t.Fatalf("divot tool rate %v should be lower than clothing rate %v",
			cfg.Shop.DivotToolShippingRate, cfg.Shop.ClothingShippingRate)
	}
	if cfg.Stripe.Currency != "usd" {
		t.Fatalf("Currency = %q, want usd", cfg.Stripe.Currency)
	}
	if cfg.Cart.StorageKey != "cart" {
		t.Fatalf("StorageKey = %q, want cart", cfg.Cart.StorageKey)
	}
}
