package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockrepo "storefront/internal/mocks/repository"
	mocksvc "storefront/internal/mocks/service"
)

func TestCheckoutService_EmptyCart(t *testing.T) {
	svc := NewCheckoutUsecase(newDiscardLogger(), new(mockrepo.MockCatalogRepository), new(mocksvc.MockPaymentGateway), newTestConfig())

	handle, err := svc.CreateSession(context.Background(), nil)

	assert.Nil(t, handle)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
}

func TestCheckoutService_CreateSession(t *testing.T) {
	catalog := new(mockrepo.MockCatalogRepository)
	catalog.On("CategoryOfProduct", int64(1)).
		Return(&entity.Category{ID: 5, Name: "Hats", ShippingClass: entity.ShippingClassClothing}, nil)

	gateway := new(mocksvc.MockPaymentGateway)
	var captured *service.CheckoutRequest
	gateway.On("CreateCheckoutSession", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*service.CheckoutRequest)
		}).
		Return(&service.CheckoutHandle{SessionID: "cs_test_123", URL: "https://checkout.example.com/cs_test_123"}, nil)

	svc := NewCheckoutUsecase(newDiscardLogger(), catalog, gateway, newTestConfig())

	items := []entity.CartLineItem{
		{ProductID: 1, VariantID: int64Ptr(10), Name: "Tour Hat", Price: 24.99, Quantity: 2, Color: "Navy", Size: "L"},
	}
	handle, err := svc.CreateSession(context.Background(), items)

	require.NoError(t, err)
	assert.Equal(t, "cs_test_123", handle.SessionID)

	require.NotNil(t, captured)
	require.Len(t, captured.Items, 1)
	line := captured.Items[0]
	assert.Equal(t, "Tour Hat - Navy / L", line.Name)
	assert.Equal(t, int64(2499), line.UnitAmount)
	assert.Equal(t, int64(2), line.Quantity)
	assert.Equal(t, "1", line.Metadata["productId"])
	assert.Equal(t, "10", line.Metadata["variantId"])
	assert.Equal(t, "Navy", line.Metadata["color"])

	// 49.98 subtotal is under the free threshold and the cart holds clothing.
	assert.Equal(t, int64(999), captured.Shipping.Amount)
	assert.Equal(t, "Standard Shipping", captured.Shipping.Label)
	assert.Equal(t, "usd", captured.Currency)
	assert.Equal(t, "US", captured.AllowedCountry)
}

func TestCheckoutService_CustomBuildFeesRaiseUnitAmount(t *testing.T) {
	catalog := new(mockrepo.MockCatalogRepository)
	catalog.On("CategoryOfProduct", int64(3)).
		Return(&entity.Category{ID: 1, Name: "Divot Tools", ShippingClass: entity.ShippingClassDivotTool}, nil)

	gateway := new(mocksvc.MockPaymentGateway)
	var captured *service.CheckoutRequest
	gateway.On("CreateCheckoutSession", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*service.CheckoutRequest)
		}).
		Return(&service.CheckoutHandle{SessionID: "cs_test_build"}, nil)

	svc := NewCheckoutUsecase(newDiscardLogger(), catalog, gateway, newTestConfig())

	items := []entity.CartLineItem{
		{
			ProductID: 3,
			Name:      "Custom Divot Tool",
			Price:     59.99,
			Quantity:  1,
			CustomBuild: &entity.CustomBuild{
				WoodType:   "Walnut",
				LogoOption: "engraved",
				Fees:       []entity.CustomBuildFee{{Label: "Logo setup", Amount: 15}},
			},
		},
	}
	_, err := svc.CreateSession(context.Background(), items)

	require.NoError(t, err)
	require.Len(t, captured.Items, 1)
	assert.Equal(t, "Custom Divot Tool (Walnut)", captured.Items[0].Name)
	assert.Equal(t, int64(7499), captured.Items[0].UnitAmount)
	assert.Equal(t, int64(499), captured.Shipping.Amount)
}

func TestCheckoutService_GatewayFailure(t *testing.T) {
	catalog := new(mockrepo.MockCatalogRepository)
	catalog.On("CategoryOfProduct", mock.Anything).Return(nil, assert.AnError)

	gateway := new(mocksvc.MockPaymentGateway)
	gateway.On("CreateCheckoutSession", mock.Anything, mock.Anything).Return(nil, assert.AnError)

	svc := NewCheckoutUsecase(newDiscardLogger(), catalog, gateway, newTestConfig())

	_, err := svc.CreateSession(context.Background(), []entity.CartLineItem{{ProductID: 1, Price: 10, Quantity: 1}})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CHECKOUT_FAILED", appErr.ErrorCode())
}

func TestShippingCost(t *testing.T) {
	shop := newTestConfig().Shop

	tests := []struct {
		name     string
		subtotal float64
		classes  map[entity.ShippingClass]bool
		want     float64
	}{
		{
			name:     "free at threshold",
			subtotal: 100,
			classes:  map[entity.ShippingClass]bool{entity.ShippingClassClothing: true},
			want:     0,
		},
		{
			name:     "free above threshold",
			subtotal: 149.99,
			classes:  map[entity.ShippingClass]bool{entity.ShippingClassDivotTool: true},
			want:     0,
		},
		{
			name:     "clothing under threshold",
			subtotal: 99.99,
			classes:  map[entity.ShippingClass]bool{entity.ShippingClassClothing: true},
			want:     9.99,
		},
		{
			name:     "clothing outranks divot tool",
			subtotal: 60,
			classes: map[entity.ShippingClass]bool{
				entity.ShippingClassClothing:  true,
				entity.ShippingClassDivotTool: true,
			},
			want: 9.99,
		},
		{
			name:     "divot tool only",
			subtotal: 49.99,
			classes:  map[entity.ShippingClass]bool{entity.ShippingClassDivotTool: true},
			want:     4.99,
		},
		{
			name:     "no recognized class",
			subtotal: 20,
			classes:  map[entity.ShippingClass]bool{entity.ShippingClassNone: true},
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shippingCost(tt.subtotal, tt.classes, shop))
		})
	}
}
