package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domainerrors "storefront/internal/domain/errors"
	mockuc "storefront/internal/mocks/usecase"
)

func TestWebhookHandler_Acknowledges(t *testing.T) {
	fulfillment := new(mockuc.MockFulfillmentUsecase)
	fulfillment.On("HandleEvent", mock.Anything, []byte(`{"id":"evt_1"}`), "t=1,v1=abc").Return(nil)

	h := NewWebhookHandler(newDiscardLogger(), fulfillment)

	req := httptest.NewRequest(http.MethodPost, "/api/webhook/stripe", strings.NewReader(`{"id":"evt_1"}`))
	req.Header.Set("Stripe-Signature", "t=1,v1=abc")
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, h.HandleStripeEvent(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"received":true}`, rec.Body.String())
	fulfillment.AssertExpectations(t)
}

func TestWebhookHandler_SignatureRejected(t *testing.T) {
	tests := []struct {
		name     string
		err      domainerrors.AppError
		wantCode int
		wantBody string
	}{
		{
			name:     "missing signature",
			err:      domainerrors.ErrWebhookSignatureMissing,
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"Missing webhook signature"}`,
		},
		{
			name:     "invalid signature",
			err:      domainerrors.ErrWebhookSignatureInvalid,
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"Invalid webhook signature"}`,
		},
		{
			name:     "secret not configured",
			err:      domainerrors.ErrWebhookSecretMissing,
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Webhook secret is not configured"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fulfillment := new(mockuc.MockFulfillmentUsecase)
			fulfillment.On("HandleEvent", mock.Anything, mock.Anything, mock.Anything).Return(tt.err)

			h := NewWebhookHandler(newDiscardLogger(), fulfillment)
			rec, c := performJSON(echo.New(), http.MethodPost, "/api/webhook/stripe", `{}`)

			require.NoError(t, h.HandleStripeEvent(c))
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
