package payment

import (
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/webhook"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
)

func newTestGateway(secret string) service.PaymentGateway {
	cfg := &config.Config{
		Stripe: &config.StripeConfig{WebhookSecret: secret},
	}

	return New(Params{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

// signPayload builds a Stripe-Signature header the way the provider does.
func signPayload(t *testing.T, payload []byte, secret string, at time.Time) string {
	t.Helper()

	sig := webhook.ComputeSignature(at, payload, secret)

	return fmt.Sprintf("t=%d,v1=%s", at.Unix(), hex.EncodeToString(sig))
}

func completedSessionPayload() []byte {
	return []byte(fmt.Sprintf(
		`{"id":"evt_1","api_version":%q,"type":"checkout.session.completed","data":{"object":{"id":"cs_test_123"}}}`,
		stripe.APIVersion))
}

func TestVerifyWebhook_AcceptsSignedPayload(t *testing.T) {
	const secret = "whsec_test"
	payload := completedSessionPayload()

	gw := newTestGateway(secret)
	event, err := gw.VerifyWebhook(payload, signPayload(t, payload, secret, time.Now()))
	require.NoError(t, err)
	assert.Equal(t, service.EventCheckoutCompleted, event.Type)
	assert.Equal(t, "cs_test_123", event.SessionID)
}

func TestVerifyWebhook_RejectsMissingSignature(t *testing.T) {
	gw := newTestGateway("whsec_test")

	_, err := gw.VerifyWebhook(completedSessionPayload(), "")
	assert.ErrorIs(t, err, domainerrors.ErrWebhookSignatureMissing)
}

func TestVerifyWebhook_RejectsUnconfiguredSecret(t *testing.T) {
	gw := newTestGateway("")

	payload := completedSessionPayload()
	_, err := gw.VerifyWebhook(payload, signPayload(t, payload, "whsec_test", time.Now()))
	assert.ErrorIs(t, err, domainerrors.ErrWebhookSecretMissing)
}

func TestVerifyWebhook_RejectsTamperedPayload(t *testing.T) {
	const secret = "whsec_test"
	gw := newTestGateway(secret)

	// Sign one payload, deliver another.
	header := signPayload(t, completedSessionPayload(), secret, time.Now())
	tampered := []byte(`{"id":"evt_1","type":"checkout.session.completed","data":{"object":{"id":"cs_evil"}}}`)

	_, err := gw.VerifyWebhook(tampered, header)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "WEBHOOK_SIGNATURE_INVALID", appErr.ErrorCode())
}

func TestVerifyWebhook_RejectsGarbageSignature(t *testing.T) {
	gw := newTestGateway("whsec_test")

	_, err := gw.VerifyWebhook(completedSessionPayload(), "t=0,v1=deadbeef")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "WEBHOOK_SIGNATURE_INVALID", appErr.ErrorCode())
}
