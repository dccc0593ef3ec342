// Package service provides test doubles for the external service ports.
package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"storefront/internal/domain/service"
)

// MockPaymentGateway mocks service.PaymentGateway.
type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) CreateCheckoutSession(ctx context.Context, req *service.CheckoutRequest) (*service.CheckoutHandle, error) {
	args := m.Called(ctx, req)
	handle, _ := args.Get(0).(*service.CheckoutHandle)

	return handle, args.Error(1)
}

func (m *MockPaymentGateway) GetSessionDetail(ctx context.Context, sessionID string) (*service.SessionDetail, error) {
	args := m.Called(ctx, sessionID)
	detail, _ := args.Get(0).(*service.SessionDetail)

	return detail, args.Error(1)
}

func (m *MockPaymentGateway) VerifyWebhook(payload []byte, signature string) (*service.WebhookEvent, error) {
	args := m.Called(payload, signature)
	event, _ := args.Get(0).(*service.WebhookEvent)

	return event, args.Error(1)
}

// MockEmailSender mocks service.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) Send(ctx context.Context, msg *service.EmailMessage) error {
	args := m.Called(ctx, msg)

	return args.Error(0)
}
