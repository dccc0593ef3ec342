package usecase

import "context"

// FulfillmentUsecase processes verified payment provider events into
// fulfilled orders: confirmation emails and stock adjustment.
type FulfillmentUsecase interface {
	// HandleEvent verifies the raw webhook payload and, for a completed
	// checkout, fulfills the order exactly once per session.
	HandleEvent(ctx context.Context, payload []byte, signature string) error
}
