package repository

import "context"

// FulfillmentLedger records which checkout sessions have already been
// fulfilled, so redelivered webhook events never double-send order emails.
type FulfillmentLedger interface {
	// Claim atomically records the session as processed. It returns false
	// when an earlier delivery already claimed the session.
	Claim(ctx context.Context, sessionID string) (bool, error)
}
