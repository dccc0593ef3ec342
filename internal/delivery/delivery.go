// Package delivery defines the transport-facing entry points.
package delivery

import "context"

// Delivery is a serving transport (HTTP today) started by the application
// runner and stopped through its lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
