// Package delivery holds the inbound adapters of leafcare.
package delivery

import "context"

// Delivery is a long-running inbound adapter started by the fx graph.
type Delivery interface {
	Serve(ctx context.Context) error
}
