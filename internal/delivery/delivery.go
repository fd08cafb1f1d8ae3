// Package delivery defines the transport contract served by cmd/pond.
package delivery

import "context"

// Delivery is a transport surface for the application, started by main and
// stopped through its fx lifecycle hook.
type Delivery interface {
	Serve(ctx context.Context) error
}
