// Package delivery defines the contract every transport implementation meets.
package delivery

import "context"

// Delivery is a serving transport, e.g. the HTTP server.
type Delivery interface {
	Serve(ctx context.Context) error
}
