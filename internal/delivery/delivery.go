// Package delivery defines the contract every server-style component
// fulfils so main can start them uniformly.
package delivery

import "context"

// Delivery is a long-running server started by the application entrypoint.
type Delivery interface {
	Serve(ctx context.Context) error
}
