// Package delivery defines the contract every transport entry point implements.
package delivery

import "context"

// Delivery is a long-running transport frontend, started once at boot.
type Delivery interface {
	Serve(ctx context.Context) error
}
