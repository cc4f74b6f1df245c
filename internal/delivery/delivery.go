// Package delivery defines the contract every transport entry point fulfils.
package delivery

import "context"

// Delivery is a server that accepts requests until its context ends or the
// application is stopped.
type Delivery interface {
	Serve(ctx context.Context) error
}
