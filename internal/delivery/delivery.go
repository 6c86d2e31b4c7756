// Package delivery defines the long-running servers started by the application.
package delivery

import "context"

// Delivery is a server started once the dependency graph is built.
type Delivery interface {
	Serve(ctx context.Context) error
}
