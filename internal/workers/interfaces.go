// Package workers provides abstractions for managing and running background
// workers in the application. It defines the Worker interface and a Workers
// aggregate that starts and stops multiple workers in a unified way.
package workers

import "context"

// Worker is a background job with an explicit lifecycle. Start launches the
// worker's goroutine and returns immediately; Stop blocks until it has fully
// exited. Stop must be safe to call when the worker is not running.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// CatalogRefresher is the slice of the catalog service the refresh job needs.
type CatalogRefresher interface {
	Refresh(ctx context.Context) error
}
