// Package workers manages the client's background jobs.
// It defines the Worker interface and a Workers aggregate that starts and
// stops all jobs together.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Start must not block; implementations spawn their own goroutines. Stop
// blocks until those goroutines have exited.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
