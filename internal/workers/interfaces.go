// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that starts and
// stops several workers as one unit.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Start must not block: long running work belongs in a goroutine owned by
// the worker. Stop blocks until that work has terminated.
//
// Example implementation:
//
//	type MyWorker struct{ job service.PollJob }
//
//	func (w *MyWorker) Start(ctx context.Context) { w.job.Start(ctx, time.Minute) }
//	func (w *MyWorker) Stop()                     { w.job.Stop() }
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
