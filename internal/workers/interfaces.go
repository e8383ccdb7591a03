// Package workers runs the background jobs of the web client.
//
// A [Worker] is started with Run and must return promptly, doing its work
// in its own goroutine. [Workers] starts several of them in order.
package workers

import "context"

// Worker is a background job.
type Worker interface {
	Run()
}

// Starter is the one-shot startup step a [StartupWorker] drives.
type Starter interface {
	Startup(ctx context.Context) error
}
