package server

import "context"

// Server is a transport server with a blocking lifecycle.
type Server interface {
	// Run serves until ctx is cancelled or a stop signal arrives, then shuts
	// down gracefully. It returns nil on a clean shutdown.
	Run(ctx context.Context) error
}
