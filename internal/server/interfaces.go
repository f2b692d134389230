package server

import "context"

// Server defines the lifecycle contract of the application server.
type Server interface {
	// RunServer serves until SIGINT or SIGTERM, then shuts down gracefully.
	RunServer() error

	// Run serves until ctx is done, then shuts down gracefully.
	Run(ctx context.Context) error
}
