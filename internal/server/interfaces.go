package server

import "context"

// Server defines the lifecycle contract of the stand-in server.
//
// Implementations block in [RunServer] until ctx is canceled or a stop
// signal arrives, and release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()

	// Addr returns the address the server is bound to.
	Addr() string
}
