package server

import "context"

// Server defines the lifecycle contract of the registration receiver.
//
// Implementations block in [RunServer] until a stop signal arrives and
// release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until SIGINT, SIGTERM or
	// SIGQUIT is received.
	RunServer()

	// Run serves requests until ctx is done, then shuts down gracefully.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
