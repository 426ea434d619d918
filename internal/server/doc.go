// Package server runs the stand-in companion server.
//
// It owns the HTTP listener lifecycle: binding the configured address,
// advertising the bound port to probes through the workspace config files,
// and shutting down gracefully on a stop signal or context cancellation.
package server
