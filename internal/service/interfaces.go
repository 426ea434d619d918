package service

import (
	"context"

	"github.com/MKhiriev/probe-doctor/internal/report"
	"github.com/MKhiriev/probe-doctor/internal/resolver"
)

// DiagnosticService locates the companion server and talks to it.
type DiagnosticService interface {
	// Resolve finds the workspace root and the server URL.
	Resolve(ctx context.Context) (resolver.Resolution, error)

	// Check resolves the server URL and runs the full connectivity check.
	Check(ctx context.Context) (report.Check, error)

	// Send posts one probe payload without the socket pre-check and records
	// the attempt in the probe log, the way injected probes do.
	Send(ctx context.Context) (report.Check, error)
}

// ProbeLogService reads the probe log.
type ProbeLogService interface {
	// Tail returns the last configured number of lines and the total count.
	Tail(ctx context.Context) (lines []string, total int, err error)

	// Path returns the probe log location.
	Path() string
}

// PatchService rewrites probe timeouts in source files.
type PatchService interface {
	FixTimeouts(ctx context.Context, path, from, to string) (int, error)
}
