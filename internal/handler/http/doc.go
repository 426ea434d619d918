// Package http implements the stand-in companion server's HTTP surface.
//
// It answers the same routes as the editor extension's sidecar: probes POST
// their payload to "/", "/health" reports liveness and "/logs" returns the
// payloads received so far. Every response body is JSON. Cross-cutting
// concerns (panic recovery, CORS, request tracing and access logging) are
// handled by middleware in this package.
package http
