// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used to reach the companion server.
//
// The primary abstraction is [Prober], which sends probe payloads to a
// resolved server URL and reports the outcome as a [Result]. Network failures
// never surface as Go errors: they are classified into a closed set of
// [Kind] values (timeout, connection refused, transport error, bad status)
// so that callers branch on the kind instead of matching error types.
package adapter

import (
	"context"

	"github.com/MKhiriev/probe-doctor/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/prober_mock.go -package=mock

// Prober defines communication with the companion server.
type Prober interface {
	// Check runs the full connectivity test against url: a TCP connect to
	// the URL's host and port, then a JSON POST of payload. A failed connect
	// short-circuits the POST.
	Check(ctx context.Context, url string, payload models.ProbePayload) Result

	// Send POSTs payload to url without the connect pre-check. This is the
	// path an injected probe takes.
	Send(ctx context.Context, url string, payload models.ProbePayload) Result
}
