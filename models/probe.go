// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ProbePayload is the JSON body a probe POSTs to the companion server.
type ProbePayload struct {
	// HypothesisID identifies the debugging hypothesis the probe reports on
	// (e.g. "H1").
	HypothesisID string `json:"hypothesisId"`

	// Message is a free-text description of what the probe observed.
	Message string `json:"message"`

	// State carries arbitrary key/value data captured at the probe site.
	State map[string]any `json:"state"`
}

// DebugConfig is the shape of the structured server config file written by
// the editor extension next to the workspace.
type DebugConfig struct {
	// URL is the full companion server URL, e.g. "http://localhost:51234/".
	URL string `json:"url"`

	// Status is "active" while the extension's server is running.
	Status string `json:"status,omitempty"`

	// Timestamp is the Unix time in milliseconds when the file was written.
	Timestamp int64 `json:"timestamp,omitempty"`
}

// ServerResponse is the JSON envelope returned by the companion server.
type ServerResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ReceivedProbe is a payload accepted by the stand-in server together with
// the metadata recorded on arrival.
type ReceivedProbe struct {
	ProbePayload

	TraceID    string    `json:"traceId,omitempty"`
	ReceivedAt time.Time `json:"receivedAt"`
}

// LogsResponse is returned by GET /logs on the stand-in server.
type LogsResponse struct {
	Status string          `json:"status"`
	Logs   []ReceivedProbe `json:"logs"`
}
