// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// stand-in companion server handlers and middleware.
//
// The Msg* constants are the message strings the editor extension's server
// puts in its JSON responses. Probes and older tooling match on them, so the
// wording must stay exactly as is.
package app

const (
	// MsgDataReceived acknowledges an accepted probe payload.
	MsgDataReceived = "Data received"

	// MsgInvalidJSON is returned when the request body is not valid JSON.
	MsgInvalidJSON = "Invalid JSON"

	// MsgRouteNotFound is returned for any method/path pair the server does
	// not serve.
	MsgRouteNotFound = "Route not found"
)
