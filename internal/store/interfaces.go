// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store keeps the probe payloads received by the stand-in server.
//
// Storage is in memory only: the stand-in server forgets everything when it
// stops, like the extension it replaces.
package store

import "github.com/MKhiriev/probe-doctor/models"

// ProbeStorage holds the most recent payloads accepted by the server.
// Implementations must be safe for concurrent use.
type ProbeStorage interface {
	// Add records a received payload, evicting the oldest one when full.
	Add(probe models.ReceivedProbe)

	// List returns the stored payloads, oldest first.
	List() []models.ReceivedProbe

	// Len returns the number of stored payloads.
	Len() int
}
