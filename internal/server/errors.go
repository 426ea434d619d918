// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")

	// ErrPublishEndpoint is returned when the port or config file cannot be
	// written into the workspace root.
	ErrPublishEndpoint = errors.New("publish endpoint")
)
