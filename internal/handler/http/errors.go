// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidJSON is returned when a probe body cannot be parsed as JSON.
	ErrInvalidJSON = errors.New("invalid JSON")

	// ErrBodyTooLarge is returned when a probe body exceeds maxBodyBytes.
	ErrBodyTooLarge = errors.New("request body too large")
)
