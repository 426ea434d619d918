// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using caarlos0/env.
// Fields are mapped via the `env` and `envPrefix` tags on [StructuredConfig],
// so PROBE_REQUEST_TIMEOUT lands in Probe.RequestTimeout and
// ROO_TRACE_ENCRYPTION_KEY in Crypto.EncryptionKey.
//
// Returns a wrapped error if a value cannot be converted to the field type
// (e.g. PROBE_DEFAULT_PORT=abc).
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
