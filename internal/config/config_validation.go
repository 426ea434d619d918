// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/MKhiriev/probe-doctor/internal/logger"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before any command uses it.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid*Configs sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Probe.DefaultPort < 1 || cfg.Probe.DefaultPort > 65535 {
		return fmt.Errorf("%w: default port %d out of range", ErrInvalidProbeConfigs, cfg.Probe.DefaultPort)
	}
	if cfg.Probe.ConnectTimeout <= 0 || cfg.Probe.RequestTimeout <= 0 {
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidProbeConfigs)
	}

	if _, err := logger.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLogConfigs, err)
	}
	if strings.TrimSpace(cfg.Log.ProbeLogPath) == "" {
		return fmt.Errorf("%w: empty probe log path", ErrInvalidLogConfigs)
	}
	if cfg.Log.TailLines < 0 {
		return fmt.Errorf("%w: negative tail lines", ErrInvalidLogConfigs)
	}

	if key := strings.TrimSpace(cfg.Crypto.EncryptionKey); key != "" {
		raw, err := hex.DecodeString(key)
		if err != nil || len(raw) != 32 {
			return fmt.Errorf("%w: encryption key must be 64 hex characters", ErrInvalidCryptoConfigs)
		}
	}

	if strings.TrimSpace(cfg.Server.Address) == "" {
		return fmt.Errorf("%w: empty address", ErrInvalidServerConfigs)
	}

	return nil
}
