package service

import (
	"fmt"

	"github.com/MKhiriev/probe-doctor/internal/adapter"
	"github.com/MKhiriev/probe-doctor/internal/config"
	"github.com/MKhiriev/probe-doctor/internal/crypto"
	"github.com/MKhiriev/probe-doctor/internal/logger"
	"github.com/MKhiriev/probe-doctor/internal/patcher"
	"github.com/MKhiriev/probe-doctor/internal/resolver"
	"github.com/MKhiriev/probe-doctor/internal/workspace"
)

type Services struct {
	DiagnosticService DiagnosticService
	ProbeLogService   ProbeLogService
	PatchService      PatchService
}

// NewServices wires the services from cfg. prober may be nil, in which case
// the HTTP prober is built from the probe timeouts.
func NewServices(prober adapter.Prober, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	cipher, err := NewConfigCipher(cfg.Crypto)
	if err != nil {
		return nil, err
	}

	if prober == nil {
		prober = adapter.NewHTTPProber(adapter.Options{
			ConnectTimeout: cfg.Probe.ConnectTimeout,
			RequestTimeout: cfg.Probe.RequestTimeout,
		}, logger)
	}

	finder := workspace.NewFinder(logger)
	urlResolver := resolver.NewDefault(nil, cipher, cfg.Probe.DefaultPort, logger)

	return &Services{
		DiagnosticService: NewDiagnosticService(finder, urlResolver, prober, cfg, logger),
		ProbeLogService:   NewProbeLogService(cfg.Log, logger),
		PatchService:      NewPatchService(patcher.New(logger)),
	}, nil
}

// NewConfigCipher builds the cipher for encrypted structured configs from
// the configured hex key or secret phrase.
func NewConfigCipher(cfg config.Crypto) (crypto.ConfigCipher, error) {
	key, err := crypto.DeriveKey(cfg.EncryptionKey, cfg.SecretPhrase)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCryptoConfig, err)
	}

	cipher, err := crypto.NewConfigCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCryptoConfig, err)
	}
	return cipher, nil
}
