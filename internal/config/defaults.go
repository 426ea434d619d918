package config

import (
	"time"

	"github.com/MKhiriev/probe-doctor/internal/logger"
)

// Built-in defaults, applied after flags, env and JSON.
const (
	DefaultPort           = 51234
	DefaultConnectTimeout = 5 * time.Second
	DefaultRequestTimeout = 10 * time.Second
	DefaultHypothesisID   = "H1"
	DefaultMessage        = "Test probe connection from probe-doctor"
	DefaultLogLevel       = "info"
	DefaultTailLines      = 10
	DefaultServerAddress  = "localhost:51234"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Probe: Probe{
			DefaultPort:    DefaultPort,
			ConnectTimeout: DefaultConnectTimeout,
			RequestTimeout: DefaultRequestTimeout,
			HypothesisID:   DefaultHypothesisID,
			Message:        DefaultMessage,
		},
		Log: Log{
			Level:        DefaultLogLevel,
			ProbeLogPath: logger.DefaultProbeLogPath(),
			TailLines:    DefaultTailLines,
		},
		Server: Server{
			Address: DefaultServerAddress,
		},
	}
}
