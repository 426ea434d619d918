package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a
// configuration group is incomplete or invalid.
var (
	// ErrInvalidProbeConfigs indicates invalid probe settings
	// (for example, a port outside 1..65535 or a non-positive timeout).
	ErrInvalidProbeConfigs = errors.New("invalid probe configuration")
	// ErrInvalidLogConfigs indicates invalid log settings
	// (for example, an unknown level or an empty probe log path).
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidCryptoConfigs indicates a malformed encryption key.
	ErrInvalidCryptoConfigs = errors.New("invalid crypto configuration")
	// ErrInvalidServerConfigs indicates invalid stand-in server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
